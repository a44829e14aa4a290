package response

import (
	"encoding/json"
	"time"
)

// ErrResp is the JSON body of every error response.
type ErrResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DateTime is a datetime that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
