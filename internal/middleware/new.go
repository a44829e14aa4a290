package middleware

import (
	"nl-task-parser/pkg/log"
)

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

type Middleware struct {
	l    log.Logger
	cors CORSConfig
}

func New(l log.Logger, cors CORSConfig) Middleware {
	return Middleware{
		l:    l,
		cors: cors,
	}
}
