package usecase

import (
	"fmt"
	"time"

	"nl-task-parser/pkg/datemath"
)

// promptTemplate arguments:
//
//	1 reference date, 2 example "20th June", 3 example "tomorrow",
//	4 example "Monday", 5 example "Wednesday", 6 user text.
const promptTemplate = `
You are a task parsing assistant. Parse the given natural language text and extract task information.

IMPORTANT: Extract ALL tasks mentioned in the text, even if multiple tasks are assigned to different people.

Rules:
1. Extract task name, assignee, due date, due time, and priority
2. If no priority is mentioned, default to "P3"
3. Convert relative dates to absolute dates (e.g., "tomorrow" to YYYY-MM-DD format)
4. Convert times to 24-hour format (HH:MM)
5. If no time is specified, default to "17:00" (5 PM)
6. Today's date is %[1]s for reference

Output format: Return ONLY a valid JSON object with this exact structure:
{
  "tasks": [
    {
      "taskName": "string",
      "assignee": "string",
      "dueDate": "YYYY-MM-DD",
      "dueTime": "HH:MM",
      "priority": "P1|P2|P3|P4"
    }
  ]
}

Examples:
Input: "Finish landing page Aman by 11pm 20th June, Call client Rajeev tomorrow 5pm"
Output: {
  "tasks": [
    {
      "taskName": "Finish landing page",
      "assignee": "Aman",
      "dueDate": "%[2]s",
      "dueTime": "23:00",
      "priority": "P3"
    },
    {
      "taskName": "Call client",
      "assignee": "Rajeev",
      "dueDate": "%[3]s",
      "dueTime": "17:00",
      "priority": "P3"
    }
  ]
}

Input: "Send report to John by 9am Monday P1 priority, Review proposal Sarah Wednesday 2pm"
Output: {
  "tasks": [
    {
      "taskName": "Send report",
      "assignee": "John",
      "dueDate": "%[4]s",
      "dueTime": "09:00",
      "priority": "P1"
    },
    {
      "taskName": "Review proposal",
      "assignee": "Sarah",
      "dueDate": "%[5]s",
      "dueTime": "14:00",
      "priority": "P3"
    }
  ]
}

Now parse this text:
"%[6]s"
`

// BuildPrompt renders the task extraction prompt for text. The worked
// examples' dates are derived from ref so the prompt stays self-consistent
// for any configured reference date; the output depends only on its inputs.
func BuildPrompt(dm *datemath.Parser, text string, ref time.Time) string {
	monday, _ := dm.Parse("next monday", ref)
	wednesday, _ := dm.Parse("next wednesday", ref)

	return fmt.Sprintf(promptTemplate,
		dm.Today(ref),
		nextJune20(dm, ref).Format(datemath.DateLayout),
		dm.Tomorrow(ref),
		monday.Format(datemath.DateLayout),
		wednesday.Format(datemath.DateLayout),
		text,
	)
}

// nextJune20 returns June 20 of ref's year, or of the following year once it has passed.
func nextJune20(dm *datemath.Parser, ref time.Time) time.Time {
	ref = ref.In(dm.Location())
	d := time.Date(ref.Year(), time.June, 20, 0, 0, 0, 0, dm.Location())
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, dm.Location())
	if d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}
	return d
}
