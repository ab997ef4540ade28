package todoist

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"icaltodoist/internal/importer"
)

// Minute precision, per the sync API's due_date_utc contract.
const dueTimeFormat = "2006-01-02T15:04"

var recognizedRruleKeys = map[string]bool{
	"FREQ":  true,
	"BYDAY": true,
}

// MapTask translates one calendar task into an item payload. Pure: no
// network, no state. Missing optional fields are omitted, never defaulted.
func MapTask(task importer.Task, location *time.Location, log zerolog.Logger) ItemArgs {
	args := ItemArgs{
		Content:          task.Summary,
		HasNotifications: true,
	}
	if due, ok := task.GetDue(location); ok {
		args.DueDateUTC = due.UTC().Format(dueTimeFormat)
		args.DateString = args.DueDateUTC
	} else {
		log.Debug().Str("summary", task.Summary).Msg("task has no associated date")
	}
	args.Status = task.Status

	if task.Rrule == "" {
		log.Debug().Str("summary", task.Summary).Msg("task is not recurring")
		return args
	}
	for _, part := range strings.Split(task.Rrule, ";") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.ToUpper(strings.TrimSpace(key))
		if !recognizedRruleKeys[key] {
			log.Warn().
				Str("summary", task.Summary).
				Str("key", key).
				Msg("task recurrence key not recognized")
			continue
		}
		// A recurrence frequency takes precedence over a one-off due date.
		if key == "FREQ" {
			args.DateString = value
		}
	}
	return args
}
