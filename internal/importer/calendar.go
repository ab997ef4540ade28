package importer

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/rs/zerolog"
	"github.com/teambition/rrule-go"
)

const (
	CalendarTimeFormat    = "20060102T150405"
	CalendarTimeFormatUTC = "20060102T150405Z"
	CalendarDateFormat    = "20060102"
)

// StatusCompleted is the VTODO status of a finished task.
const StatusCompleted = "COMPLETED"

type TaskImporter interface {
	Get() (TaskList, error)
}

// TaskList holds the VTODO entries of one calendar export, in file order.
type TaskList struct {
	Tasks      []Task
	TimeZoneID string
	Location   *time.Location
}

type Task struct {
	Summary string
	DueStr  string
	Status  string
	Rrule   string
}

func (t Task) GetDue(location *time.Location) (due time.Time, ok bool) {
	return GetCalendarTime(t.DueStr, location)
}

// GetCalendarTime parses an ical timestamp. A trailing Z means UTC,
// otherwise the value is read in the calendar's location. Date-only
// values parse as midnight.
func GetCalendarTime(timeStr string, location *time.Location) (out time.Time, ok bool) {
	if location == nil {
		location = time.Local
	}
	if strings.HasSuffix(timeStr, "Z") {
		out, err := time.Parse(CalendarTimeFormatUTC, timeStr)
		if err != nil {
			return time.Time{}, false
		}
		return out, true
	}
	out, err := time.ParseInLocation(CalendarTimeFormat, timeStr, location)
	if err == nil {
		return out, true
	}
	out, err = time.ParseInLocation(CalendarDateFormat, timeStr, location)
	if err != nil {
		return time.Time{}, false
	}
	return out, true
}

func ValueOrEmpty(prop *ics.IANAProperty) string {
	if prop == nil {
		return ""
	}
	return prop.Value
}

func tasksFromCalendar(cal *ics.Calendar, log zerolog.Logger) TaskList {
	list := TaskList{}
	setLocation(&list, cal.Timezones(), log)

	for _, component := range cal.Components {
		todo, ok := component.(*ics.VTodo)
		if !ok {
			continue
		}
		task := Task{
			Summary: ValueOrEmpty(todo.ComponentBase.GetProperty(ics.ComponentPropertySummary)),
			DueStr:  ValueOrEmpty(todo.ComponentBase.GetProperty(ics.ComponentProperty(ics.PropertyDue))),
			Status:  ValueOrEmpty(todo.ComponentBase.GetProperty(ics.ComponentProperty(ics.PropertyStatus))),
			Rrule:   ValueOrEmpty(todo.ComponentBase.GetProperty(ics.ComponentPropertyRrule)),
		}
		if task.DueStr == "" {
			log.Debug().Str("summary", task.Summary).Msg("task has no due date")
		}
		if task.Rrule != "" {
			if _, err := rrule.StrToROptionInLocation(task.Rrule, list.Location); err != nil {
				log.Error().Err(err).
					Str("summary", task.Summary).
					Str("rrule", task.Rrule).
					Msg("task has invalid rrule")
			}
		}
		list.Tasks = append(list.Tasks, task)
	}
	return list
}

func setLocation(list *TaskList, tzones []*ics.VTimezone, log zerolog.Logger) {
	if len(tzones) != 0 {
		list.TimeZoneID = ValueOrEmpty(tzones[0].ComponentBase.GetProperty(ics.ComponentPropertyTzid))
		loc, err := time.LoadLocation(list.TimeZoneID)
		if err != nil {
			log.Error().Err(err).Str("timezone", list.TimeZoneID).Msg("error getting location by timezone id")
			list.Location = time.Local
		} else {
			list.Location = loc
		}
	} else {
		list.TimeZoneID = time.Local.String()
		list.Location = time.Local
	}
}
