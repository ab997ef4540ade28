package importer

import (
	"os"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ TaskImporter = (*File)(nil)

// File reads a calendar export from disk.
type File struct {
	path string
	log  zerolog.Logger
}

func NewFile(path string, log zerolog.Logger) *File {
	return &File{
		path: path,
		log:  log,
	}
}

func (f *File) Get() (TaskList, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return TaskList{}, errors.Wrap(err, "error opening calendar file")
	}
	defer fh.Close()

	cal, err := ics.ParseCalendar(fh)
	if err != nil {
		return TaskList{}, errors.Wrap(err, "error parsing calendar file")
	}
	list := tasksFromCalendar(cal, f.log)
	f.log.Debug().Int("tasks", len(list.Tasks)).Str("file", f.path).Msg("parsed calendar file")
	return list, nil
}
