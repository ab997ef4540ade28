package exporter

import (
	"time"

	"github.com/rs/zerolog"

	"icaltodoist/internal/exporter/todoist"
	"icaltodoist/internal/importer"
)

var _ TaskExporter = (*Noop)(nil)

type Noop struct {
	log zerolog.Logger
}

func NewNoop(log zerolog.Logger) *Noop {
	return &Noop{log: log}
}

func (e *Noop) GetProject(name string) (*todoist.Project, error) {
	e.log.Info().Str("project", name).Msg("noop exporter get project call")
	return &todoist.Project{ID: "noop", Name: name}, nil
}

func (e *Noop) AddItem(project *todoist.Project, task importer.Task, _ *time.Location) (*todoist.Item, error) {
	e.log.Info().Str("project", project.Name).Str("summary", task.Summary).Msg("noop exporter add item call")
	return &todoist.Item{ID: "noop"}, nil
}

func (e *Noop) AddReminder(item *todoist.Item) error {
	e.log.Info().Str("itemID", item.ID).Msg("noop exporter add reminder call")
	return nil
}

func (e *Noop) Commit() error {
	e.log.Info().Msg("noop exporter commit call")
	return nil
}
