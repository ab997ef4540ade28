package exporter

import (
	"time"

	"icaltodoist/internal/exporter/todoist"
	"icaltodoist/internal/importer"
)

var _ TaskExporter = (*todoist.Client)(nil)

// TaskExporter is a session against the destination to-do service.
// Mutations are queued; Commit flushes them as one transaction.
type TaskExporter interface {
	GetProject(name string) (*todoist.Project, error)
	AddItem(project *todoist.Project, task importer.Task, location *time.Location) (*todoist.Item, error)
	AddReminder(item *todoist.Item) error
	Commit() error
}
