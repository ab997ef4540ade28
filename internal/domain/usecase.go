package domain

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"icaltodoist/internal/exporter"
	"icaltodoist/internal/exporter/todoist"
	"icaltodoist/internal/importer"
)

type UseCase struct {
	taskImporter importer.TaskImporter
	taskExporter exporter.TaskExporter
	projectName  string
	reminders    bool
	log          zerolog.Logger
	pool         *pool.ContextPool
	ctx          context.Context
}

func New(ctx context.Context, taskImporter importer.TaskImporter, taskExporter exporter.TaskExporter,
	projectName string, reminders bool, log zerolog.Logger) *UseCase {
	return &UseCase{
		taskImporter: taskImporter,
		taskExporter: taskExporter,
		projectName:  projectName,
		reminders:    reminders,
		log:          log,
		pool:         pool.New().WithContext(ctx).WithMaxGoroutines(1),
		ctx:          ctx,
	}
}

// ImportOnce replays the calendar tasks into the destination project, in
// file order: create every item, commit, then optionally attach reminders
// and commit again.
func (uc *UseCase) ImportOnce() error {
	list, err := uc.taskImporter.Get()
	if err != nil {
		return err
	}
	project, err := uc.taskExporter.GetProject(uc.projectName)
	if err != nil {
		return err
	}
	uc.log.Debug().Str("projectID", project.ID).Str("project", project.Name).Msg("using project")

	items := make([]*todoist.Item, 0, len(list.Tasks))
	for _, task := range list.Tasks {
		item, err := uc.taskExporter.AddItem(project, task, list.Location)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	if err := uc.taskExporter.Commit(); err != nil {
		return err
	}

	if uc.reminders {
		for _, item := range items {
			if err := uc.taskExporter.AddReminder(item); err != nil {
				return err
			}
		}
	}
	return uc.taskExporter.Commit()
}

// Watch re-runs the import on a cron schedule, for exports that get
// regenerated in place.
func (uc *UseCase) Watch(cronExpr string) {
	taskr := tasker.New(tasker.Option{})
	taskr.Task(cronExpr, func(_ context.Context) (int, error) {
		return 0, uc.ImportOnce()
	})
	uc.pool.Go(func(ctx context.Context) error {
		taskr.Run()
		return nil
	})
}

func (uc *UseCase) Stop() {
	uc.pool.Wait()
}
