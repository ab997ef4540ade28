package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"icaltodoist/internal/config"
	"icaltodoist/internal/domain"
	"icaltodoist/internal/exporter/todoist"
	"icaltodoist/internal/importer"
)

func importCmd(ctx context.Context, log zerolog.Logger) {
	useCase := newUseCase(ctx, log)
	if err := useCase.ImportOnce(); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

func newUseCase(ctx context.Context, log zerolog.Logger) *domain.UseCase {
	cfg := config.Gist()

	var taskImporter importer.TaskImporter
	switch cfg.String(config.SOURCE) {
	case "caldav":
		taskImporter = importer.NewCalDAV(log)
	default:
		taskImporter = importer.NewFile(cfg.String(config.FILE), log)
	}

	client, err := todoist.NewClient(cfg.String(config.TODOIST_TOKEN), cfg.Bool(config.DRYRUN), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating todoist client")
	}
	return domain.New(ctx, taskImporter, client, cfg.String(config.PROJECT), cfg.Bool(config.REMINDERS), log)
}
