package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"icaltodoist/internal/domain"
	"icaltodoist/internal/exporter"
	"icaltodoist/internal/importer"
)

func noopCmd(ctx context.Context, log zerolog.Logger) {
	useCase := domain.New(ctx, importer.NewNoop(log), exporter.NewNoop(log), "noop", false, log)
	if err := useCase.ImportOnce(); err != nil {
		log.Err(err).Msg("noop run failed")
	}
}
