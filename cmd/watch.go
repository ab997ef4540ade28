package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"icaltodoist/internal/config"
)

func watchCmd(ctx context.Context, log zerolog.Logger) {
	useCase := newUseCase(ctx, log)
	useCase.Watch(config.Gist().String(config.CRON))

	doneCh := make(chan os.Signal, 1)
	signal.Notify(doneCh, os.Interrupt, syscall.SIGTERM)
	<-doneCh
	useCase.Stop()
}
