package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"icaltodoist/internal/config"
)

// Blocking command func; returns when the run is finished.
type command func(ctx context.Context, log zerolog.Logger)

type commandRegistry map[string]command

var commands = commandRegistry{
	"import": importCmd,
	"watch":  watchCmd,
	"noop":   noopCmd,
}

func Run() {
	cmd := config.Gist().String(config.CMD)
	cmdFn, ok := commands[cmd]
	if !ok {
		help()
		return
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdFn(ctx, log)
}

func help() {
	fmt.Println("Usage: icaltodoist [command]")
	fmt.Println("Commands: import, watch, noop")
	fmt.Println("Example: icaltodoist import --file tasks.ics --todoist.token TOKEN --project Inbox")
	fmt.Println("Config params (name|required|default):\v")
	fmt.Println(config.Sprint())
}
