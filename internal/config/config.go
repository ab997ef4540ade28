package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

var cfg *koanf.Koanf

const (
	CMD           = "cmd"
	LOG_LEVEL     = "log.level"
	FILE          = "file"
	SOURCE        = "source"
	CALDAV_URL    = "caldav.url"
	CALDAV_USER   = "caldav.user"
	CALDAV_PASS   = "caldav.pass"
	TODOIST_TOKEN = "todoist.token"
	PROJECT       = "project"
	REMINDERS     = "reminders"
	DRYRUN        = "dryrun"
	CRON          = "cron"
)

func Gist() *koanf.Koanf {
	if cfg == nil {
		ini()
	}
	return cfg
}

func Sprint() string {
	sb := strings.Builder{}
	sb.WriteString("cmd|required|-\n")
	sb.WriteString("log_level|optional|info\n")
	sb.WriteString("file|required for file source|-\n")
	sb.WriteString("source|optional|file\n")
	sb.WriteString("caldav_url|required for caldav source|-\n")
	sb.WriteString("caldav_user|optional|-\n")
	sb.WriteString("caldav_pass|optional|-\n")
	sb.WriteString("todoist_token|required|-\n")
	sb.WriteString("project|required|-\n")
	sb.WriteString("reminders|optional|false\n")
	sb.WriteString("dryrun|optional|false\n")
	sb.WriteString("cron|optional|0 0 * * * * *\n")
	return sb.String()
}

func ini() {
	cfg = koanf.New(".")
	cfg.Set(LOG_LEVEL, "info")

	f := flag.NewFlagSet("config", flag.ContinueOnError)
	f.Usage = func() {
		fmt.Println(f.FlagUsages())
		os.Exit(0)
	}

	f.String(CMD, "", "application run mode")
	f.String(LOG_LEVEL, "info", "log level")
	f.String(FILE, "", "ical export file to import")
	f.String(SOURCE, "file", "task source: file or caldav")
	f.String(CALDAV_URL, "", "caldav url")
	f.String(CALDAV_USER, "", "caldav user")
	f.String(CALDAV_PASS, "", "caldav password")
	f.String(TODOIST_TOKEN, "", "todoist api token")
	f.String(PROJECT, "", "destination todoist project name")
	f.Bool(REMINDERS, false, "add reminders to tasks that have a due date (requires todoist premium)")
	f.Bool(DRYRUN, false, "parse the calendar data but do not commit to the todoist api")
	f.String(CRON, "0 0 * * * * *", "cron expression for the watch command")
	f.Parse(os.Args[1:])
	if err := cfg.Load(posflag.Provider(f, ".", cfg), nil); err != nil {
		log.Panic().Err(err).Msg("error loading config")
	}
	lvl, err := zerolog.ParseLevel(cfg.String(LOG_LEVEL))
	if err != nil {
		log.Panic().Err(err).Msg("error parsing log level")
	}
	zerolog.SetGlobalLevel(lvl)

	printCfg()
}

func printCfg() {
	log.Debug().Msgf("cmd: %s", cfg.String(CMD))
	log.Debug().Msgf("log_level: %s", cfg.String(LOG_LEVEL))
	log.Debug().Msgf("file: %s", cfg.String(FILE))
	log.Debug().Msgf("source: %s", cfg.String(SOURCE))
	log.Debug().Msgf("caldav_url: %s", cfg.String(CALDAV_URL))
	log.Debug().Msgf("caldav_user: %s", cfg.String(CALDAV_USER))
	log.Debug().Msgf("todoist_project: %s", cfg.String(PROJECT))
	log.Debug().Msgf("reminders: %t", cfg.Bool(REMINDERS))
	log.Debug().Msgf("dryrun: %t", cfg.Bool(DRYRUN))
	log.Debug().Msgf("cron: %s", cfg.String(CRON))
}
