package importer

import (
	"github.com/rs/zerolog"
)

var _ TaskImporter = (*Noop)(nil)

type Noop struct {
	log zerolog.Logger
}

func NewNoop(log zerolog.Logger) *Noop {
	return &Noop{log: log}
}

func (i *Noop) Get() (TaskList, error) {
	i.log.Info().Msg("noop importer get tasks call")
	return TaskList{}, nil
}
