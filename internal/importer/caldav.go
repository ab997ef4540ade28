package importer

import (
	"fmt"
	"net/http"

	ics "github.com/arran4/golang-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"icaltodoist/internal/config"
)

var _ TaskImporter = (*CalDAV)(nil)

// CalDAV pulls the calendar export from a CalDAV collection instead of a
// local file.
type CalDAV struct {
	cl  *caldav.Client
	log zerolog.Logger
}

func NewCalDAV(log zerolog.Logger) *CalDAV {
	var httpClient webdav.HTTPClient = http.DefaultClient
	if config.Gist().Exists(config.CALDAV_USER) && config.Gist().Exists(config.CALDAV_PASS) {
		httpClient = webdav.HTTPClientWithBasicAuth(
			httpClient,
			config.Gist().String(config.CALDAV_USER),
			config.Gist().String(config.CALDAV_PASS),
		)
	}
	cl, err := caldav.NewClient(httpClient, config.Gist().String(config.CALDAV_URL))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating caldav client")
	}
	return &CalDAV{
		cl:  cl,
		log: log,
	}
}

func (c *CalDAV) Get() (TaskList, error) {
	cl := resty.New().
		SetBasicAuth(config.Gist().String(config.CALDAV_USER), config.Gist().String(config.CALDAV_PASS))
	resp, err := cl.R().SetDoNotParseResponse(true).Get(config.Gist().String(config.CALDAV_URL))
	if err != nil {
		return TaskList{}, errors.Wrap(err, "error getting calendar")
	}
	if resp.IsError() {
		return TaskList{}, errors.New(fmt.Sprintf("error getting calendar: %s", resp.Status()))
	}
	cal, err := ics.ParseCalendar(resp.RawBody())
	if err != nil {
		return TaskList{}, errors.Wrap(err, "error parsing calendar")
	}
	return tasksFromCalendar(cal, c.log), nil
}
