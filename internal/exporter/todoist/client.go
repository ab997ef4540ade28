package todoist

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"icaltodoist/internal/importer"
)

const (
	baseURL  = "https://api.todoist.com"
	syncPath = "/sync/v9/sync"

	// The sync API caps a transaction at 100 commands. Flush a little early.
	defaultBatchLimit = 90

	// Rate limit is 50 requests/min; error_code 35 means we hit it.
	maxCommitTries    = 3
	rateLimitCooldown = 65 * time.Second

	// Default backoff for error_code 40 when no retry_after is supplied.
	defaultRetryAfter = 30 * time.Second
)

// Client is a stateful sync session. All mutating calls are queued and
// submitted in bounded batches; Commit flushes whatever is pending.
// Not safe for concurrent use.
type Client struct {
	rc         *resty.Client
	log        zerolog.Logger
	projects   []*Project
	commands   []Command
	pendingIDs map[string]*string
	dryRun     bool
	batchLimit int
	maxTries   int
	sleep      func(time.Duration)
}

func NewClient(token string, dryRun bool, log zerolog.Logger) (*Client, error) {
	c := newClient(resty.New().SetBaseURL(baseURL).SetAuthToken(token), dryRun, log)
	if err := c.fullSync(); err != nil {
		return nil, err
	}
	return c, nil
}

func newClient(rc *resty.Client, dryRun bool, log zerolog.Logger) *Client {
	return &Client{
		rc:         rc,
		log:        log,
		pendingIDs: make(map[string]*string),
		dryRun:     dryRun,
		batchLimit: defaultBatchLimit,
		maxTries:   maxCommitTries,
		sleep:      time.Sleep,
	}
}

// fullSync fetches the known projects once at session start.
func (c *Client) fullSync() error {
	var out syncResponse
	resp, err := c.rc.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString()).
		SetBody(syncRequest{SyncToken: "*", ResourceTypes: []string{"projects"}}).
		SetResult(&out).
		Post(syncPath)
	if err != nil {
		return errors.Wrap(err, "error syncing todoist projects")
	}
	if resp.IsError() {
		return errors.New(fmt.Sprintf("error syncing todoist projects: %s", resp.Status()))
	}
	c.projects = make([]*Project, 0, len(out.Projects))
	for i := range out.Projects {
		c.projects = append(c.projects, &out.Projects[i])
	}
	c.log.Debug().Int("projects", len(c.projects)).Msg("synced todoist projects")
	return nil
}

// GetProject returns the project with an exact name match, creating it
// when none exists.
func (c *Client) GetProject(name string) (*Project, error) {
	for _, project := range c.projects {
		if project.Name == name {
			return project, nil
		}
	}
	return c.createProject(name)
}

func (c *Client) createProject(name string) (*Project, error) {
	if err := c.maybeFlush(); err != nil {
		return nil, err
	}
	project := &Project{ID: uuid.NewString(), Name: name}
	c.commands = append(c.commands, Command{
		Type:   CommandProjectAdd,
		TempID: project.ID,
		UUID:   uuid.NewString(),
		Args:   ProjectArgs{Name: name},
	})
	c.pendingIDs[project.ID] = &project.ID
	c.projects = append(c.projects, project)
	c.log.Debug().Str("project", name).Str("tempID", project.ID).Msg("queued project creation")
	return project, nil
}

// AddItem maps the task and queues its creation. A COMPLETED task also
// gets a close command against the same temp id.
func (c *Client) AddItem(project *Project, task importer.Task, location *time.Location) (*Item, error) {
	if err := c.maybeFlush(); err != nil {
		return nil, err
	}
	args := MapTask(task, location, c.log)
	args.ProjectID = project.ID
	c.log.Debug().Str("summary", task.Summary).Interface("args", args).Msg("queueing item creation")
	item := &Item{ID: uuid.NewString(), DueDateUTC: args.DueDateUTC}
	c.commands = append(c.commands, Command{
		Type:   CommandItemAdd,
		TempID: item.ID,
		UUID:   uuid.NewString(),
		Args:   args,
	})
	c.pendingIDs[item.ID] = &item.ID
	if args.Status == importer.StatusCompleted {
		if err := c.closeItem(item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (c *Client) closeItem(item *Item) error {
	if err := c.maybeFlush(); err != nil {
		return err
	}
	c.commands = append(c.commands, Command{
		Type: CommandItemClose,
		UUID: uuid.NewString(),
		Args: CloseArgs{ID: item.ID},
	})
	c.log.Info().Str("itemID", item.ID).Msg("marked item as completed")
	return nil
}

// AddReminder queues a push reminder firing at the item's due time.
// Items without a due date are skipped, not failed.
func (c *Client) AddReminder(item *Item) error {
	if item.DueDateUTC == "" {
		c.log.Debug().Str("itemID", item.ID).Msg("not adding reminder, item has no associated date")
		return nil
	}
	if err := c.maybeFlush(); err != nil {
		return err
	}
	c.commands = append(c.commands, Command{
		Type:   CommandReminderAdd,
		TempID: uuid.NewString(),
		UUID:   uuid.NewString(),
		Args: ReminderArgs{
			ItemID:       item.ID,
			Service:      "push",
			Type:         "relative",
			MinuteOffset: 0,
		},
	})
	c.log.Debug().Str("itemID", item.ID).Msg("queued reminder")
	return nil
}

// maybeFlush commits the pending batch before another command would push
// it past the per-transaction limit. Every mutating method calls this
// before queueing.
func (c *Client) maybeFlush() error {
	if len(c.commands) < c.batchLimit {
		return nil
	}
	c.log.Debug().Int("pending", len(c.commands)).Msg("command batch limit reached, committing batch")
	return c.Commit()
}

// Commit submits all queued commands as one transaction and resets the
// pending batch. Transient failures are retried: rate limiting with a
// fixed cool-down and a bounded attempt count, unavailability with the
// server-supplied backoff without consuming attempts.
func (c *Client) Commit() error {
	if len(c.commands) == 0 {
		c.log.Debug().Msg("nothing to commit")
		return nil
	}
	if c.dryRun {
		c.log.Info().Int("commands", len(c.commands)).Msg("dry run is set, not committing")
		c.commands = nil
		return nil
	}
	commands := c.commands
	c.commands = nil

	tries := 0
	for {
		var out syncResponse
		resp, err := c.rc.R().
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Request-Id", uuid.NewString()).
			SetBody(syncRequest{Commands: commands}).
			SetResult(&out).
			SetError(&out).
			Post(syncPath)
		if err != nil {
			return errors.Wrap(err, "error committing todoist commands")
		}
		if out.ErrorCode == errCodeRateLimited {
			if tries >= c.maxTries {
				return errors.New("error committing todoist commands: too many retries")
			}
			c.log.Info().Dur("cooldown", rateLimitCooldown).Msg("api rate limit reached, waiting before trying again")
			c.sleep(rateLimitCooldown)
			tries++
			continue
		}
		if out.ErrorCode == errCodeUnavailable {
			retryAfter := defaultRetryAfter
			if out.ErrorExtra.RetryAfter > 0 {
				retryAfter = time.Duration(out.ErrorExtra.RetryAfter) * time.Second
			}
			c.log.Info().Dur("retryAfter", retryAfter).Msg("api unavailable, retrying")
			c.sleep(retryAfter)
			continue
		}
		if resp.IsError() {
			return errors.New(fmt.Sprintf("error committing todoist commands: %s", resp.Status()))
		}
		for temp, durable := range out.TempIDMapping {
			if id, ok := c.pendingIDs[temp]; ok {
				*id = durable
				delete(c.pendingIDs, temp)
			}
		}
		c.log.Info().Int("commands", len(commands)).Msg("commit succeeded")
		return nil
	}
}
