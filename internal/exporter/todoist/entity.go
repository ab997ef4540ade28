package todoist

const (
	CommandProjectAdd  = "project_add"
	CommandItemAdd     = "item_add"
	CommandItemClose   = "item_close"
	CommandReminderAdd = "reminder_add"
)

// Commit error codes returned by the sync endpoint.
const (
	errCodeRateLimited = 35
	errCodeUnavailable = 40
)

// Command is one queued mutation. TempID lets later commands in the same
// batch reference the created object before the server assigns a durable id.
type Command struct {
	Type   string `json:"type"`
	TempID string `json:"temp_id,omitempty"`
	UUID   string `json:"uuid"`
	Args   any    `json:"args"`
}

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectArgs struct {
	Name string `json:"name"`
}

type ItemArgs struct {
	Content          string `json:"content"`
	ProjectID        string `json:"project_id,omitempty"`
	DueDateUTC       string `json:"due_date_utc,omitempty"`
	DateString       string `json:"date_string,omitempty"`
	Status           string `json:"status,omitempty"`
	HasNotifications bool   `json:"has_notifications"`
}

type CloseArgs struct {
	ID string `json:"id"`
}

type ReminderArgs struct {
	ItemID       string `json:"item_id"`
	Service      string `json:"service"`
	Type         string `json:"type"`
	MinuteOffset int    `json:"minute_offset"`
}

// Item is the handle returned for a queued item creation. ID holds the
// client temp id until a commit maps it to the server-assigned one.
type Item struct {
	ID         string
	DueDateUTC string
}

type syncRequest struct {
	SyncToken     string    `json:"sync_token,omitempty"`
	ResourceTypes []string  `json:"resource_types,omitempty"`
	Commands      []Command `json:"commands,omitempty"`
}

type syncResponse struct {
	SyncToken     string            `json:"sync_token"`
	Projects      []Project         `json:"projects"`
	TempIDMapping map[string]string `json:"temp_id_mapping"`
	ErrorCode     int               `json:"error_code"`
	ErrorTag      string            `json:"error_tag"`
	ErrorExtra    struct {
		RetryAfter int `json:"retry_after"`
	} `json:"error_extra"`
}
