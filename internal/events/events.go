package events

import "encoding/json"

// Tables whose row changes feed the realtime channel.
const (
	TableFuelEntries = "fuel_entries"
	TableFuelExits   = "fuel_exits"
)

// Actions attached to a change event.
const (
	ActionInsert = "INSERT"
	ActionDelete = "DELETE"
)

// ChangeEvent is the payload published whenever an inventory row changes.
// Subscribers only use it as a refetch hint; the payload intentionally
// carries no row data.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"`
}

// Encode serializes the event for the pub/sub channel.
func (e ChangeEvent) Encode() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a channel payload back into an event.
func Decode(payload string) (ChangeEvent, error) {
	var event ChangeEvent
	err := json.Unmarshal([]byte(payload), &event)
	return event, err
}
