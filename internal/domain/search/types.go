package search

// EventType is the coarse event category offered on the landing screen.
type EventType string

const (
	EventWedding   EventType = "Wedding"
	EventBirthday  EventType = "Birthday"
	EventCorporate EventType = "Corporate"
	EventSocial    EventType = "Social"
)

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	switch e {
	case EventWedding, EventBirthday, EventCorporate, EventSocial:
		return true
	default:
		return false
	}
}
