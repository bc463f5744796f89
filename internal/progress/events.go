package progress

import "github.com/yuhakway/tracker/internal/domain"

// EventStyle is the color and icon of a calendar event type.
type EventStyle struct {
	Type  domain.EventType `json:"type"`
	Known bool             `json:"known"`
	Color Color            `json:"color"`
	Icon  string           `json:"icon"`
}

const defaultEventIcon = "calendar"

var eventStyles = map[domain.EventType]EventStyle{
	domain.EventDeadline:   {Color: rgb(0xEF4444), Icon: "time"},
	domain.EventInterview:  {Color: rgb(0x8B5CF6), Icon: "people"},
	domain.EventSubmission: {Color: rgb(0xF59E0B), Icon: "document-text"},
	domain.EventMeeting:    {Color: rgb(0x3B82F6), Icon: "calendar"},
}

// EventStyleFor returns the style for eventType, or the neutral style when the
// type is not one of the known kinds.
func EventStyleFor(eventType string) EventStyle {
	t := domain.EventType(eventType)
	style, ok := eventStyles[t]
	if !ok {
		return EventStyle{Type: t, Color: NeutralColor, Icon: defaultEventIcon}
	}
	style.Type = t
	style.Known = true
	return style
}
