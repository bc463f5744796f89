package service

import (
	"github.com/yuhakway/tracker/internal/domain"
	"github.com/yuhakway/tracker/internal/progress"
)

// ApplicationSummary is an application as listed on the dashboard.
type ApplicationSummary struct {
	domain.Application
	Progress progress.Projection `json:"progress"`
}

// ApplicationDetail is an application with everything its detail screen shows.
type ApplicationDetail struct {
	ApplicationSummary
	Steps     []progress.StepState   `json:"steps"`
	Documents progress.DocumentState `json:"documents"`
}

// EventView is a calendar event with its display style.
type EventView struct {
	domain.CalendarEvent
	Style progress.EventStyle `json:"style"`
}

// Overview bundles the profile, dashboard and calendar of one user.
type Overview struct {
	Profile      *domain.Profile      `json:"profile"`
	Applications []ApplicationSummary `json:"applications"`
	Events       []EventView          `json:"events"`
}

func summarize(app domain.Application) ApplicationSummary {
	return ApplicationSummary{
		Application: app,
		Progress:    progress.Project(string(app.Status)),
	}
}

func eventView(ev domain.CalendarEvent) EventView {
	return EventView{
		CalendarEvent: ev,
		Style:         progress.EventStyleFor(string(ev.EventType)),
	}
}
