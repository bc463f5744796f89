package progress

import (
	"encoding/json"

	"github.com/yuhakway/tracker/internal/domain"
)

// Step is a checkpoint of the discrete step tracker.
type Step struct {
	Status domain.ApplicationStatus
	Label  string
}

// Threshold is the percentage at which the step counts as reached.
func (s Step) Threshold() int {
	return table[s.Status].percentage
}

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status    domain.ApplicationStatus `json:"status"`
		Label     string                   `json:"label"`
		Threshold int                      `json:"threshold"`
	}{s.Status, s.Label, s.Threshold()})
}

var steps = []Step{
	{Status: domain.StatusInquiry, Label: "So'rov"},
	{Status: domain.StatusApplicationSubmitted, Label: "Yuborildi"},
	{Status: domain.StatusUnderReview, Label: "Ko'rib chiqish"},
	{Status: domain.StatusOfferReceived, Label: "Taklif"},
	{Status: domain.StatusVisaApplied, Label: "Viza"},
	{Status: domain.StatusCompleted, Label: "Tugallandi"},
}

// Steps returns the canonical checkpoints in display order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// StepState is one checkpoint evaluated against a current status.
type StepState struct {
	Status    domain.ApplicationStatus `json:"status" yaml:"status"`
	Label     string                   `json:"label" yaml:"label"`
	Threshold int                      `json:"threshold" yaml:"threshold"`
	Completed bool                     `json:"completed" yaml:"completed"`
	Current   bool                     `json:"current" yaml:"current"`
}

// Track evaluates every checkpoint for status. A step is completed when the
// status percentage reaches its threshold and current when it names the status.
func Track(status string) []StepState {
	pct := Percentage(status)
	out := make([]StepState, 0, len(steps))
	for _, s := range steps {
		threshold := s.Threshold()
		out = append(out, StepState{
			Status:    s.Status,
			Label:     s.Label,
			Threshold: threshold,
			Completed: pct >= threshold,
			Current:   string(s.Status) == status,
		})
	}
	return out
}
