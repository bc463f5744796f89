package progress

import "github.com/yuhakway/tracker/internal/domain"

// DocumentStage is the state of the student's document check.
type DocumentStage string

const (
	DocumentsPending   DocumentStage = "pending"
	DocumentsVerifying DocumentStage = "verifying"
	DocumentsApproved  DocumentStage = "approved"
)

// DocumentState is the display form of a DocumentStage.
type DocumentState struct {
	Stage   DocumentStage `json:"stage"`
	Icon    string        `json:"icon"`
	Color   Color         `json:"color"`
	Message string        `json:"message"`
}

var documentStates = map[DocumentStage]DocumentState{
	DocumentsPending: {
		Stage:   DocumentsPending,
		Icon:    "time",
		Color:   rgb(0xF59E0B),
		Message: "Hujjatlar ko'rib chiqilmoqda",
	},
	DocumentsVerifying: {
		Stage:   DocumentsVerifying,
		Icon:    "hourglass",
		Color:   rgb(0x3B82F6),
		Message: "Hujjatlar tekshirilmoqda",
	},
	DocumentsApproved: {
		Stage:   DocumentsApproved,
		Icon:    "checkmark-circle",
		Color:   rgb(0x10B981),
		Message: "Hujjatlar tasdiqlandi",
	},
}

// DocumentStatusFor derives the document check state from an application
// status. Anything past review, unknown values included, reads as approved.
func DocumentStatusFor(status string) DocumentState {
	switch domain.ApplicationStatus(status) {
	case domain.StatusDocumentsPending:
		return documentStates[DocumentsPending]
	case domain.StatusApplicationSubmitted, domain.StatusUnderReview:
		return documentStates[DocumentsVerifying]
	default:
		return documentStates[DocumentsApproved]
	}
}
