package domain

import "slices"

// ApplicationStatus is the lifecycle stage of a university application as stored
// in the applications table. The backend is the only writer of this field.
type ApplicationStatus string

const (
	StatusInquiry              ApplicationStatus = "inquiry"
	StatusApplicationSubmitted ApplicationStatus = "application_submitted"
	StatusDocumentsPending     ApplicationStatus = "documents_pending"
	StatusUnderReview          ApplicationStatus = "under_review"
	StatusOfferReceived        ApplicationStatus = "offer_received"
	StatusVisaApplied          ApplicationStatus = "visa_applied"
	StatusVisaApproved         ApplicationStatus = "visa_approved"
	StatusCompleted            ApplicationStatus = "completed"
	StatusRejected             ApplicationStatus = "rejected"
)

// Statuses returns the closed set in canonical progression order, with the
// rejected status last.
func Statuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusInquiry,
		StatusApplicationSubmitted,
		StatusDocumentsPending,
		StatusUnderReview,
		StatusOfferReceived,
		StatusVisaApplied,
		StatusVisaApproved,
		StatusCompleted,
		StatusRejected,
	}
}

// IsKnown reports whether s is a member of the closed status set.
func (s ApplicationStatus) IsKnown() bool {
	return slices.Contains(Statuses(), s)
}

// IsTerminal reports whether no further transition is expected.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}
