package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhakway/tracker/internal/domain"
)

func TestTrack_UnderReview(t *testing.T) {
	states := Track(string(domain.StatusUnderReview))
	require.Len(t, states, 6)

	byStatus := make(map[domain.ApplicationStatus]StepState, len(states))
	for _, s := range states {
		byStatus[s.Status] = s
	}

	assert.True(t, byStatus[domain.StatusInquiry].Completed)
	assert.True(t, byStatus[domain.StatusApplicationSubmitted].Completed)
	assert.True(t, byStatus[domain.StatusUnderReview].Completed)
	assert.True(t, byStatus[domain.StatusUnderReview].Current)

	assert.False(t, byStatus[domain.StatusOfferReceived].Completed)
	assert.False(t, byStatus[domain.StatusVisaApplied].Completed)
	assert.False(t, byStatus[domain.StatusCompleted].Completed)

	for _, s := range states {
		if s.Status != domain.StatusUnderReview {
			assert.False(t, s.Current, "step %s", s.Status)
		}
	}
}

func TestTrack_Order(t *testing.T) {
	want := []domain.ApplicationStatus{
		domain.StatusInquiry,
		domain.StatusApplicationSubmitted,
		domain.StatusUnderReview,
		domain.StatusOfferReceived,
		domain.StatusVisaApplied,
		domain.StatusCompleted,
	}
	states := Track("completed")
	require.Len(t, states, len(want))
	for i, s := range states {
		assert.Equal(t, want[i], s.Status)
		assert.True(t, s.Completed)
	}
	assert.True(t, states[len(states)-1].Current)
}

func TestTrack_ThresholdsComeFromProjection(t *testing.T) {
	for _, s := range Steps() {
		assert.Equal(t, Project(string(s.Status)).Percentage, s.Threshold(), "step %s", s.Status)
	}
}

func TestTrack_RejectedAndUnknownCompleteNothing(t *testing.T) {
	for _, in := range []string{"rejected", "unknown_status", ""} {
		for _, s := range Track(in) {
			assert.False(t, s.Completed, "input %q step %s", in, s.Status)
			assert.False(t, s.Current, "input %q step %s", in, s.Status)
		}
	}
}

func TestTrack_OffStepStatusHasNoCurrent(t *testing.T) {
	states := Track(string(domain.StatusDocumentsPending))
	completed := 0
	for _, s := range states {
		assert.False(t, s.Current)
		if s.Completed {
			completed++
		}
	}
	assert.Equal(t, 2, completed)
}

func TestSteps_ReturnsCopy(t *testing.T) {
	s := Steps()
	s[0].Label = "changed"
	assert.Equal(t, "So'rov", Steps()[0].Label)
}

func TestStep_JSONCarriesThreshold(t *testing.T) {
	data, err := json.Marshal(Steps()[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"under_review","label":"Ko'rib chiqish","threshold":50}`, string(data))
}
