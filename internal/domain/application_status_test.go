package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_IsKnown(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsKnown(), s)
	}
	for _, s := range []ApplicationStatus{"", "INQUIRY", " inquiry", "legacy_stage"} {
		assert.False(t, s.IsKnown(), "%q", s)
	}
}
