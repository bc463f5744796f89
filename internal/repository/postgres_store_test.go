package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhakway/tracker/internal/progress"
)

func TestNewPostgresStore_InvalidDSN(t *testing.T) {
	_, err := NewPostgresStore(context.Background(), "postgres://%zz")
	assert.Error(t, err)
}

func TestPostgresColumns_NullableTextIsCoalesced(t *testing.T) {
	tests := []struct {
		columns string
		names   []string
	}{
		{applicationColumns, []string{"university", "program", "status", "notes"}},
		{eventColumns, []string{"title", "description", "event_type"}},
	}
	for _, tt := range tests {
		for _, name := range tt.names {
			assert.Contains(t, tt.columns, "COALESCE("+name+", '')", "column %s", name)
		}
		assert.False(t, strings.Contains(tt.columns, ", status,"), "raw status column in %q", tt.columns)
	}
}

// coalescedRow stands in for a pgx row whose NULL text columns came back as "".
type coalescedRow struct {
	id, student uuid.UUID
	created     time.Time
}

func (r coalescedRow) Scan(dest ...any) error {
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*uuid.UUID) = r.student
	for _, d := range dest[2:6] {
		*d.(*string) = ""
	}
	*dest[6].(*time.Time) = r.created
	return nil
}

func TestScanApplication_EmptyStatusFallsBack(t *testing.T) {
	row := coalescedRow{id: uuid.New(), student: uuid.New(), created: time.Now().UTC()}

	a, err := scanApplication(row)
	require.NoError(t, err)
	assert.Equal(t, row.id, a.ID)
	assert.Empty(t, a.Status)

	p := progress.Project(string(a.Status))
	assert.False(t, p.Known)
	assert.Equal(t, progress.NeutralColor, p.Color)
	assert.Zero(t, p.Percentage)
}
