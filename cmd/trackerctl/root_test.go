package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yuhakway/tracker/internal/progress"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusesCmd_Text(t *testing.T) {
	out, err := execute(t, "statuses")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "STATUS")
	assert.Contains(t, lines[1], "inquiry")
	assert.Contains(t, lines[1], "#3B82F6")
	assert.Contains(t, lines[9], "rejected")
}

func TestStatusesCmd_JSON(t *testing.T) {
	out, err := execute(t, "statuses", "--output", "json")
	require.NoError(t, err)

	var table []progress.Projection
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Len(t, table, 9)
	assert.Equal(t, 100, table[7].Percentage)
}

func TestProjectCmd(t *testing.T) {
	out, err := execute(t, "project", "custom_pending_stage", "-o", "json")
	require.NoError(t, err)

	var p progress.Projection
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.False(t, p.Known)
	assert.Equal(t, "Custom Pending Stage", p.Label)
	assert.Equal(t, progress.NeutralColor, p.Color)
}

func TestProjectCmd_YAML(t *testing.T) {
	out, err := execute(t, "project", "visa_approved", "-o", "yaml")
	require.NoError(t, err)

	var p map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, "#059669", p["color"])
	assert.Equal(t, 87, p["percentage"])
}

func TestStepsCmd_Text(t *testing.T) {
	out, err := execute(t, "steps", "under_review")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Regexp(t, `^inquiry\s+.*12%\s+x\s+-$`, lines[1])
	assert.Regexp(t, `^under_review\s+.*50%\s+x\s+x$`, lines[3])
	assert.Regexp(t, `^completed\s+.*100%\s+-\s+-$`, lines[6])
}

func TestRootCmd_Errors(t *testing.T) {
	_, err := execute(t, "statuses", "--output", "xml")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = execute(t, "project")
	assert.Error(t, err)
}
