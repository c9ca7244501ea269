package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{input: "Todo", want: TaskStatusTodo},
		{input: "In Progress", want: TaskStatusInProgress},
		{input: "In Review", want: TaskStatusInReview},
		{input: "Completed", want: TaskStatusCompleted},
		// legacy vocabulary translates to the canonical enum
		{input: "todo", want: TaskStatusTodo},
		{input: "in-progress", want: TaskStatusInProgress},
		{input: "review", want: TaskStatusInReview},
		{input: "done", want: TaskStatusCompleted},
		{input: "blocked", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "High", want: PriorityHigh},
		// lowercase legacy spellings normalize to canonical casing
		{input: "high", want: PriorityHigh},
		{input: " medium ", want: PriorityMedium},
		{input: "LOW", want: PriorityLow},
		{input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseProjectStatus(t *testing.T) {
	got, err := ParseProjectStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, ProjectStatusInProgress, got)

	got, err = ParseProjectStatus("on hold")
	require.NoError(t, err)
	assert.Equal(t, ProjectStatusOnHold, got)

	_, err = ParseProjectStatus("archived")
	require.Error(t, err)
}
