package script

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/exfc/internal/render"
	"github.com/msto63/exfc/pkg/exception"
)

const demoScript = `
name: demo
steps:
  - op: add
    name: TimeoutException
    description: operation timed out
    id: 40
  - op: add-next
    name: RetryException
  - op: add
    name: TimeoutException
    id: 41
    expect: duplicate
  - op: find
    id: 40
  - op: remove
    name: TimeoutException
  - op: find
    name: TimeoutException
    expect: not-found
  - op: compact
  - op: list
`

func newRunner(t *testing.T, capacity int) (*Runner, *exception.Registry, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	reg := exception.New(exception.Config{Capacity: capacity, IDOffset: 1})
	return NewRunner(reg, render.New(&out, true), nil), reg, &out
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(demoScript))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Steps, 8)
	assert.Equal(t, OpAdd, s.Steps[0].Op)
	assert.Equal(t, 40, *s.Steps[0].ID)
	assert.Equal(t, 4, s.Steps[0].Line)
	assert.Equal(t, OutcomeDuplicate, s.Steps[2].Expect)
}

func TestParseRejectsInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown op", "steps:\n  - op: explode\n", "unknown op"},
		{"add without id", "steps:\n  - op: add\n    name: A\n", "add requires id"},
		{"add-next without name", "steps:\n  - op: add-next\n", "add-next requires name"},
		{"remove without key", "steps:\n  - op: remove\n", "requires name or id"},
		{"bad expectation", "steps:\n  - op: list\n    expect: maybe\n", "unknown expectation"},
		{"broken yaml", "steps: [", "failed to parse script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScript)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(demoScript))
	require.NoError(t, err)

	runner, reg, out := newRunner(t, 8)
	results, err := runner.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 8)

	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 1, results[1].ID, "add-next starts at the offset")
	assert.Equal(t, OutcomeDuplicate, results[2].Outcome)
	assert.Equal(t, 40, results[3].ID)
	assert.Equal(t, OutcomeNotFound, results[5].Outcome)
	assert.Equal(t, 1, results[6].Index)

	for _, res := range results {
		assert.False(t, res.Failed(), "step %d", res.Step)
	}

	all, err := reg.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []exception.Record{{Name: "RetryException", ID: 1}}, all)
	assert.Contains(t, out.String(), "added TimeoutException (id 40) at slot 0")
	assert.Contains(t, out.String(), "0\t40\tTimeoutException\toperation timed out\n")
}

func TestRunStopsOnUnexpectedOutcome(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - op: add
    name: A
    id: 1
  - op: add
    name: A
    id: 2
  - op: add
    name: B
    id: 3
`))
	require.NoError(t, err)

	runner, reg, _ := newRunner(t, 4)
	results, err := runner.Run(context.Background(), s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, exception.ErrDuplicate)
	assert.Contains(t, err.Error(), "step 2 (add, line 6): expected ok, got duplicate")

	require.Len(t, results, 2)
	assert.True(t, results[1].Failed())
	assert.Equal(t, 1, reg.Len())
}

func TestRunContinueOnError(t *testing.T) {
	s, err := Parse([]byte(`
continue_on_error: true
steps:
  - op: remove
    id: 9
  - op: add
    name: A
    id: 1
  - op: find
    name: A
    expect: not-found
`))
	require.NoError(t, err)

	runner, reg, _ := newRunner(t, 4)
	results, err := runner.Run(context.Background(), s)
	require.Error(t, err)
	assert.Len(t, results, 3)
	assert.True(t, results[0].Failed())
	assert.False(t, results[1].Failed())
	assert.True(t, results[2].Failed())
	assert.Contains(t, err.Error(), "expected not-found, got ok")
	assert.Equal(t, 1, reg.Len())
}

func TestRunThrow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "throw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: throw
steps:
  - op: add
    name: TimeoutException
    description: operation timed out
    id: 40
  - op: throw
    name: TimeoutException
    message: giving up
  - op: list
`), 0644))

	s, err := ReadFile(path)
	require.NoError(t, err)

	runner, _, _ := newRunner(t, 4)
	results, err := runner.Run(context.Background(), s)
	require.Error(t, err)
	assert.Len(t, results, 1, "the throw step ends the run")

	fatal, ok := exception.AsFatal(err)
	require.True(t, ok)
	assert.Equal(t, 40, fatal.Exception.ID)
	assert.Equal(t, "operation timed out", fatal.Exception.Description)
	assert.Equal(t, "giving up", fatal.Message)
	assert.Equal(t, exception.Location{File: "throw.yaml", Line: 8, Function: "step 2"}, fatal.Location)
}

func TestRunFatalFromRegistry(t *testing.T) {
	s := &Script{Steps: []Step{{Op: OpAddNext, Name: strings.Repeat("x", exception.DefaultBufferMax+1)}}}

	runner, _, _ := newRunner(t, 2)
	_, err := runner.Run(context.Background(), s)
	assert.True(t, exception.IsFatal(err))
}

func TestRunCancelled(t *testing.T) {
	s, err := Parse([]byte(demoScript))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, reg, _ := newRunner(t, 8)
	results, err := runner.Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Zero(t, reg.Len())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
