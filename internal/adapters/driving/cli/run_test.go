package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// --- Mock driving services ---

type mockPipelineRunner struct {
	summary *domain.RunSummary
	err     error

	gotQuery domain.SearchQuery
	gotStart int
	gotEnd   int
}

func (m *mockPipelineRunner) Run(_ context.Context, query domain.SearchQuery, start, end int) (*domain.RunSummary, error) {
	m.gotQuery = query
	m.gotStart = start
	m.gotEnd = end
	return m.summary, m.err
}

type mockReplayRunner struct {
	summary *domain.RunSummary
	err     error
	called  bool
}

func (m *mockReplayRunner) Replay(_ context.Context) (*domain.RunSummary, error) {
	m.called = true
	return m.summary, m.err
}

type mockStatusReporter struct {
	counts *domain.TableCounts
	err    error
}

func (m *mockStatusReporter) Counts(_ context.Context) (*domain.TableCounts, error) {
	return m.counts, m.err
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func withPipelineRunner(t *testing.T, r *mockPipelineRunner) {
	t.Helper()
	original := pipelineRunner
	SetPipelineRunner(r)
	t.Cleanup(func() { pipelineRunner = original })
}

func TestRunCmd_InvokesPipeline(t *testing.T) {
	runner := &mockPipelineRunner{
		summary: &domain.RunSummary{RunID: "run-1", Total: 5, Succeeded: 5},
	}
	withPipelineRunner(t, runner)

	out, err := execute(t, "run",
		"--start", "10", "--end", "35",
		"--keywords", "engineer",
		"--past-company", "1337",
		"--school", "42")
	require.NoError(t, err)

	assert.Equal(t, 10, runner.gotStart)
	assert.Equal(t, 35, runner.gotEnd)
	assert.Equal(t, domain.SearchQuery{
		Keywords:      "engineer",
		PastCompanyID: "1337",
		SchoolID:      "42",
	}, runner.gotQuery)
	assert.Contains(t, out, "processed=5 succeeded=5")
}

func TestRunCmd_RejectsEmptyRange(t *testing.T) {
	withPipelineRunner(t, &mockPipelineRunner{})

	_, err := execute(t, "run", "--start", "10", "--end", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be greater than")
}

func TestRunCmd_ReportsSummaryOnFailure(t *testing.T) {
	runner := &mockPipelineRunner{
		summary: &domain.RunSummary{RunID: "run-1", Total: 2, UpstreamErrors: 4},
		err:     errors.New("aborting after 4 consecutive upstream errors"),
	}
	withPipelineRunner(t, runner)

	out, err := execute(t, "run", "--start", "0", "--end", "10")
	require.Error(t, err)

	// The partial summary is still printed before the error surfaces.
	assert.Contains(t, out, "upstream-errors=4")
}

func TestRunCmd_WithoutService(t *testing.T) {
	original := pipelineRunner
	pipelineRunner = nil
	t.Cleanup(func() { pipelineRunner = original })

	_, err := execute(t, "run", "--start", "0", "--end", "10")
	assert.ErrorContains(t, err, "not configured")
}
