package netlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLenient_NoIssuesOnCleanInput(t *testing.T) {
	text := "3 3\n1\n1 1\n1\n2 0 0 2 2\n"

	_, nl, issues, err := ParseLenient(strings.NewReader(text))
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, nl.Nets, 1)
}

func TestParseLenient_SinkOutOfRangeReportsCountMismatch(t *testing.T) {
	// net declares 2 pins (one source, one sink), but the sink is off-grid.
	text := "2 2\n0\n1\n2 0 0 9 9\n"

	_, nl, issues, err := ParseLenient(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, nl.Nets, 1)
	assert.Empty(t, nl.Nets[0].Sinks)

	assertIssueContains(t, issues, "coordinate (9,9) out of range")
	assertIssueContains(t, issues, "declared 2 pins but found 0 sinks")
}

func TestParseLenient_SourceCollisionReportsContentMismatch(t *testing.T) {
	// source sits on a pre-declared obstacle cell.
	text := "2 2\n1\n0 0\n1\n1 0 0 1 1\n"

	l, nl, issues, err := ParseLenient(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, nl.Nets, 1)

	src := l.Cell(nl.Nets[0].Source)
	assert.False(t, src.IsSource())
	assert.True(t, src.IsObstacle())

	assertIssueContains(t, issues, "already claimed")
	assertIssueContains(t, issues, "does not have Source content")
}

func TestParseLenient_DuplicatePinWithinNet(t *testing.T) {
	// a 3-pin net whose two sinks both land on (1,1).
	text := "3 3\n0\n1\n3 0 0 1 1 1 1\n"

	_, nl, issues, err := ParseLenient(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, nl.Nets, 1)
	require.Len(t, nl.Nets[0].Sinks, 2)

	assertIssueContains(t, issues, "already claimed")
	assertIssueContains(t, issues, "duplicate pin")
}

func TestParseLenient_StillFatalOnMissingHeaderField(t *testing.T) {
	_, _, _, err := ParseLenient(strings.NewReader("3\n0\n0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func assertIssueContains(t *testing.T, issues []Issue, substr string) {
	t.Helper()
	for _, issue := range issues {
		if strings.Contains(issue.Message, substr) {
			return
		}
	}
	t.Fatalf("expected an issue containing %q, got %+v", substr, issues)
}
