package netlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	text := "3 3\n1\n1 1\n1\n2 0 0 2 2\n"

	l, nl, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, 3, l.XSize)
	require.Equal(t, 3, l.YSize)

	require.True(t, l.At(1, 1).IsObstacle())

	require.Len(t, nl.Nets, 1)
	net := nl.Nets[0]
	assert.Equal(t, 1, net.NetNum)
	assert.Equal(t, 2, net.NumPins)
	assert.Len(t, net.Sinks, 1)

	src := l.Cell(net.Source)
	assert.True(t, src.IsSource())
	assert.Equal(t, 1, src.NetNum)
	assert.True(t, src.IsConnected())

	sink := l.Cell(net.Sinks[0])
	assert.True(t, sink.IsSink())
	assert.Equal(t, 4, sink.EstDistToSrc) // |2-0|+|2-0|
}

func TestParse_MalformedCases(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing ysize", "3\n0\n0\n"},
		{"non-numeric field", "3 x\n0\n0\n"},
		{"negative dims", "-1 3\n0\n0\n"},
		{"obstacle out of range", "2 2\n1\n5 5\n0\n"},
		{"net count missing", "2 2\n0\n"},
		{"source collides with obstacle", "2 2\n1\n0 0\n1\n1 0 0 1 1\n"},
		{"sink collides with source", "2 2\n0\n1\n2 0 0 0 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tc.text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput), "expected ErrMalformedInput, got %v", err)
		})
	}
}

func TestParse_MultiSinkNet(t *testing.T) {
	text := "5 5\n0\n1\n3 0 0 4 0 0 4\n"
	l, nl, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, nl.Nets, 1)
	net := nl.Nets[0]
	require.Len(t, net.Sinks, 2)

	for _, s := range net.Sinks {
		sink := l.Cell(s)
		assert.True(t, sink.IsSink())
	}
}
