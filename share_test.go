package vaultfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemultiplexSeparatesShareLines(t *testing.T) {
	shareA := ID("AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA")
	shareB := ID("BBBBBBBB-BBBB-BBBB-BBBB-BBBBBBBBBBBB")

	baseLine := line(t, "cgr", string(RootID), string(GenerateID()))
	aLine1 := line(t, "cen", string(GenerateID()), string(GenerateID()))
	aLine2 := line(t, "sep", string(GenerateID()), "k", "v")
	bLine1 := line(t, "tgr", string(GenerateID()), "title")

	history := []string{
		baseLine,
		buildShareLine(shareA, aLine1),
		buildShareLine(shareB, bLine1),
		buildShareLine(shareA, aLine2),
	}

	base, shares := Demultiplex(history)
	require.Equal(t, []string{baseLine}, base)
	require.Contains(t, shares, shareA)
	require.Contains(t, shares, shareB)
	assert.Equal(t, []string{aLine1, aLine2}, shares[shareA])
	assert.Equal(t, []string{bLine1}, shares[shareB])
}

func TestDemultiplexEmptyHistory(t *testing.T) {
	base, shares := Demultiplex(nil)
	assert.Empty(t, base)
	assert.Empty(t, shares)
}
