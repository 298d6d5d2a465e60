package vaultfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, short string, args ...string) string {
	t.Helper()
	l, err := BuildCommand(short, args...)
	require.NoError(t, err)
	return l
}

func TestReplayCreateGroupAtRoot(t *testing.T) {
	groupID := GenerateID()
	history := []string{line(t, "cgr", string(RootID), string(groupID))}

	d, err := Replay(history)
	require.NoError(t, err)

	g, ok := d.findGroup(groupID)
	require.True(t, ok)
	assert.Equal(t, RootID, g.ParentID)
	assert.Contains(t, d.Groups, g)
}

func TestReplayFullEntryLifecycle(t *testing.T) {
	groupID := GenerateID()
	entryID := GenerateID()
	history := []string{
		line(t, "cgr", string(RootID), string(groupID)),
		line(t, "tgr", string(groupID), "Personal"),
		line(t, "cen", string(groupID), string(entryID)),
		line(t, "sep", string(entryID), "username", "alice"),
		line(t, "sep", string(entryID), "password", "s3cr3t"),
	}

	d, err := Replay(history)
	require.NoError(t, err)

	e, ok := d.findEntry(entryID)
	require.True(t, ok)
	assert.Equal(t, "alice", e.Properties["username"])
	assert.Equal(t, "s3cr3t", e.Properties["password"])
	assert.Equal(t, "2", e.Attributes["rev"])
}

func TestReplayRejectsDuplicateGroupID(t *testing.T) {
	groupID := GenerateID()
	history := []string{
		line(t, "cgr", string(RootID), string(groupID)),
		line(t, "cgr", string(RootID), string(groupID)),
	}
	_, err := Replay(history)
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindCommandExecutionError, verr.Kind())
	assert.Equal(t, "cgr", verr.ShortKey())
}

func TestReplayRejectsCreateGroupWithMissingParent(t *testing.T) {
	history := []string{line(t, "cgr", string(GenerateID()), string(GenerateID()))}
	_, err := Replay(history)
	require.Error(t, err)
}

func TestReplayRejectsMoveGroupBeneathOwnDescendant(t *testing.T) {
	parent := GenerateID()
	child := GenerateID()
	history := []string{
		line(t, "cgr", string(RootID), string(parent)),
		line(t, "cgr", string(parent), string(child)),
		line(t, "mgr", string(parent), string(child)),
	}
	_, err := Replay(history)
	require.Error(t, err)
}

func TestReplayDeleteGroupRemovesDescendantEntries(t *testing.T) {
	parent := GenerateID()
	entryID := GenerateID()
	history := []string{
		line(t, "cgr", string(RootID), string(parent)),
		line(t, "cen", string(parent), string(entryID)),
		line(t, "dgr", string(parent)),
	}
	d, err := Replay(history)
	require.NoError(t, err)
	_, ok := d.findGroup(parent)
	assert.False(t, ok)
	_, ok = d.findEntry(entryID)
	assert.False(t, ok)
}

func TestReplayShareScopedLineIsAppliedToBaseDataset(t *testing.T) {
	shareID := ID("AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA")
	groupID := GenerateID()
	history := []string{
		buildShareLine(shareID, line(t, "cgr", string(RootID), string(groupID))),
	}
	d, err := Replay(history)
	require.NoError(t, err)
	_, ok := d.findGroup(groupID)
	assert.True(t, ok)
}

func TestReplayLegacyMetaAliasSetsProperty(t *testing.T) {
	groupID := GenerateID()
	entryID := GenerateID()
	history := []string{
		line(t, "cgr", string(RootID), string(groupID)),
		line(t, "cen", string(groupID), string(entryID)),
		line(t, "sem", string(entryID), "notes", "legacy value"),
	}
	d, err := Replay(history)
	require.NoError(t, err)
	e, ok := d.findEntry(entryID)
	require.True(t, ok)
	assert.Equal(t, "legacy value", e.Properties["notes"])
}

func TestReplayUnknownCommandFails(t *testing.T) {
	_, err := Replay([]string{"zzz foo"})
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindUnknownCommand, verr.Kind())
}

func TestReplayRoundTripsThroughDescribeDataset(t *testing.T) {
	groupID := GenerateID()
	entryID := GenerateID()
	history := []string{
		line(t, "fmt", "vf1"),
		line(t, "cgr", string(RootID), string(groupID)),
		line(t, "tgr", string(groupID), "Personal"),
		line(t, "cen", string(groupID), string(entryID)),
		line(t, "sep", string(entryID), "username", "alice"),
	}
	d, err := Replay(history)
	require.NoError(t, err)

	described := DescribeDataset(d)
	redone, err := Replay(described)
	require.NoError(t, err)

	assert.Equal(t, d.Format, redone.Format)
	g, ok := redone.findGroup(groupID)
	require.True(t, ok)
	assert.Equal(t, "Personal", g.Title)
	e, ok := redone.findEntry(entryID)
	require.True(t, ok)
	assert.Equal(t, "alice", e.Properties["username"])
}
