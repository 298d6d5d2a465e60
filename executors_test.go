package vaultfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecSetVaultID(t *testing.T) {
	d := NewDataset()
	id := GenerateID()
	err := execSetVaultID(d, ExecOptions{}, []string{string(id)})
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
}

func TestExecCreateEntryRejectsIDCollisionWithGroup(t *testing.T) {
	d := NewDataset()
	groupID := GenerateID()
	require.NoError(t, execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(groupID)}))

	err := execCreateEntry(d, ExecOptions{}, []string{string(groupID), string(groupID)})
	assert.Error(t, err)
}

func TestExecCreateGroupRejectsIDCollisionWithEntry(t *testing.T) {
	d := NewDataset()
	groupID := GenerateID()
	entryID := GenerateID()
	require.NoError(t, execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(groupID)}))
	require.NoError(t, execCreateEntry(d, ExecOptions{}, []string{string(groupID), string(entryID)}))

	err := execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(entryID)})
	assert.Error(t, err)
}

func TestExecMoveEntryToAnotherGroup(t *testing.T) {
	d := NewDataset()
	groupA := GenerateID()
	groupB := GenerateID()
	entryID := GenerateID()
	require.NoError(t, execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(groupA)}))
	require.NoError(t, execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(groupB)}))
	require.NoError(t, execCreateEntry(d, ExecOptions{}, []string{string(groupA), string(entryID)}))

	require.NoError(t, execMoveEntry(d, ExecOptions{}, []string{string(entryID), string(groupB)}))

	ga, _ := d.findGroup(groupA)
	gb, _ := d.findGroup(groupB)
	assert.Empty(t, ga.Entries)
	require.Len(t, gb.Entries, 1)
	assert.Equal(t, entryID, gb.Entries[0].ID)
}

func TestExecSetAndDeleteGroupAttribute(t *testing.T) {
	d := NewDataset()
	groupID := GenerateID()
	require.NoError(t, execCreateGroup(d, ExecOptions{}, []string{string(RootID), string(groupID)}))

	require.NoError(t, execSetGroupAttribute(d, ExecOptions{}, []string{string(groupID), "icon", "42"}))
	g, _ := d.findGroup(groupID)
	assert.Equal(t, "42", g.Attributes["icon"])

	require.NoError(t, execDeleteGroupAttribute(d, ExecOptions{}, []string{string(groupID), "icon"}))
	_, ok := g.Attributes["icon"]
	assert.False(t, ok)
}

func TestExecSetAndDeleteVaultAttribute(t *testing.T) {
	d := NewDataset()
	require.NoError(t, execSetVaultAttribute(d, ExecOptions{}, []string{"theme", "dark"}))
	assert.Equal(t, "dark", d.Attributes["theme"])

	require.NoError(t, execDeleteVaultAttribute(d, ExecOptions{}, []string{"theme"}))
	_, ok := d.Attributes["theme"]
	assert.False(t, ok)
}

func TestBumpRevisionIncrements(t *testing.T) {
	e := newEntry(GenerateID(), RootID)
	assert.Equal(t, "", e.Attributes["rev"])
	bumpRevision(e)
	assert.Equal(t, "1", e.Attributes["rev"])
	bumpRevision(e)
	assert.Equal(t, "2", e.Attributes["rev"])
}

func TestExecCommentAndPadAreNoOps(t *testing.T) {
	d := NewDataset()
	assert.NoError(t, execComment(d, ExecOptions{}, []string{"anything"}))
	assert.NoError(t, execPad(d, ExecOptions{}, []string{"anything"}))
}

func TestExecDeleteEntryRejectsUnknownID(t *testing.T) {
	d := NewDataset()
	err := execDeleteEntry(d, ExecOptions{}, []string{string(GenerateID())})
	assert.Error(t, err)
}
