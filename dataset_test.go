package vaultfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDRoot(t *testing.T) {
	id, err := ParseID("0")
	require.NoError(t, err)
	assert.Equal(t, RootID, id)
}

func TestParseIDValidUUID(t *testing.T) {
	valid := GenerateID()
	id, err := ParseID(string(valid))
	require.NoError(t, err)
	assert.Equal(t, valid, id)
}

func TestParseIDRejectsGarbage(t *testing.T) {
	_, err := ParseID("not-a-uuid")
	assert.Error(t, err)
}

func TestDatasetAddAndFindGroup(t *testing.T) {
	d := NewDataset()
	g := newGroup(GenerateID(), RootID)
	d.addGroup(g)

	found, ok := d.findGroup(g.ID)
	require.True(t, ok)
	assert.Same(t, g, found)
	assert.Contains(t, d.Groups, g)
}

func TestDatasetAddEntryUnderGroup(t *testing.T) {
	d := NewDataset()
	g := newGroup(GenerateID(), RootID)
	d.addGroup(g)
	e := newEntry(GenerateID(), g.ID)
	d.addEntry(e)

	found, ok := d.findEntry(e.ID)
	require.True(t, ok)
	assert.Same(t, e, found)
	assert.Contains(t, g.Entries, e)
}

func TestIsDescendantGroup(t *testing.T) {
	d := NewDataset()
	parent := newGroup(GenerateID(), RootID)
	d.addGroup(parent)
	child := newGroup(GenerateID(), parent.ID)
	d.addGroup(child)
	grandchild := newGroup(GenerateID(), child.ID)
	d.addGroup(grandchild)

	other := newGroup(GenerateID(), RootID)
	d.addGroup(other)

	assert.True(t, d.isDescendantGroup(parent.ID, grandchild.ID))
	assert.True(t, d.isDescendantGroup(parent.ID, parent.ID))
	assert.False(t, d.isDescendantGroup(parent.ID, other.ID))
}

func TestDetachGroupFromRoot(t *testing.T) {
	d := NewDataset()
	g := newGroup(GenerateID(), RootID)
	d.addGroup(g)
	require.Contains(t, d.Groups, g)

	d.detachGroup(g)
	assert.NotContains(t, d.Groups, g)
	_, ok := d.findGroup(g.ID)
	assert.True(t, ok, "detach only removes from the parent's child slice, not the index")
}

func TestDeleteGroupRecursiveRemovesDescendantsAndEntries(t *testing.T) {
	d := NewDataset()
	parent := newGroup(GenerateID(), RootID)
	d.addGroup(parent)
	child := newGroup(GenerateID(), parent.ID)
	d.addGroup(child)
	e := newEntry(GenerateID(), child.ID)
	d.addEntry(e)

	d.deleteGroupRecursive(parent)

	_, ok := d.findGroup(parent.ID)
	assert.False(t, ok)
	_, ok = d.findGroup(child.ID)
	assert.False(t, ok)
	_, ok = d.findEntry(e.ID)
	assert.False(t, ok)
}

func TestGetAllGroupsAndEntriesDepthFirst(t *testing.T) {
	d := NewDataset()
	root1 := newGroup(GenerateID(), RootID)
	d.addGroup(root1)
	child := newGroup(GenerateID(), root1.ID)
	d.addGroup(child)
	e1 := newEntry(GenerateID(), root1.ID)
	d.addEntry(e1)
	e2 := newEntry(GenerateID(), child.ID)
	d.addEntry(e2)

	groups := d.GetAllGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, root1.ID, groups[0].ID)
	assert.Equal(t, child.ID, groups[1].ID)

	entries := d.GetAllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, e1.ID, entries[0].ID)
	assert.Equal(t, e2.ID, entries[1].ID)
}

func TestDatasetCloneIsIndependent(t *testing.T) {
	d := NewDataset()
	d.ID = GenerateID()
	d.Format = "vf1"
	d.Attributes["k"] = "v"
	g := newGroup(GenerateID(), RootID)
	g.Title = "group"
	d.addGroup(g)
	e := newEntry(GenerateID(), g.ID)
	e.Properties["title"] = "entry"
	d.addEntry(e)

	clone := d.Clone()
	assert.Equal(t, d.ID, clone.ID)
	assert.Equal(t, d.Format, clone.Format)
	require.Len(t, clone.Groups, 1)
	require.Len(t, clone.Groups[0].Entries, 1)

	// mutating the clone must not affect the original.
	clone.Groups[0].Title = "mutated"
	clone.Groups[0].Entries[0].Properties["title"] = "mutated"
	clone.Attributes["k"] = "mutated"

	assert.Equal(t, "group", g.Title)
	assert.Equal(t, "entry", e.Properties["title"])
	assert.Equal(t, "v", d.Attributes["k"])

	_, ok := clone.findGroup(g.ID)
	assert.True(t, ok, "clone must rebuild its own indexes")
}
