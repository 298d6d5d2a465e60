package vaultfmt

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ID identifies a vault, group, or entry. It is either a UUID string or
// the literal root sentinel "0", which is never a valid UUID and must be
// special-cased by any code that needs to tell "no parent" from "parent
// is some other node".
type ID string

// RootID is the pseudo-root every top-level group's parentID resolves
// to. It is not present in any group/entry map.
const RootID ID = "0"

// GenerateID produces a new random ID suitable for a group or entry.
// UUID generation is treated as an external collaborator; this helper
// exists for tests and for the CLI, which
// otherwise has no way to mint IDs of its own.
func GenerateID() ID {
	return ID(uuid.New().String())
}

// ParseID validates that s is either RootID or a syntactically valid
// UUID, per the uuid ABNF production in the history line grammar.
func ParseID(s string) (ID, error) {
	if s == string(RootID) {
		return RootID, nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", errors.Wrapf(err, "invalid id %q", s)
	}
	return ID(s), nil
}

// Group is a node in the vault's group tree. Groups are either a direct
// child of RootID or of another group.
type Group struct {
	ID         ID
	Title      string
	ParentID   ID
	Attributes map[string]string
	Entries    []*Entry
	Groups     []*Group
}

func newGroup(id, parentID ID) *Group {
	return &Group{
		ID:         id,
		ParentID:   parentID,
		Attributes: make(map[string]string),
	}
}

// Entry is a leaf node holding properties (title, username, password,
// freeform) and system-managed attributes.
type Entry struct {
	ID         ID
	ParentID   ID
	Properties map[string]string
	Attributes map[string]string
}

func newEntry(id, parentID ID) *Entry {
	return &Entry{
		ID:         id,
		ParentID:   parentID,
		Properties: make(map[string]string),
		Attributes: make(map[string]string),
	}
}

// Dataset is the in-memory materialisation produced by replaying a
// history from empty: the current state of a vault.
type Dataset struct {
	ID         ID
	Attributes map[string]string
	Groups     []*Group
	Format     string

	// groupIndex and entryIndex speed up id -> node lookups; they are
	// derived state and never serialised.
	groupIndex map[ID]*Group
	entryIndex map[ID]*Entry
}

// NewDataset returns an empty dataset, as produced by replaying an empty
// history or by Engine.Clear.
func NewDataset() *Dataset {
	return &Dataset{
		Attributes: make(map[string]string),
		groupIndex: make(map[ID]*Group),
		entryIndex: make(map[ID]*Entry),
	}
}

func (d *Dataset) findGroup(id ID) (*Group, bool) {
	g, ok := d.groupIndex[id]
	return g, ok
}

func (d *Dataset) findEntry(id ID) (*Entry, bool) {
	e, ok := d.entryIndex[id]
	return e, ok
}

// isDescendantGroup reports whether candidate is groupID itself or one
// of its descendants, walking down from groupID. Used to reject cyclic
// moves.
func (d *Dataset) isDescendantGroup(groupID, candidate ID) bool {
	if groupID == candidate {
		return true
	}
	g, ok := d.groupIndex[groupID]
	if !ok {
		return false
	}
	for _, child := range g.Groups {
		if d.isDescendantGroup(child.ID, candidate) {
			return true
		}
	}
	return false
}

func (d *Dataset) addGroup(g *Group) {
	d.groupIndex[g.ID] = g
	if g.ParentID == RootID {
		d.Groups = append(d.Groups, g)
		return
	}
	if parent, ok := d.groupIndex[g.ParentID]; ok {
		parent.Groups = append(parent.Groups, g)
	}
}

func (d *Dataset) addEntry(e *Entry) {
	d.entryIndex[e.ID] = e
	if parent, ok := d.groupIndex[e.ParentID]; ok {
		parent.Entries = append(parent.Entries, e)
	}
}

func removeGroupChild(parent []*Group, id ID) []*Group {
	out := parent[:0]
	for _, g := range parent {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

func removeEntryChild(parent []*Entry, id ID) []*Entry {
	out := parent[:0]
	for _, e := range parent {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// detachGroup detaches g from its current parent's child slice (root or
// group) without touching the index maps.
func (d *Dataset) detachGroup(g *Group) {
	if g.ParentID == RootID {
		d.Groups = removeGroupChild(d.Groups, g.ID)
		return
	}
	if parent, ok := d.groupIndex[g.ParentID]; ok {
		parent.Groups = removeGroupChild(parent.Groups, g.ID)
	}
}

func (d *Dataset) detachEntry(e *Entry) {
	if parent, ok := d.groupIndex[e.ParentID]; ok {
		parent.Entries = removeEntryChild(parent.Entries, e.ID)
	}
}

// deleteGroupRecursive removes g, all descendant groups, and all owned
// entries from the indexes. Invariant 5 (no resurrection of deleted
// IDs) relies on entries/groups being fully removed from both the tree
// and the lookup indexes.
func (d *Dataset) deleteGroupRecursive(g *Group) {
	for _, child := range append([]*Group(nil), g.Groups...) {
		d.deleteGroupRecursive(child)
	}
	for _, e := range append([]*Entry(nil), g.Entries...) {
		delete(d.entryIndex, e.ID)
	}
	delete(d.groupIndex, g.ID)
}

// GetAllGroups returns every group in the dataset in a stable,
// depth-first order.
func (d *Dataset) GetAllGroups() []*Group {
	var out []*Group
	var walk func([]*Group)
	walk = func(groups []*Group) {
		for _, g := range groups {
			out = append(out, g)
			walk(g.Groups)
		}
	}
	walk(d.Groups)
	return out
}

// GetAllEntries returns every entry in the dataset in a stable,
// depth-first order, grouped by owning group.
func (d *Dataset) GetAllEntries() []*Entry {
	var out []*Entry
	for _, g := range d.GetAllGroups() {
		out = append(out, g.Entries...)
	}
	return out
}

// GetVaultID returns the vault's own id.
func (d *Dataset) GetVaultID() ID { return d.ID }

// Clone deep-copies the dataset, for callers and tests that want to
// snapshot state before an operation that might fail partway.
func (d *Dataset) Clone() *Dataset {
	clone := NewDataset()
	clone.ID = d.ID
	clone.Format = d.Format
	for k, v := range d.Attributes {
		clone.Attributes[k] = v
	}

	var cloneGroup func(g *Group) *Group
	cloneGroup = func(g *Group) *Group {
		ng := newGroup(g.ID, g.ParentID)
		ng.Title = g.Title
		for k, v := range g.Attributes {
			ng.Attributes[k] = v
		}
		for _, e := range g.Entries {
			ne := newEntry(e.ID, e.ParentID)
			for k, v := range e.Properties {
				ne.Properties[k] = v
			}
			for k, v := range e.Attributes {
				ne.Attributes[k] = v
			}
			ng.Entries = append(ng.Entries, ne)
			clone.entryIndex[ne.ID] = ne
		}
		clone.groupIndex[ng.ID] = ng
		for _, child := range g.Groups {
			ng.Groups = append(ng.Groups, cloneGroup(child))
		}
		return ng
	}
	for _, g := range d.Groups {
		clone.Groups = append(clone.Groups, cloneGroup(g))
	}
	return clone
}
