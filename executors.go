package vaultfmt

import (
	"strconv"

	"github.com/pkg/errors"
)

// ExecOptions carries the per-command options passed to an executor.
// Currently the only option is the share ID a command was routed
// under, if any.
type ExecOptions struct {
	ShareID  ID
	HasShare bool
}

// executorFunc is the shape of one pure command executor. It
// receives the mutable dataset, the options for this invocation, and
// the already-decoded positional arguments. It either mutates the
// dataset wholly or returns an error before mutating anything.
type executorFunc func(d *Dataset, opts ExecOptions, args []string) error

var executors = map[string]executorFunc{
	"aid": execSetVaultID,
	"cmm": execComment,
	"fmt": execSetFormat,

	"cgr": execCreateGroup,
	"dgr": execDeleteGroup,
	"mgr": execMoveGroup,
	"tgr": execSetGroupTitle,
	"sga": execSetGroupAttribute,
	"dga": execDeleteGroupAttribute,

	"cen": execCreateEntry,
	"den": execDeleteEntry,
	"men": execMoveEntry,
	"sep": execSetEntryProperty,
	"dep": execDeleteEntryProperty,
	"sea": execSetEntryAttribute,
	"dea": execDeleteEntryAttribute,

	// deprecated meta aliases route straight to the property executors
	"sem": execSetEntryProperty,
	"dem": execDeleteEntryProperty,

	"saa": execSetVaultAttribute,
	"daa": execDeleteVaultAttribute,

	"pad": execPad,
}

func execSetVaultID(d *Dataset, _ ExecOptions, args []string) error {
	id, err := ParseID(args[0])
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func execComment(_ *Dataset, _ ExecOptions, _ []string) error {
	return nil
}

func execSetFormat(d *Dataset, _ ExecOptions, args []string) error {
	d.Format = args[0]
	return nil
}

func execCreateGroup(d *Dataset, _ ExecOptions, args []string) error {
	parentID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	groupID, err := ParseID(args[1])
	if err != nil {
		return err
	}
	if parentID != RootID {
		if _, ok := d.findGroup(parentID); !ok {
			return errors.Errorf("parent group %q does not exist", parentID)
		}
	}
	if _, ok := d.findGroup(groupID); ok {
		return errors.Errorf("group %q already exists", groupID)
	}
	if _, ok := d.findEntry(groupID); ok {
		return errors.Errorf("id %q already exists as an entry", groupID)
	}
	d.addGroup(newGroup(groupID, parentID))
	return nil
}

func execDeleteGroup(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	d.detachGroup(g)
	d.deleteGroupRecursive(g)
	return nil
}

func execMoveGroup(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	newParentID, err := ParseID(args[1])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	if newParentID != RootID {
		if _, ok := d.findGroup(newParentID); !ok {
			return errors.Errorf("new parent group %q does not exist", newParentID)
		}
	}
	if d.isDescendantGroup(groupID, newParentID) {
		return errors.Errorf("cannot move group %q beneath its own descendant %q", groupID, newParentID)
	}
	d.detachGroup(g)
	g.ParentID = newParentID
	d.addGroup(g)
	return nil
}

func execSetGroupTitle(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	g.Title = args[1]
	return nil
}

func execSetGroupAttribute(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	g.Attributes[args[1]] = args[2]
	return nil
}

func execDeleteGroupAttribute(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	delete(g.Attributes, args[1])
	return nil
}

func execCreateEntry(d *Dataset, _ ExecOptions, args []string) error {
	groupID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	entryID, err := ParseID(args[1])
	if err != nil {
		return err
	}
	g, ok := d.findGroup(groupID)
	if !ok {
		return errors.Errorf("group %q does not exist", groupID)
	}
	if _, ok := d.findEntry(entryID); ok {
		return errors.Errorf("entry %q already exists", entryID)
	}
	if _, ok := d.findGroup(entryID); ok {
		return errors.Errorf("id %q already exists as a group", entryID)
	}
	e := newEntry(entryID, g.ID)
	d.addEntry(e)
	return nil
}

func execDeleteEntry(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	d.detachEntry(e)
	delete(d.entryIndex, e.ID)
	return nil
}

func execMoveEntry(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	newGroupID, err := ParseID(args[1])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	if _, ok := d.findGroup(newGroupID); !ok {
		return errors.Errorf("group %q does not exist", newGroupID)
	}
	d.detachEntry(e)
	e.ParentID = newGroupID
	d.addEntry(e)
	return nil
}

// revAttributeKey names the entry attribute that carries the
// monotonic revision counter bumpRevision maintains. It is
// system-managed, derived state: DescribeGroup never re-emits it, so
// it is excluded from the replay(describe(D)) = D invariant rather
// than participating in it.
const revAttributeKey = "rev"

// bumpRevision increments the entry's monotonic revision counter,
// stored in its attributes. A missing or non-numeric counter is
// treated as 0, so the first mutation of a fresh entry starts at 1.
func bumpRevision(e *Entry) {
	rev, _ := strconv.Atoi(e.Attributes[revAttributeKey])
	rev++
	e.Attributes[revAttributeKey] = strconv.Itoa(rev)
}

func execSetEntryProperty(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	e.Properties[args[1]] = args[2]
	bumpRevision(e)
	return nil
}

func execDeleteEntryProperty(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	delete(e.Properties, args[1])
	bumpRevision(e)
	return nil
}

func execSetEntryAttribute(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	e.Attributes[args[1]] = args[2]
	bumpRevision(e)
	return nil
}

func execDeleteEntryAttribute(d *Dataset, _ ExecOptions, args []string) error {
	entryID, err := ParseID(args[0])
	if err != nil {
		return err
	}
	e, ok := d.findEntry(entryID)
	if !ok {
		return errors.Errorf("entry %q does not exist", entryID)
	}
	delete(e.Attributes, args[1])
	bumpRevision(e)
	return nil
}

func execSetVaultAttribute(d *Dataset, _ ExecOptions, args []string) error {
	d.Attributes[args[0]] = args[1]
	return nil
}

func execDeleteVaultAttribute(d *Dataset, _ ExecOptions, args []string) error {
	delete(d.Attributes, args[0])
	return nil
}

func execPad(_ *Dataset, _ ExecOptions, _ []string) error {
	return nil
}
