package vaultfmt

// Initialise seeds a fresh vault with a vault ID and format tag. The
// other mutators do not check whether a vault ID has been set.
func (e *Engine) Initialise(vaultID ID, format string) error {
	aid, err := BuildCommand("aid", string(vaultID))
	if err != nil {
		return err
	}
	tag, err := BuildCommand("fmt", format)
	if err != nil {
		return err
	}
	return e.Execute(aid, tag)
}

// CreateGroup adds an empty group with the given ID as a child of
// parentID, or of the root if parentID is RootID.
func (e *Engine) CreateGroup(parentID, groupID ID) error {
	return e.buildAndExecute("cgr", string(parentID), string(groupID))
}

// DeleteGroup removes groupID, its descendant groups, and any entries
// it owns.
func (e *Engine) DeleteGroup(groupID ID) error {
	return e.buildAndExecute("dgr", string(groupID))
}

// MoveGroup reparents groupID under newParentID.
func (e *Engine) MoveGroup(groupID, newParentID ID) error {
	return e.buildAndExecute("mgr", string(groupID), string(newParentID))
}

// SetGroupTitle renames groupID.
func (e *Engine) SetGroupTitle(groupID ID, title string) error {
	return e.buildAndExecute("tgr", string(groupID), title)
}

// SetGroupAttribute sets a system-managed attribute on groupID.
func (e *Engine) SetGroupAttribute(groupID ID, key, value string) error {
	return e.buildAndExecute("sga", string(groupID), key, value)
}

// DeleteGroupAttribute removes a system-managed attribute from
// groupID.
func (e *Engine) DeleteGroupAttribute(groupID ID, key string) error {
	return e.buildAndExecute("dga", string(groupID), key)
}

// CreateEntry adds an empty entry with the given ID under groupID.
func (e *Engine) CreateEntry(groupID, entryID ID) error {
	return e.buildAndExecute("cen", string(groupID), string(entryID))
}

// DeleteEntry removes entryID.
func (e *Engine) DeleteEntry(entryID ID) error {
	return e.buildAndExecute("den", string(entryID))
}

// MoveEntry reparents entryID under newGroupID.
func (e *Engine) MoveEntry(entryID, newGroupID ID) error {
	return e.buildAndExecute("men", string(entryID), string(newGroupID))
}

// SetEntryProperty sets a user-facing property (title, username,
// password, freeform) on entryID and bumps its revision counter.
func (e *Engine) SetEntryProperty(entryID ID, key, value string) error {
	return e.buildAndExecute("sep", string(entryID), key, value)
}

// DeleteEntryProperty removes a property from entryID and bumps its
// revision counter.
func (e *Engine) DeleteEntryProperty(entryID ID, key string) error {
	return e.buildAndExecute("dep", string(entryID), key)
}

// SetEntryAttribute sets a system-managed attribute on entryID and
// bumps its revision counter.
func (e *Engine) SetEntryAttribute(entryID ID, key, value string) error {
	return e.buildAndExecute("sea", string(entryID), key, value)
}

// DeleteEntryAttribute removes a system-managed attribute from
// entryID and bumps its revision counter.
func (e *Engine) DeleteEntryAttribute(entryID ID, key string) error {
	return e.buildAndExecute("dea", string(entryID), key)
}

// SetVaultAttribute sets a top-level vault attribute.
func (e *Engine) SetVaultAttribute(key, value string) error {
	return e.buildAndExecute("saa", key, value)
}

// DeleteVaultAttribute removes a top-level vault attribute.
func (e *Engine) DeleteVaultAttribute(key string) error {
	return e.buildAndExecute("daa", key)
}

// buildAndExecute builds a single command line and runs it through
// Execute, so every mutator above shares one error path.
func (e *Engine) buildAndExecute(short string, args ...string) error {
	line, err := BuildCommand(short, args...)
	if err != nil {
		return err
	}
	return e.Execute(line)
}
