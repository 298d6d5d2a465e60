package vaultfmt

// argType tags the logical type of a command argument. It exists purely
// for self-documentation of the manifest table; the tokenizer/decoder do
// not branch on it.
type argType int

const (
	argID argType = iota
	argText
	argKey
)

// argSpec describes one positional argument of a command.
type argSpec struct {
	name    string
	kind    argType
	encoded bool
}

// commandSpec is one row of the command manifest: a three-letter
// short key plus its ordered argument descriptors.
type commandSpec struct {
	name string
	args []argSpec
}

// manifest is the static table keyed by short key. It is built once at
// package init and never mutated afterwards.
var manifest = map[string]commandSpec{
	"aid": {name: "setVaultID", args: []argSpec{{"vaultID", argID, false}}},
	"cmm": {name: "comment", args: []argSpec{{"text", argText, true}}},
	"fmt": {name: "setFormat", args: []argSpec{{"tag", argText, false}}},

	"cgr": {name: "createGroup", args: []argSpec{{"parentID", argID, false}, {"groupID", argID, false}}},
	"dgr": {name: "deleteGroup", args: []argSpec{{"groupID", argID, false}}},
	"mgr": {name: "moveGroup", args: []argSpec{{"groupID", argID, false}, {"newParentID", argID, false}}},
	"tgr": {name: "setGroupTitle", args: []argSpec{{"groupID", argID, false}, {"title", argText, true}}},
	"sga": {name: "setGroupAttribute", args: []argSpec{{"groupID", argID, false}, {"key", argKey, false}, {"value", argText, true}}},
	"dga": {name: "deleteGroupAttribute", args: []argSpec{{"groupID", argID, false}, {"key", argKey, false}}},

	"cen": {name: "createEntry", args: []argSpec{{"groupID", argID, false}, {"entryID", argID, false}}},
	"den": {name: "deleteEntry", args: []argSpec{{"entryID", argID, false}}},
	"men": {name: "moveEntry", args: []argSpec{{"entryID", argID, false}, {"newGroupID", argID, false}}},
	"sep": {name: "setEntryProperty", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}, {"value", argText, true}}},
	"dep": {name: "deleteEntryProperty", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}}},
	"sea": {name: "setEntryAttribute", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}, {"value", argText, true}}},
	"dea": {name: "deleteEntryAttribute", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}}},

	// deprecated meta aliases, routed to the property executors
	"sem": {name: "setEntryPropertyLegacy", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}, {"value", argText, true}}},
	"dem": {name: "deleteEntryPropertyLegacy", args: []argSpec{{"entryID", argID, false}, {"key", argKey, false}}},

	"saa": {name: "setVaultAttribute", args: []argSpec{{"key", argKey, false}, {"value", argText, true}}},
	"daa": {name: "deleteVaultAttribute", args: []argSpec{{"key", argKey, false}}},

	"pad": {name: "pad", args: []argSpec{{"token", argText, false}}},
}

// destructiveShortKeys is consulted by the merge preprocessor.
var destructiveShortKeys = map[string]bool{
	"den": true,
	"dgr": true,
	"dea": true,
	"dep": true,
	"dem": true,
	"dga": true,
	"daa": true,
}

// isDestructive reports whether short is one of the commands that remove
// a group, entry, attribute, or property.
func isDestructive(short string) bool {
	return destructiveShortKeys[short]
}

// lookupSpec returns the manifest row for short, or false if the key is
// not a known command.
func lookupSpec(short string) (commandSpec, bool) {
	spec, ok := manifest[short]
	return spec, ok
}
