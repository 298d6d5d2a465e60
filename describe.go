package vaultfmt

import "sort"

// sortedKeys returns the keys of m in sorted order, used everywhere the
// describe generator walks a map, so its output is deterministic (map
// iteration order is not).
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustBuild(short string, args ...string) string {
	line, err := BuildCommand(short, args...)
	if err != nil {
		// the manifest and the arguments passed by this package's own
		// describe generator are both under our control; a mismatch here
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return line
}

// DescribeGroup walks a group subtree, emitting the command sequence
// that reconstructs it: a cgr line for the group itself, its title and
// attributes, each entry with its properties and attributes, then its
// child groups recursively. Replaying the result against a dataset
// that already contains g's parent reproduces the subtree exactly,
// modulo the system-managed rev attribute on each entry (see
// revAttributeKey), which is derived state and never re-emitted.
func DescribeGroup(g *Group) []string {
	var out []string
	appendGroup(&out, g)
	return out
}

func appendGroup(out *[]string, g *Group) {
	*out = append(*out, mustBuild("cgr", string(g.ParentID), string(g.ID)))
	if g.Title != "" {
		*out = append(*out, mustBuild("tgr", string(g.ID), g.Title))
	}
	for _, k := range sortedKeys(g.Attributes) {
		*out = append(*out, mustBuild("sga", string(g.ID), k, g.Attributes[k]))
	}
	for _, e := range g.Entries {
		*out = append(*out, mustBuild("cen", string(g.ID), string(e.ID)))
		for _, k := range sortedKeys(e.Properties) {
			*out = append(*out, mustBuild("sep", string(e.ID), k, e.Properties[k]))
		}
		for _, k := range sortedKeys(e.Attributes) {
			if k == revAttributeKey {
				continue
			}
			*out = append(*out, mustBuild("sea", string(e.ID), k, e.Attributes[k]))
		}
	}
	for _, child := range g.Groups {
		appendGroup(out, child)
	}
}

// DescribeDataset emits the full command sequence that reconstructs d
// from an empty dataset: format tag, vault id, vault attributes, then
// every top-level group's subtree. Used by the flattener.
func DescribeDataset(d *Dataset) []string {
	var out []string
	if d.Format != "" {
		out = append(out, mustBuild("fmt", d.Format))
	}
	if d.ID != "" {
		out = append(out, mustBuild("aid", string(d.ID)))
	}
	for _, k := range sortedKeys(d.Attributes) {
		out = append(out, mustBuild("saa", k, d.Attributes[k]))
	}
	for _, g := range d.Groups {
		appendGroup(&out, g)
	}
	return out
}
