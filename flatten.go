package vaultfmt

// flattenThreshold is the minimum history length before flattening is
// considered worthwhile.
const flattenThreshold = 100

// CanBeFlattened reports whether the engine's history is long enough,
// and its dataset non-empty enough, to be worth flattening.
func (e *Engine) CanBeFlattened() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history) >= flattenThreshold && !datasetIsEmpty(e.dataset)
}

func datasetIsEmpty(d *Dataset) bool {
	return d.ID == "" && d.Format == "" && len(d.Attributes) == 0 && len(d.Groups) == 0
}

// Flatten replaces the engine's history with a minimal describe-history
// of the current dataset. The dataset itself is unchanged; only the
// history representation is optimised. It always succeeds once the
// engine holds a dataset, since DescribeDataset never fails on a
// well-formed in-memory dataset.
func (e *Engine) Flatten() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = DescribeDataset(e.dataset)
	e.log.Infof("flattened history to %d command(s)", len(e.history))
}
