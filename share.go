package vaultfmt

// Demultiplex partitions a history into a base history and one history
// per share ID, based on the "$<uuid> " line prefix. Each bucket
// preserves the relative order of the lines routed into it.
func Demultiplex(history []string) (base []string, shares map[ID][]string) {
	shares = make(map[ID][]string)
	for _, line := range history {
		shareID, rest, ok := stripSharePrefix(line)
		if !ok {
			base = append(base, line)
			continue
		}
		shares[shareID] = append(shares[shareID], rest)
	}
	return base, shares
}
