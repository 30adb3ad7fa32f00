package spawn

// Merge combines the spawn list a host already installed for a biome with the
// list supplied by configuration. Configured entries come first in their given
// order, followed by existing entries whose species is not configured, in
// their original order. A configured entry always replaces the existing entry
// of the same species, even when the configured entry disables it. Entries
// that are not Viable are removed from the result.
//
// Merge does not modify either input.
func Merge(existing, configured List) List {
	merged, _ := MergeDropped(existing, configured)
	return merged
}

// MergeDropped performs the same merge as Merge and additionally returns the
// entries that were pruned for not being viable.
func MergeDropped(existing, configured List) (merged List, dropped []Entry) {
	combined := make(List, 0, len(configured)+len(existing))
	combined = append(combined, configured...)
	for _, e := range existing {
		if !configured.Contains(e.Species) {
			combined = append(combined, e)
		}
	}

	merged = make(List, 0, len(combined))
	for _, e := range combined {
		if !e.Viable() {
			dropped = append(dropped, e)
			continue
		}
		merged = append(merged, e)
	}
	return merged, dropped
}
