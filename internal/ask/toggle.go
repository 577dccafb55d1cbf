package ask

// toggleMember removes value from seq when present, otherwise appends it.
// Order of the remaining entries is preserved.
func toggleMember[T comparable](seq []T, value T) []T {
	for i, existing := range seq {
		if existing == value {
			return append(seq[:i:i], seq[i+1:]...)
		}
	}
	return append(seq, value)
}

// toggleEntry applies a key/value line pair to entries. A non-empty value sets
// or overwrites the key; an empty value deletes it unless the key is immune.
// It reports whether entries changed.
func toggleEntry(entries map[Symbol]string, immune map[Symbol]struct{}, key Symbol, value string) bool {
	if value != "" {
		entries[key] = value
		return true
	}
	if _, ok := immune[key]; ok {
		return false
	}
	if _, ok := entries[key]; !ok {
		return false
	}
	delete(entries, key)
	return true
}
