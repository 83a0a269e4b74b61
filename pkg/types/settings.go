package types

import "sort"

// SettingsMap holds build settings as key/value string pairs.
type SettingsMap map[string]string

// Merge returns a new SettingsMap with the entries of other applied on
// top of s. Keys present in both take other's value (last writer
// wins); neither input is modified.
func (s SettingsMap) Merge(other SettingsMap) SettingsMap {
	merged := make(SettingsMap, len(s)+len(other))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// SortedKeys returns the setting keys in lexical order for
// deterministic serialization.
func (s SettingsMap) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortStrings(ss []string) {
	sort.Strings(ss)
}
