package domain

import "sort"

// ConfigKey identifies one build configuration paired with the on-disk path
// where its file list (if used) is written, and that path's project-relative
// form as referenced from the phase.
type ConfigKey struct {
	Config      string
	DiskPath    string
	ProjectPath string
}

// ConfigPathLists holds one ordered path list per configuration.
type ConfigPathLists map[ConfigKey][]string

// SortedKeys returns the keys ordered by configuration name, for
// deterministic flattening and file-list emission.
func (c ConfigPathLists) SortedKeys() []ConfigKey {
	keys := make([]ConfigKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Config < keys[j].Config })
	return keys
}

// Flatten merges all per-configuration lists into one de-duplicated list,
// configurations in name order, paths in first-seen order within each.
func (c ConfigPathLists) Flatten() []string {
	var flat []string
	for _, key := range c.SortedKeys() {
		flat = AppendUnique(flat, c[key]...)
	}
	return flat
}

// TotalLen returns the combined length of all per-configuration lists after
// flattening.
func (c ConfigPathLists) TotalLen() int {
	return len(c.Flatten())
}

// AppendUnique appends each path to the list unless already present,
// preserving insertion order.
func AppendUnique(list []string, paths ...string) []string {
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		seen[p] = struct{}{}
	}
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		list = append(list, p)
	}
	return list
}
