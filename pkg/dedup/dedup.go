// Package dedup removes repeated enrollment rows.
package dedup

import "github.com/upbvirtual/enroller/pkg/roster"

// Records keeps the first occurrence of every (period, section, person)
// key and preserves input order. It returns the kept records and how many
// duplicates were dropped. Applying it twice yields the same result.
func Records(in []roster.Record) ([]roster.Record, int) {
	seen := make(map[roster.Key]struct{}, len(in))
	out := make([]roster.Record, 0, len(in))
	for _, r := range in {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out, len(in) - len(out)
}
