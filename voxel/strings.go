package voxel

import (
	"sort"
	"strings"
)

// pointsString renders a deterministic, sorted representation of a point
// set for use in String() methods and test failure messages.
func pointsString(points []Pos) string {
	sorted := append([]Pos(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
