package placer

import "errors"

// ErrNoRandomPlacement indicates RandomPlacement could not produce a
// non-overlapping initial placement after repeated retries: the netlist's
// instances do not fit the bounding volume spec.md 4.5 derives from their
// footprints, regardless of how the rng is seeded. This is an input-shape
// problem (error-taxonomy family 1, spec.md 7), not a search failure, so it
// escapes Run rather than being absorbed into the cost function.
var ErrNoRandomPlacement = errors.New("placer: could not find a non-overlapping initial placement")
