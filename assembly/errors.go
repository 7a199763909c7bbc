package assembly

import "errors"

// ErrOverlappingPlacement indicates two instances' placed template voxels
// collided at the same position, the one error kind spec.md 4.6 names:
// "assembly fails if template voxels of two instances overlap". This
// belongs to error-taxonomy family 3 (geometric infeasibility, spec.md 7).
// The placer's cost function never calls Assemble, so this error does not
// steer its search; placer.Run returns it to the caller when assembling
// the final best placement fails.
var ErrOverlappingPlacement = errors.New("assembly: overlapping instance template voxels")
