// Package maze turns a photo of a drawn maze into a solved path.
//
// The pipeline runs in fixed stages: locate the drawn frame inside the
// photo, crop to it, rasterize the interior into a boolean occupancy grid,
// find the two border openings, seal the rest of the border, search the
// grid breadth-first from entrance to exit, and re-encode the resulting
// cell path as run-length moves and normalized image coordinates.
// SolveImage composes all stages; each stage is also exported on its own
// for inspection tooling.
//
// # Determinism
//
// Every stage is a pure function of its inputs. The border scan order and
// the search's neighbor order are fixed parts of the contract, so the same
// photo and configuration always produce bit-identical grids, paths, and
// move lists.
//
// # Failure Outcomes
//
// The recoverable outcomes a caller is expected to branch on are exposed
// as sentinel errors: ErrEmptyImage and ErrGridTooLarge for unusable
// input, ErrNoOpenings when the border has fewer than two traversable
// cells, and ErrNoPath when the exit cannot be reached. Wrapped errors
// compose with errors.Is.
package maze
