// Package content is the Content Provider external interface (spec §4.3):
// the surface the filter engine consumes from the game's content-generation
// library. The library's internals (the real PRNG protocol, the full item
// database) are an external collaborator and out of scope for this
// repository (spec §1); this package defines only the operation table and
// the value types that flow across it.
//
// Two forms of every vectorizable operation exist: Provider, the per-seed
// form used by pkg/evaluate, and VectorProvider, the W-lane form used by
// pkg/prefilter. Determinism (spec §4.3): every operation is a pure
// function of (seed, ante, call-order) — the same stream, called twice,
// advances.
//
// See pkg/content/refprovider for a deterministic reference implementation
// used by this repository's own tests and demo CLI.
package content

// LaneWidth is the SIMD vector width in double-lanes (spec Glossary:
// "Lane / W"), the hardware lane count the vector pre-filter targets.
const LaneWidth = 8
