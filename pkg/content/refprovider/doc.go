// Package refprovider is a reference implementation of content.Provider and
// content.VectorProvider. It stands in for the real content-generation
// library (spec §1: "the content-generation library" is an external
// collaborator, out of scope) so the rest of this repository has something
// deterministic to run and be tested against. Every stream it opens derives
// from pkg/oujrand keyed by a streamcache.CacheKey, so two calls for the
// same (seed, clause category, ante) always reproduce the same draws.
// Streams of different categories are independent of each other, except
// the booster-pack header stream, which is keyed by ante alone and so is
// shared by every category that walks packs. This package never attempts
// to reproduce the source game's actual RNG layout
// (spec §1 Non-goals).
package refprovider
