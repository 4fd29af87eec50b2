// Package ouijaquery is the Query Model (spec §4.1): it turns a RawQuery —
// the JSON document described in spec §6, with string-valued categories and
// item names — into a Query, a read-only, fully-resolved representation
// whose hot-path fields are all enums. No string comparison happens once a
// Query exists (Design Notes §9: "the design mandates a one-time pre-parse
// into the typed form and forbids string comparison inside the per-seed
// loop").
//
// Resolving an item name (e.g. "Blueprint" -> a joker ItemID) is delegated
// to a Resolver, since the name tables belong to the content-generation
// library — an external collaborator per spec §1. This package owns
// validation (spec §4.1, §7a) and default source-flag derivation only.
package ouijaquery
