// Package model holds the value types shared by the query, content
// provider, and evaluator packages: the clause taxonomy (Category), the
// item modifiers (Edition, Enhancement, Seal, Rank, Suit), and the pack/tag
// enums that key every PRNG stream.
//
// These are plain value types with a closed set of variants (Design Notes
// §9: "the clause taxonomy is closed — model as a tagged sum with one arm
// per category... avoid virtual tables for this hot code"), following the
// teacher's enum-plus-String() pattern (pkg/graph/constraint.go's
// ConstraintKind) rather than an interface per category.
package model
