// Package evaluate implements the Single-Seed Evaluator (spec §4.5): for
// one surviving lane from pkg/prefilter, it builds a per-seed context and
// runs Phase A (Must, fail-fast), Phase B (MustNot, fail-fast), and Phase C
// (Should, scored). The clause taxonomy is closed, so per-category
// predicates (spec §4.6) dispatch through a plain switch rather than an
// interface per category (Design Notes §9).
package evaluate
