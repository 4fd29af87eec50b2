// Package prefilter implements the Vector Pre-Filter (spec §4.4): a
// batch-wide, lane-parallel pass that prunes a W-seed lane before the
// expensive single-seed evaluator runs. It only applies predicates that
// have an exact vector form (voucher, tag, and the provider's
// vectorizable shop-category clauses) and restricts itself to Must
// clauses, since those are the only ones spec.md's pre-filter section
// names explicitly; MustNot and Should are left entirely to
// pkg/evaluate. A clause with no vector form is simply not applied here —
// leaving extra lanes set is always safe, rejecting one the single-seed
// pass would have accepted is not.
package prefilter
