// Package searchdriver owns the outer seed-space walk (spec §4.8, §5): it
// partitions the seed alphabet into disjoint contiguous ranges, one per
// worker goroutine, and drives each range through the vector pre-filter
// and single-seed evaluator in lane-sized batches.
//
// The concurrency model is intentionally static: a fixed number of
// goroutines, each owns one range for its entire run, and there is no
// work-stealing or dynamic rebalancing (spec §5 rules out dynamic worker
// pools explicitly). This mirrors the simpler, fixed-worker-count half of
// the reference worker-pool package this driver's goroutine/channel
// plumbing was adapted from — not the dynamic-scaling or work-stealing
// variants also found there, which model a capability this driver
// deliberately does not have.
package searchdriver
