// Package resultsink implements the multi-producer single-consumer result
// queue (spec §5: "multi-producer single-consumer lock-free FIFO"). A
// buffered Go channel is the idiomatic rendering of that queue — sends
// and receives are already data-race-free without an explicit lock — so
// this package wraps one rather than hand-rolling a lock-free ring
// buffer (grounded on the try-then-block channel send pattern in
// internal/parallel.StaticWorkerPool.Submit from the reference worker-pool
// package this repo's concurrency model was adapted from).
package resultsink
