package searchdriver

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/evaluate"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
	"github.com/ouijasearch/ouija/pkg/prefilter"
	"github.com/ouijasearch/ouija/pkg/resultsink"
	"github.com/ouijasearch/ouija/pkg/seedspace"
)

// Provider is the full per-seed and vector surface the driver needs.
type Provider interface {
	content.Provider
	content.VectorProvider
}

// Stats accumulates run-wide counters. Every field is updated with
// atomic.AddInt64 by worker goroutines, so callers may read it (e.g. for
// telemetry export) only after Run returns, or via the Snapshot helper
// while a run is in progress.
type Stats struct {
	SeedsScanned  int64
	LanesSurvived int64
	MatchesFound  int64
}

// Snapshot returns a consistent-enough point-in-time copy for reporting.
func (s *Stats) Snapshot() Stats {
	return Stats{
		SeedsScanned:  atomic.LoadInt64(&s.SeedsScanned),
		LanesSurvived: atomic.LoadInt64(&s.LanesSurvived),
		MatchesFound:  atomic.LoadInt64(&s.MatchesFound),
	}
}

// Config controls one Driver.Run call.
type Config struct {
	// Threads is the number of worker goroutines to partition the seed
	// range across.
	Threads int

	// BatchLanes is the number of W-wide lanes a worker processes
	// between polls of the cancellation flag.
	BatchLanes int

	// RareJokerSpawnTag and UncommonJokerSpawnTag identify the tags that
	// spawn a joker of each rarity (spec §4.6), resolved by the caller
	// from its catalogue and passed through opaquely — pkg/evaluate does
	// not know about catalogue identities itself.
	RareJokerSpawnTag     model.ItemID
	UncommonJokerSpawnTag model.ItemID
}

// Driver owns one search run: partitioning the seed space, running the
// vector pre-filter and single-seed evaluator per worker, and feeding
// accepted results into a Queue.
type Driver struct {
	provider Provider
}

// New builds a Driver over provider.
func New(provider Provider) *Driver {
	return &Driver{provider: provider}
}

// Run walks [start, end] using cfg.Threads static partitions, evaluating
// every surviving seed against q and feeding accepted results to sink.
// cancelled is polled at batch boundaries (spec §5); it is owned by the
// caller, not the Driver, so multiple runs never share cancellation state
// by accident.
func (d *Driver) Run(cfg Config, start, end content.Seed, q *ouijaquery.Query, sink *resultsink.Queue, cancelled *atomic.Bool, stats *Stats) error {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	ranges, err := seedspace.Partition(start, end, threads)
	if err != nil {
		return err
	}

	plan := evaluate.Prepare(q)

	var (
		errOnce sync.Once
		runErr  error
	)
	var wg sync.WaitGroup
	for _, r := range ranges {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					errOnce.Do(func() { runErr = fmt.Errorf("searchdriver: worker panicked: %v", p) })
				}
			}()
			d.walkRange(cfg, r, q, plan, sink, cancelled, stats)
		}()
	}
	wg.Wait()
	return runErr
}

func (d *Driver) walkRange(cfg Config, r seedspace.Range, q *ouijaquery.Query, plan *evaluate.Plan, sink *resultsink.Queue, cancelled *atomic.Bool, stats *Stats) {
	walker, err := seedspace.NewLaneWalker(r)
	if err != nil {
		return
	}

	ctx := evaluate.NewSeedContext(d.provider).WithJokerSpawnTags(cfg.RareJokerSpawnTag, cfg.UncommonJokerSpawnTag)

	lanesSinceCheck := 0
	for !walker.Done() {
		lane, count := walker.Next()

		mask := prefilter.Run(d.provider, q, lane)
		atomic.AddInt64(&stats.SeedsScanned, int64(count))

		for i := 0; i < count; i++ {
			if !mask.IsSet(i) {
				continue
			}
			atomic.AddInt64(&stats.LanesSurvived, 1)

			ctx.Reset(lane[i])
			res, ok := evaluate.Evaluate(ctx, q, plan)
			if !ok {
				continue
			}
			atomic.AddInt64(&stats.MatchesFound, 1)
			sink.Enqueue(res, func() bool { return cancelled.Load() })
		}

		lanesSinceCheck++
		if lanesSinceCheck >= cfg.BatchLanes {
			lanesSinceCheck = 0
			if cancelled.Load() {
				return
			}
		}
	}
}
