package evaluate

import (
	"log/slog"
	"sync"
)

var buffoonWarnOnce sync.Once

// warnBuffoonUnsupported logs once that Buffoon-pack contents cannot be
// inspected through content.Provider (spec §4.3's operation table has no
// Buffoon content-stream operation), so that branch of the Joker predicate
// never matches (spec §7b: "an unimplemented category in the provider:
// log once, treat clause as never-satisfied").
func warnBuffoonUnsupported() {
	buffoonWarnOnce.Do(func() {
		slog.Warn("buffoon pack contents unsupported by provider; treating as never-satisfied",
			"clause_category", "Joker")
	})
}
