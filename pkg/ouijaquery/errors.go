package ouijaquery

import "fmt"

// ValidationError reports why a query document was rejected at load time
// (spec §7a: "reject at load, do not start the search"). It is returned
// rather than panicking so the CLI can print it and exit non-zero, in the
// teacher's hand-rolled Validate() style (pkg/dungeon/config.go) rather
// than a struct-tag validation library.
type ValidationError struct {
	List  string // "must", "mustNot", or "should"
	Index int    // clause index within List, -1 for query-level errors
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("ouijaquery: %s", e.Msg)
	}
	return fmt.Sprintf("ouijaquery: %s[%d]: %s", e.List, e.Index, e.Msg)
}
