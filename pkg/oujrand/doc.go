// Package oujrand supplies the reference content provider's deterministic
// randomness.
//
// # Overview
//
// Every stream the reference provider opens — a shop roll, a booster-pack
// header sequence, a tag draw, a soul-joker draw — is keyed by the game
// seed plus a canonical stream key of the form described in spec section
// 4.2 (category, source tag, ante). Stream derives a SHA-256 sub-seed from
// that pair so that:
//
//  1. The same (seed, key) always reproduces the same draw sequence
//     (determinism — required by the search driver re-running a batch).
//  2. Two different keys for the same seed are statistically independent
//     (isolation — a shop roll for ante 2 must not influence a tag draw
//     for ante 1).
//
// # Usage
//
//	key := streamcache.CacheKey{Category: model.CategoryJoker, Source: streamcache.SourceShop, Ante: 2}
//	s := oujrand.New(seed, key.String())
//	slot := s.Intn(len(itemPool))
//
// # Thread safety
//
// A Stream is not safe for concurrent use.
package oujrand
