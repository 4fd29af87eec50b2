// Package streamcache is the Stream-Cache Planner (spec §4.2): given a
// query's clause lists, it declares which per-ante PRNG keys the search
// needs, each at most once.
//
// Cache is a per-thread memoization map keyed by CacheKey (Design Notes
// §9: "per-ante stream caches are per-thread... a stream's PRNG position
// must not be observable across threads"). The search driver uses neither
// Plan nor Cache.
package streamcache
