package ouijaquery

import "github.com/ouijasearch/ouija/pkg/model"

// Resolver performs the "enum name resolution" spec §1/§4.1 declares an
// external collaborator: turning an item's JSON name into the content
// library's ItemID namespace for a given Category. Load maps the literal
// value "any" (and an empty value) to model.AnyItem itself and never
// passes it to the Resolver.
type Resolver interface {
	// ResolveItem resolves name within category's namespace. ok is false
	// if name is not recognised, which Load turns into a query-load
	// rejection (spec §4.1: "reject clauses whose Value does not resolve").
	ResolveItem(category model.Category, name string) (id model.ItemID, ok bool)
}
