// Package refresolver is a reference ouijaquery.Resolver backed by the
// small illustrative name table in pkg/content/catalogue. It is not the
// real game's item database (that belongs to the external content-
// generation library per spec §1) — it exists so this repository's tests
// and demo CLI can load a query end to end.
package refresolver

import (
	"github.com/ouijasearch/ouija/pkg/content/catalogue"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

type resolver struct{}

// New returns the reference Resolver.
func New() ouijaquery.Resolver {
	return resolver{}
}

func (resolver) ResolveItem(category model.Category, name string) (model.ItemID, bool) {
	return catalogue.Resolve(category, name)
}
