package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/repository"
)

func TestBuildProductFilter(t *testing.T) {
	where, args := buildProductFilter(repository.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildProductFilter(repository.ProductFilter{Category: "Pret"})
	assert.Equal(t, " WHERE lower(category) = lower($1)", where)
	assert.Equal(t, []interface{}{"Pret"}, args)

	where, args = buildProductFilter(repository.ProductFilter{Category: "Pret", Search: "50%_off", SearchBrand: true})
	assert.Equal(t, " WHERE lower(category) = lower($1) AND (name ILIKE $2 OR brand ILIKE $2)", where)
	assert.Equal(t, []interface{}{"Pret", `%50\%\_off%`}, args)

	where, _ = buildProductFilter(repository.ProductFilter{Search: "lawn"})
	assert.Equal(t, " WHERE name ILIKE $1", where)
}

func TestTableQuotesIdentifiers(t *testing.T) {
	r := NewCatalogRepository(nil, "brands", zap.NewNop())
	assert.Equal(t, `"brands"."GulAhmed"`, r.table("GulAhmed"))
	assert.Equal(t, `"brands"."x""; DROP TABLE y; --"`, r.table(`x"; DROP TABLE y; --`))
}
