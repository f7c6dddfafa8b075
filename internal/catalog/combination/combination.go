// Package combination generates sellable variant combinations for a product.
//
// A combination is one concrete tuple of values across the product's variant
// attribute assignments, carrying its own SKU, stock and encoded selection.
// Generation runs in one of two modes: the full cross product of all value
// lists, or a curated list of hand-selected tuples for products where only
// some pairings are sellable.
package combination

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/GoStorefront/GoStorefront/internal/catalog/attrcombo"
	"github.com/GoStorefront/GoStorefront/internal/db/controller/picture"
	"github.com/GoStorefront/GoStorefront/internal/db/models"
)

// PictureFinder resolves stored pictures by a substring of their SEO filename.
// The production implementation is picture.Finder; tests supply a stub.
type PictureFinder interface {
	FindBySubstring(pattern string) (*models.Picture, error)
}

// AssignmentValues couples one persisted assignment with its persisted values.
type AssignmentValues struct {
	Assignment models.ProductVariantAttribute
	Values     []models.ProductVariantAttributeValue
}

// Curated names one hand-selected tuple by its value aliases, with the
// per-combination overrides marketing assigned to it.
type Curated struct {
	// ValueAliases identify one value per assignment, in SKU order.
	ValueAliases          []string
	StockQuantity         int
	IsActive              bool
	AllowOutOfStockOrders bool
	// Price overrides the product price when non nil.
	Price *decimal.Decimal
}

// Generator builds combination records for one product at a time.
type Generator struct {
	pictures PictureFinder
}

// New creates a Generator resolving pictures through the given finder.
func New(pictures PictureFinder) *Generator {
	return &Generator{pictures: pictures}
}

// Generate computes the cartesian product across the value lists of the given
// assignments, one value chosen per assignment, and emits one combination per
// tuple. A tuple that fails to build is logged and skipped; a missing sample
// picture must not abort an entire seeding run.
func (g *Generator) Generate(
	product *models.Product,
	groups []AssignmentValues,
) []models.ProductVariantAttributeCombination {
	if len(groups) == 0 {
		return nil
	}

	for _, grp := range groups {
		if len(grp.Values) == 0 {
			return nil // empty value list, cross product is empty
		}
	}

	total := 1
	for _, grp := range groups {
		total *= len(grp.Values)
	}

	out := make([]models.ProductVariantAttributeCombination, 0, total)
	indices := make([]int, len(groups))

	for {
		tuple := make([]tupleEntry, len(groups))
		for i, grp := range groups {
			tuple[i] = tupleEntry{
				assignment: grp.Assignment,
				value:      grp.Values[indices[i]],
			}
		}

		combo, err := g.build(product, tuple, nil)
		if err != nil {
			log.Warn().Err(err).
				Uint64("product", product.ID).
				Str("sku", tupleSku(product.Sku, tuple)).
				Msg("skipping combination")
		} else {
			out = append(out, *combo)
		}

		if !advance(indices, groups) {
			break
		}
	}

	return out
}

// GenerateCurated emits exactly one combination per curated tuple, preserving
// the list order. Duplicate tuples are kept as separate combinations, matching
// the curated source lists. A tuple naming an unknown alias is logged and
// skipped without aborting the remaining tuples.
func (g *Generator) GenerateCurated(
	product *models.Product,
	groups []AssignmentValues,
	curated []Curated,
) []models.ProductVariantAttributeCombination {
	byAlias := make(map[string]tupleEntry)
	for _, grp := range groups {
		for _, val := range grp.Values {
			byAlias[strings.ToLower(val.Alias)] = tupleEntry{assignment: grp.Assignment, value: val}
		}
	}

	out := make([]models.ProductVariantAttributeCombination, 0, len(curated))

	for _, cur := range curated {
		tuple, err := resolveTuple(byAlias, cur.ValueAliases)
		if err == nil {
			var combo *models.ProductVariantAttributeCombination

			combo, err = g.build(product, tuple, &cur)
			if err == nil {
				out = append(out, *combo)
				continue
			}
		}

		log.Warn().Err(err).
			Uint64("product", product.ID).
			Strs("aliases", cur.ValueAliases).
			Msg("skipping curated combination")
	}

	return out
}

type tupleEntry struct {
	assignment models.ProductVariantAttribute
	value      models.ProductVariantAttributeValue
}

// build assembles one combination record from a resolved tuple.
func (g *Generator) build(
	product *models.Product,
	tuple []tupleEntry,
	cur *Curated,
) (*models.ProductVariantAttributeCombination, error) {
	selections := make([]attrcombo.Selection, len(tuple))
	for i, entry := range tuple {
		selections[i] = attrcombo.Selection{
			AssignmentID: entry.assignment.ID,
			ValueID:      entry.value.ID,
		}
	}

	encoded, err := attrcombo.Encode(selections)
	if err != nil {
		return nil, errors.Wrap(err, "encode selection")
	}

	pictureIDs, err := g.resolvePictures(tuple)
	if err != nil {
		return nil, errors.Wrap(err, "resolve pictures")
	}

	combo := &models.ProductVariantAttributeCombination{
		ProductID:          product.ID,
		Sku:                tupleSku(product.Sku, tuple),
		AttributesXML:      encoded,
		StockQuantity:      product.StockQuantity,
		IsActive:           true,
		AssignedPictureIDs: pictureIDs,
	}

	if cur != nil {
		combo.StockQuantity = cur.StockQuantity
		combo.IsActive = cur.IsActive
		combo.AllowOutOfStockOrders = cur.AllowOutOfStockOrders
		combo.Price = cur.Price
	}

	return combo, nil
}

// resolvePictures matches each value alias against stored picture filenames.
// No match leaves the combination without that picture; only a real lookup
// failure is reported to the caller.
func (g *Generator) resolvePictures(tuple []tupleEntry) ([]uint64, error) {
	var ids []uint64

	for _, entry := range tuple {
		pic, err := g.pictures.FindBySubstring(strings.ToLower(entry.value.Alias))
		if err != nil {
			if errors.Is(err, picture.ErrPictureNotFound) {
				continue
			}

			return nil, errors.Wrapf(err, "lookup picture for %q", entry.value.Alias)
		}

		if !containsID(ids, pic.ID) {
			ids = append(ids, pic.ID)
		}
	}

	return ids, nil
}

// tupleSku derives the combination SKU from the base SKU and the value aliases.
func tupleSku(baseSku string, tuple []tupleEntry) string {
	parts := make([]string, 0, len(tuple)+1)
	parts = append(parts, baseSku)

	for _, entry := range tuple {
		parts = append(parts, strings.ToLower(entry.value.Alias))
	}

	return strings.Join(parts, "-")
}

// resolveTuple maps curated value aliases back to their assignment and value.
func resolveTuple(byAlias map[string]tupleEntry, aliases []string) ([]tupleEntry, error) {
	if len(aliases) == 0 {
		return nil, ErrEmptyTuple
	}

	tuple := make([]tupleEntry, len(aliases))
	for i, alias := range aliases {
		entry, ok := byAlias[strings.ToLower(alias)]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAlias, "alias %q", alias)
		}
		tuple[i] = entry
	}

	return tuple, nil
}

// advance moves the index vector to the next tuple of the cross product.
func advance(indices []int, groups []AssignmentValues) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < len(groups[i].Values) {
			return true
		}
		indices[i] = 0
	}

	return false
}

func containsID(ids []uint64, id uint64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}

	return false
}
