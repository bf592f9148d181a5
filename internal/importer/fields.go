package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/nconklindev/stockcell/internal/types"
)

// Field names a normalized Product field.
type Field string

const (
	FieldID       Field = "id"
	FieldArticle  Field = "article"
	FieldName     Field = "name"
	FieldCell     Field = "cell"
	FieldZone     Field = "zone"
	FieldQuantity Field = "quantity"
)

// FieldRule maps an ordered alias chain onto one Product field.
type FieldRule struct {
	Field   Field
	Aliases []string
	// Default yields the value used when no alias has one; index is the
	// 0-based position of the row.
	Default func(index int) string
	// Coerce stores the resolved text on the product.
	Coerce func(p *types.Product, value string)
}

// Resolve returns the first non-empty aliased value in row, or the default.
// Values are not trimmed, so a cell holding only spaces still wins.
func (r FieldRule) Resolve(row types.Row, index int) string {
	for _, alias := range r.Aliases {
		if v := row[alias]; v != "" {
			return v
		}
	}
	if r.Default == nil {
		return ""
	}
	return r.Default(index)
}

var classicRules = []FieldRule{
	{
		Field:   FieldID,
		Aliases: []string{"ID", "id"},
		Default: rowPosition,
		Coerce:  func(p *types.Product, v string) { p.ID = v },
	},
	{
		Field:   FieldName,
		Aliases: []string{"Название", "name", "Товар"},
		Coerce:  func(p *types.Product, v string) { p.Name = v },
	},
	{
		Field:   FieldArticle,
		Aliases: []string{"Артикул", "article", "Код"},
		Coerce:  func(p *types.Product, v string) { p.Article = v },
	},
	{
		Field:   FieldZone,
		Aliases: []string{"Зона", "zone"},
		Default: constant(string(types.ZoneA)),
		Coerce:  func(p *types.Product, v string) { p.Zone = types.Zone(strings.ToUpper(v)) },
	},
	{
		Field:   FieldCell,
		Aliases: []string{"Ячейка", "cell"},
		Coerce:  func(p *types.Product, v string) { p.Cell = v },
	},
	{
		Field:   FieldQuantity,
		Aliases: []string{"Количество", "quantity"},
		Default: constant("0"),
		Coerce:  func(p *types.Product, v string) { p.Quantity = ParseQuantity(v) },
	},
}

var extendedRules = []FieldRule{
	{
		Field:   FieldID,
		Aliases: []string{"ID", "id", "Код", "код"},
		Default: rowPosition,
		Coerce:  func(p *types.Product, v string) { p.ID = v },
	},
	{
		Field:   FieldArticle,
		Aliases: []string{"Артикул", "артикул", "Article"},
		Coerce:  func(p *types.Product, v string) { p.Article = v },
	},
	{
		Field:   FieldName,
		Aliases: []string{"Название", "name", "Товар", "название", "Name"},
		Coerce:  func(p *types.Product, v string) { p.Name = v },
	},
	{
		Field:   FieldCell,
		Aliases: []string{"Ячейка", "cell", "ячейка", "Cell"},
		Coerce:  func(p *types.Product, v string) { p.Cell = v },
	},
}

// Rules returns the alias table for a variant. Unknown variants get the
// classic table.
func Rules(variant types.Variant) []FieldRule {
	if variant == types.VariantExtended {
		return extendedRules
	}
	return classicRules
}

// Normalize turns header-keyed rows into products, one per row, in order.
func Normalize(rows []types.Row, variant types.Variant) []types.Product {
	rules := Rules(variant)
	claimed := claimedHeaders(rules)

	products := make([]types.Product, 0, len(rows))
	for i, row := range rows {
		var p types.Product
		for _, rule := range rules {
			rule.Coerce(&p, rule.Resolve(row, i))
		}

		if variant == types.VariantExtended {
			p.Extra = make(map[string]string)
			for header, value := range row {
				if !claimed[header] {
					p.Extra[header] = value
				}
			}
		}

		products = append(products, p)
	}

	return products
}

// ParseQuantity converts cell text to a number. Blank, non-numeric and
// non-finite input is 0.
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatQuantity renders a quantity without trailing zeros.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func claimedHeaders(rules []FieldRule) map[string]bool {
	claimed := make(map[string]bool)
	for _, rule := range rules {
		for _, alias := range rule.Aliases {
			claimed[alias] = true
		}
	}
	return claimed
}

func rowPosition(index int) string {
	return strconv.Itoa(index + 1)
}

func constant(v string) func(int) string {
	return func(int) string { return v }
}
