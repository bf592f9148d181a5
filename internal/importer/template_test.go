package importer

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nconklindev/stockcell/internal/types"
)

func TestWriteTemplate_ImportsBack(t *testing.T) {
	tests := []struct {
		name     string
		variant  types.Variant
		expected types.Product
	}{
		{
			name:    "Classic",
			variant: types.VariantClassic,
			expected: types.Product{
				ID: "1", Article: "SM-001", Name: "Samsung Galaxy smartphone",
				Cell: "A-12", Quantity: 45, Zone: types.ZoneA,
			},
		},
		{
			name:    "Extended",
			variant: types.VariantExtended,
			expected: types.Product{
				ID: "1", Article: "SM-001", Name: "Samsung Galaxy smartphone",
				Cell: "A-12", Extra: map[string]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "template.xlsx")
			if err := WriteTemplate(path, tt.variant); err != nil {
				t.Fatalf("WriteTemplate failed: %v", err)
			}

			sheet, rows, err := ReadRows(path)
			if err != nil {
				t.Fatalf("ReadRows failed: %v", err)
			}
			if sheet != templateSheet {
				t.Errorf("sheet = %q; want %q", sheet, templateSheet)
			}
			for _, header := range TemplateHeaders(tt.variant) {
				if _, ok := rows[0][header]; !ok {
					t.Errorf("header %q missing from template", header)
				}
			}

			products := Normalize(rows, tt.variant)
			if len(products) != 1 {
				t.Fatalf("got %d products; want 1", len(products))
			}
			if !reflect.DeepEqual(products[0], tt.expected) {
				t.Errorf("product = %+v; want %+v", products[0], tt.expected)
			}
		})
	}
}
