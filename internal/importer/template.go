package importer

import (
	"github.com/nconklindev/stockcell/internal/types"

	"github.com/xuri/excelize/v2"
)

const templateSheet = "Products"

// TemplateHeaders returns the header line users are asked to provide.
func TemplateHeaders(variant types.Variant) []string {
	if variant == types.VariantExtended {
		return []string{"Код", "Название", "Артикул", "Ячейка"}
	}
	return []string{"ID", "Название", "Артикул", "Зона", "Ячейка", "Количество"}
}

func templateExample(variant types.Variant) []interface{} {
	if variant == types.VariantExtended {
		return []interface{}{"1", "Samsung Galaxy smartphone", "SM-001", "A-12"}
	}
	return []interface{}{1, "Samsung Galaxy smartphone", "SM-001", "A", "A-12", 45}
}

// WriteTemplate saves an xlsx with the expected header row and one example
// row for the variant.
func WriteTemplate(outputFile string, variant types.Variant) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FF8C42"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	headers := TemplateHeaders(variant)
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(templateSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(templateSheet, cell, cell, headerStyle); err != nil {
			return err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(templateSheet, colName, colName, 20); err != nil {
			return err
		}
	}

	example := templateExample(variant)
	if err := f.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return err
	}

	return f.SaveAs(outputFile)
}
