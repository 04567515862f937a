package ownership

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Proprietários"

var exportHeader = []interface{}{"Imóvel Rural", "Área (ha)", "Proprietário", "Tipo", "Posse (%)"}

// WriteXLSX saves the report rows as a spreadsheet at path.
func WriteXLSX(rows []Row, path string) error {
	if len(rows) == 0 {
		return ErrEmptyReport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeader); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.NomeImovel, r.AreaTotalHa, r.Proprietario, r.TypeLabel(), r.PercentualPropriedade}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	numFmt := "0.00"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	last := len(rows) + 1
	if err := f.SetCellStyle(sheetName, "B2", fmt.Sprintf("B%d", last), style); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "E2", fmt.Sprintf("E%d", last), style); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "C", 42); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
