package material

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxColumns is the expected column order of a material spreadsheet,
// matching the YAML field names so the two formats round-trip.
var xlsxColumns = []string{
	"name", "e1_gpa", "e2_gpa", "g12_gpa", "nu12",
	"density_kgm3", "cost_per_kg", "loss_factor", "source",
}

// ReadXLSX parses material records from the first sheet of a spreadsheet.
// Row 1 must be a header; the columns are, in order: name, e1_gpa, e2_gpa,
// g12_gpa, nu12, density_kgm3, cost_per_kg, loss_factor, source. The last
// two columns are optional.
func ReadXLSX(path string) ([]Properties, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var records []Properties
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		rec, err := parseXLSXRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no material records", sheet)
	}
	return records, nil
}

func parseXLSXRow(row []string) (Properties, error) {
	if len(row) < 7 {
		return Properties{}, fmt.Errorf("need at least 7 columns (%s), got %d",
			strings.Join(xlsxColumns[:7], ", "), len(row))
	}
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(i int) (float64, error) {
		v, err := strconv.ParseFloat(cell(i), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", xlsxColumns[i], err)
		}
		return v, nil
	}
	optNum := func(i int) (float64, error) {
		if cell(i) == "" {
			return 0, nil
		}
		return num(i)
	}

	rec := Properties{Name: cell(0), Source: cell(8)}
	var err error
	if rec.E1, err = num(1); err != nil {
		return Properties{}, err
	}
	if rec.E2, err = num(2); err != nil {
		return Properties{}, err
	}
	if rec.G12, err = num(3); err != nil {
		return Properties{}, err
	}
	if rec.Nu12, err = num(4); err != nil {
		return Properties{}, err
	}
	if rec.Rho, err = num(5); err != nil {
		return Properties{}, err
	}
	if rec.CostPerKg, err = num(6); err != nil {
		return Properties{}, err
	}
	if rec.LossFactor, err = optNum(7); err != nil {
		return Properties{}, err
	}
	return rec, nil
}
