package blend

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadTable reads a CSV prediction table. The first row is a header;
// the column named targetColumn is the ground truth and every other
// column is one model's prediction series, in header order.
func LoadTable(path, targetColumn string) (*Input, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	targetIdx := -1
	for i, name := range header {
		if name == targetColumn {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("%s: target column %q not found in header %v", path, targetColumn, header)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: table needs at least one model column besides %q", path, targetColumn)
	}

	models := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i != targetIdx {
			models = append(models, name)
		}
	}

	predictions := make([][]float64, len(models))
	for i := range predictions {
		predictions[i] = make([]float64, len(rows))
	}
	target := make([]float64, len(rows))

	for r, row := range rows {
		col := 0
		for c, cell := range row {
			if c == targetIdx {
				target[r] = cell
				continue
			}
			predictions[col][r] = cell
			col++
		}
	}

	return &Input{Models: models, Predictions: predictions, Target: target}, nil
}

// LoadMatrix reads a CSV of prediction series without a target column,
// for applying already-computed weights to held-out data.
func LoadMatrix(path string) (models []string, predictions [][]float64, err error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	predictions = make([][]float64, len(header))
	for i := range predictions {
		predictions[i] = make([]float64, len(rows))
	}
	for r, row := range rows {
		for c, cell := range row {
			predictions[c][r] = cell
		}
	}
	return header, predictions, nil
}

// readCSV parses a header row plus numeric data rows. A non-numeric
// cell is an error naming its row and column rather than a silent skip.
func readCSV(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse table %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("table %s needs a header row and at least one data row", path)
	}

	header := records[0]
	rows := make([][]float64, len(records)-1)
	for r, record := range records[1:] {
		row := make([]float64, len(record))
		for c, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("table %s row %d column %q: invalid number %q", path, r+2, header[c], cell)
			}
			row[c] = v
		}
		rows[r] = row
	}
	return header, rows, nil
}
