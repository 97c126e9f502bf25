package blend

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteResult writes a run result in the requested format: "json" for
// the full result document, "csv" for a model/weight table.
func WriteResult(w io.Writer, res *Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		return writeCSV(w, res)
	default:
		return fmt.Errorf("unknown output format: %s (must be json or csv)", format)
	}
}

func writeCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"model", "weight", "raw_weight"}); err != nil {
		return err
	}
	for i, model := range res.Models {
		record := []string{
			model,
			strconv.FormatFloat(res.Weights[i], 'g', -1, 64),
			strconv.FormatFloat(res.RawWeights[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResult parses a previously written JSON result, typically to
// apply its weights to held-out predictions.
func ReadResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to parse result json: %w", err)
	}
	if len(res.Models) == 0 || len(res.Models) != len(res.Weights) {
		return nil, fmt.Errorf("result has %d models but %d weights", len(res.Models), len(res.Weights))
	}
	return &res, nil
}
