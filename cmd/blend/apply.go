package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swarmblend/ensemble-core/internal/blend"
)

func NewApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply previously computed weights to a held-out prediction table",
		RunE:  runApply,
	}
	cmd.Flags().String("weights", "", "path to a result json written by 'blend run'")
	cmd.Flags().String("input", "", "path to a CSV of held-out predictions (no target column)")
	_ = cmd.MarkFlagRequired("weights")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	weightsPath, _ := cmd.Flags().GetString("weights")
	inputPath, _ := cmd.Flags().GetString("input")

	f, err := os.Open(weightsPath)
	if err != nil {
		return fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	res, err := blend.ReadResult(f)
	if err != nil {
		return err
	}

	models, predictions, err := blend.LoadMatrix(inputPath)
	if err != nil {
		return err
	}

	// Align the table's columns to the weight order by model name.
	index := make(map[string]int, len(models))
	for i, m := range models {
		index[m] = i
	}
	ordered := make([][]float64, len(res.Models))
	for i, m := range res.Models {
		j, ok := index[m]
		if !ok {
			return fmt.Errorf("input table is missing model column %q", m)
		}
		ordered[i] = predictions[j]
	}

	combined, err := blend.Combine(res.Weights, ordered)
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"blend"}); err != nil {
		return err
	}
	for _, v := range combined {
		if err := w.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
