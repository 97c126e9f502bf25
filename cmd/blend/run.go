package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swarmblend/ensemble-core/internal/blend"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the weight search and write the resulting blend",
		RunE:  runRun,
	}
	cmd.Flags().Int64("seed", 0, "override the job's random seed")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	job, err := loadJob(cmd)
	if err != nil {
		return err
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		job.Swarm.Seed = seed
	}

	in, err := blend.LoadTable(job.Input.Predictions, job.Input.TargetColumn)
	if err != nil {
		return err
	}

	res, err := blend.Run(cmd.Context(), *in, job)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if job.Output.Path != "" {
		f, err := os.Create(job.Output.Path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return blend.WriteResult(out, res, job.Output.Format)
}
