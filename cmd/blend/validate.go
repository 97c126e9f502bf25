package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swarmblend/ensemble-core/internal/blend"
)

func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the job configuration and prediction table without searching",
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	job, err := loadJob(cmd)
	if err != nil {
		return err
	}

	in, err := blend.LoadTable(job.Input.Predictions, job.Input.TargetColumn)
	if err != nil {
		return err
	}

	if err := blend.Validate(*in, job); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "job ok: %d models, %d samples\n",
		len(in.Models), len(in.Target))
	return nil
}
