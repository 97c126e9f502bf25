package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swarmblend/ensemble-core/pkg/config"
	"github.com/swarmblend/ensemble-core/pkg/logger"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "Search ensemble weights for blending regression models",
		Long: `blend combines predictions from independently trained regression models
into a single ensemble prediction by searching for a non-negative weight
per model with particle swarm optimization. The search minimizes the
mean squared error of the weighted, normalized blend on the training
set; being a stochastic heuristic, it finds good weights, not provably
optimal ones.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "path to the job configuration file")
	cmd.PersistentFlags().String("log-level", "", "override the job's log level")

	cmd.AddCommand(NewRunCmd(), NewValidateCmd(), NewApplyCmd())
	return cmd
}

// loadJob reads the job named by --config and points the default
// logger at stderr with the effective level.
func loadJob(cmd *cobra.Command) (*config.Job, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil, fmt.Errorf("--config is required")
	}

	job, err := config.LoadJob(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		job.LogLevel = level
	}
	logger.SetDefault(logger.NewText(job.LogLevel, cmd.ErrOrStderr()))

	return job, nil
}
