package main

import (
	"fmt"
	"os"
	"todomac/config"
	"todomac/helper"
	"todomac/shared/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the todo database schema",
	Long: `Apply versioned migrations from the migrations directory, or recreate the
development database from the bootstrap SQL scripts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(config.Get())
	},
}

func migrationCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Drop and recreate the development database from the SQL scripts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return helper.Bootstrap(cmd.Context(), config.Get())
	},
}

func init() {
	rootCmd.AddCommand(
		migrationCmd(helper.ActionUp, "Apply all pending migrations"),
		migrationCmd(helper.ActionDown, "Roll back the last migration"),
		migrationCmd(helper.ActionStepUp, "Apply the next pending migration"),
		migrationCmd(helper.ActionDrop, "Roll back every migration"),
		bootstrapCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
