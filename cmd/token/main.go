// Command token issues access tokens for the jwt auth mode.
package main

import (
	"fmt"
	"os"
	"strconv"
	"todomac/config"
	"todomac/infras/jwt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "token <user-id>",
	Short:        "Print a signed access token for a numeric user id",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be numeric: %w", err)
		}

		token, err := jwt.New(config.Get()).GenerateAccessToken(userID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
