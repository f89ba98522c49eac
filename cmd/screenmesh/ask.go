package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/screenmesh/core"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the knowledge base a drug-discovery question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck

	result, err := engine.Submit(cmd.Context(), core.Query{
		Intent:   core.IntentAsk,
		Question: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	return nil
}
