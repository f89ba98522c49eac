package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and manage session memory",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the remembered context for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear <session-id>",
	Short: "Forget the remembered context for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionClear,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd, sessionClearCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck

	sc, err := engine.MemoryStore().Load(args[0])
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	encoded, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck

	deleter, ok := engine.MemoryStore().(interface{ Delete(string) error })
	if !ok {
		return fmt.Errorf("session store does not support clearing")
	}
	if err := deleter.Delete(args[0]); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Session", args[0], "cleared")
	return nil
}
