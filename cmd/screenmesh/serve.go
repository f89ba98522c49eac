package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/screenmesh/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "bind host override")
	serveCmd.Flags().Int("port", 0, "bind port override")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.HTTP.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.HTTP.Port = port
	}

	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck

	srv, err := server.NewServer(engine, newLogger(cfg), &server.Config{
		Host: cfg.HTTP.Host,
		Port: cfg.HTTP.Port,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
