package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction HTTP API server",
	Long:  "Start an HTTP API exposing the extraction engine: POST /extract runs the pipeline, GET /extractions/{id} loads persisted results. Set JWT_SECRET to require bearer tokens.",
	RunE:  runServe,
}

var (
	servePort       int
	serveDBURL      string
	serveConfigFile string
	serveVocabFile  string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for extraction run persistence (overrides DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabFile, "vocab", "", "Path to YAML vocabulary override file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		DatabaseURL: serveDBURL,
		VocabFile:   serveVocabFile,
	}
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	engine, err := buildEngine(cfg.VocabFile)
	if err != nil {
		return err
	}

	serverCfg := server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Engine:      engine,
	}

	// Authentication is opt-in: without JWT_SECRET the API is open, which
	// is the expected mode for local use.
	if os.Getenv("JWT_SECRET") != "" {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return err
		}
		serverCfg.JWT = jwtCfg
	} else {
		fmt.Fprintln(os.Stderr, "Warning: JWT_SECRET not set, API authentication is disabled")
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return err
	}
	return srv.Start()
}
