package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scan/internal/config"
	"github.com/jonathan/ats-scan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis API",
	Long:  "Serve POST /analyze, POST /extract, and GET /health. The API is stateless; nothing is persisted between requests.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default: ATS_SCAN_PORT or 8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		port = config.PortFromEnv(8080)
	}

	ref, err := buildRefdata(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:    port,
		Ref:     ref,
		Weights: buildWeights(cfg),
	})
	return srv.Start()
}
