package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/cyberhelp-labs/triage/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the classification HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		eng, err := buildEngine(cfg)
		if err != nil {
			log.Fatalf("failed to build engine: %v", err)
		}
		defer eng.Close()

		return server.New(eng).Run(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
