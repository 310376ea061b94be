package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberhelp-labs/triage/internal/config"
	"github.com/cyberhelp-labs/triage/internal/engine"
	"github.com/cyberhelp-labs/triage/internal/engine/classifier"
	"github.com/cyberhelp-labs/triage/internal/engine/embedder"
	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Fraud complaint classification service",
	Long: `Triage classifies cyber fraud complaints into a two-level taxonomy,
extracts entities such as amounts and UPI handles, and derives case
priority and recommended next steps.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file (env vars apply underneath)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
}

// loadConfig resolves configuration from the environment, overlaid by the
// --config file when given, and initializes logging.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}
	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))
	return cfg, nil
}

// buildEngine constructs the full classification stack from config: ONNX
// embedder, taxonomy prototypes, staged classifier.
func buildEngine(cfg config.Config) (*engine.Engine, error) {
	emb, err := embedder.New(cfg.Engine.ModelPath, cfg.Engine.VocabPath, cfg.Engine.OnnxLibPath)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	tax, err := taxonomy.New(emb)
	if err != nil {
		emb.Close()
		return nil, fmt.Errorf("build taxonomy: %w", err)
	}
	cls := classifier.New(emb, tax)
	return engine.New(emb, tax, cls, cfg.Engine.GateThreshold), nil
}
