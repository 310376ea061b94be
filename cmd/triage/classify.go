package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyberhelp-labs/triage/internal/extract"
	"github.com/cyberhelp-labs/triage/internal/model"
	"github.com/cyberhelp-labs/triage/internal/triage"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a single complaint from the argument or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			in, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(in)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("complaint text is empty")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			log.Fatalf("failed to build engine: %v", err)
		}
		defer eng.Close()

		res, err := eng.Process(text)
		if err != nil {
			return err
		}
		ents := extract.Entities(text)

		out := struct {
			PrimaryCategory string         `json:"primary_category"`
			Subcategory     string         `json:"subcategory"`
			PrimaryConf     float64        `json:"primary_confidence"`
			SubConf         float64        `json:"subcategory_confidence"`
			Stage           string         `json:"stage"`
			Entities        model.Entities `json:"extracted_entities"`
			Priority        string         `json:"priority"`
			SuggestedAction string         `json:"suggested_action"`
		}{
			PrimaryCategory: res.Primary,
			Subcategory:     res.Subcategory,
			PrimaryConf:     res.PrimaryConf,
			SubConf:         res.SubConf,
			Stage:           res.Stage,
			Entities:        ents,
			Priority:        triage.Priority(res, ents),
			SuggestedAction: triage.Advise(res, ents),
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
