package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/config"
	"github.com/jonathan/marketpulse/internal/db"
	"github.com/jonathan/marketpulse/internal/observability"
	"github.com/jonathan/marketpulse/internal/schemas"
)

var (
	importDryRun  bool
	importVerbose bool
)

var importCompaniesCmd = &cobra.Command{
	Use:   "import-companies <file.json>",
	Short: "Import company documents from a JSON file",
	Long: `Validate a JSON array of company documents against the company schema and
upsert them into the database keyed by name. Documents that fail validation
are reported and skipped; the rest still import.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCompanies,
}

func init() {
	importCompaniesCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate only, write nothing")
	importCompaniesCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print a summary box after the run")
	rootCmd.AddCommand(importCompaniesCmd)
}

func runImportCompanies(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Decode to raw documents first so each one can be schema-validated
	// individually before the typed decode.
	var rawDocs []json.RawMessage
	if err := json.Unmarshal(data, &rawDocs); err != nil {
		return fmt.Errorf("%s is not a JSON array of company documents: %v", path, err)
	}

	validator, err := schemas.NewCompanyValidator()
	if err != nil {
		return fmt.Errorf("failed to load company schema: %w", err)
	}

	summary := &observability.ImportSummary{File: path}
	var companies []*db.Company
	for i, raw := range rawDocs {
		if err := validator.ValidateBytes(raw); err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("document %d: %v", i+1, err))
			continue
		}
		var company db.Company
		if err := json.Unmarshal(raw, &company); err != nil {
			summary.Failures = append(summary.Failures, fmt.Sprintf("document %d: %v", i+1, err))
			continue
		}
		companies = append(companies, &company)
	}

	if importDryRun {
		fmt.Printf("%d of %d documents valid\n", len(companies), len(rawDocs))
		if importVerbose {
			observability.NewPrinter(os.Stdout).PrintImportSummary(summary)
		}
		if len(summary.Failures) > 0 {
			return fmt.Errorf("%d documents failed validation", len(summary.Failures))
		}
		return nil
	}

	serverConfig, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, serverConfig.MongoURI, serverConfig.MongoDatabase)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(ctx)

	for _, company := range companies {
		inserted, err := database.UpsertCompany(ctx, company)
		if err != nil {
			log.Printf("[import] failed to upsert %q: %v", company.Name, err)
			summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", company.Name, err))
			continue
		}
		if inserted {
			summary.Imported++
		} else {
			summary.Updated++
		}
	}

	if importVerbose {
		observability.NewPrinter(os.Stdout).PrintImportSummary(summary)
	} else {
		fmt.Printf("%d inserted, %d updated, %d failed\n",
			summary.Imported, summary.Updated, len(summary.Failures))
	}

	if len(summary.Failures) > 0 {
		return fmt.Errorf("%d documents failed", len(summary.Failures))
	}
	return nil
}
