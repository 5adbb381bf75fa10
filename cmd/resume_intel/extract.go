package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/db"
	"github.com/jonathan/resume-intel/internal/extractor"
	"github.com/jonathan/resume-intel/internal/observability"
	"github.com/jonathan/resume-intel/internal/schemas"
	"github.com/jonathan/resume-intel/internal/types"
	"github.com/jonathan/resume-intel/internal/vocab"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Extract structured facts from plain-text resume files",
	Long:  "Extract contact channels, sections, employment entries, and aggregate experience from one or more plain-text resume files. Results are written as JSON, one artifact per input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

var (
	extractOutputDir  string
	extractConfigFile string
	extractVocabFile  string
	extractDBURL      string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutputDir, "out", "o", "", "Directory for JSON result artifacts (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfigFile, "config", "", "Path to JSON config file")
	extractCmd.Flags().StringVar(&extractVocabFile, "vocab", "", "Path to YAML vocabulary override file")
	extractCmd.Flags().StringVar(&extractDBURL, "db-url", "", "PostgreSQL URL to persist extraction runs (overrides DATABASE_URL)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print extraction summaries")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	cfg := config.Config{
		OutputDir:   extractOutputDir,
		VocabFile:   extractVocabFile,
		DatabaseURL: extractDBURL,
		Verbose:     extractVerbose,
	}
	if extractConfigFile != "" {
		fileCfg, err := config.LoadConfig(extractConfigFile)
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

	ctx := context.Background()

	var store *db.DB
	if cfg.DatabaseURL != "" {
		store, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	type fileResult struct {
		path    string
		runID   string
		outPath string
		json    []byte
	}
	results := make([]fileResult, len(args))

	// The engine is a pure function of its input, so files extract in
	// parallel without coordination; only the database pool is shared.
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range args {
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			result := engine.Extract(string(text))
			jsonBytes, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result for %s: %w", path, err)
			}

			res := fileResult{path: path, json: jsonBytes}

			if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "extraction_result.schema.json")); schemaPath != "" {
				if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
					return fmt.Errorf("result for %s does not validate against schema: %w", path, err)
				}
			}

			if store != nil {
				id, err := store.SaveExtraction(gCtx, string(text), result)
				if err != nil {
					return err
				}
				res.runID = id.String()
			}

			if cfg.OutputDir != "" {
				base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				res.outPath = filepath.Join(cfg.OutputDir, base+".extraction.json")
				if err := os.WriteFile(res.outPath, jsonBytes, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", res.outPath, err)
				}
			}

			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, res := range results {
		if cfg.Verbose {
			fmt.Printf("\n=== %s ===\n", res.path)
			var result types.ExtractionResult
			if err := json.Unmarshal(res.json, &result); err == nil {
				printer.PrintResult(result)
			}
		}
		if res.outPath != "" {
			fmt.Printf("Output: %s\n", res.outPath)
		} else if !cfg.Verbose {
			fmt.Println(string(res.json))
		}
		if res.runID != "" {
			fmt.Printf("Run ID: %s\n", res.runID)
		}
	}

	return nil
}

// buildEngine creates the extraction engine, applying a vocabulary override
// file when one is configured.
func buildEngine(vocabFile string) (*extractor.Engine, error) {
	if vocabFile == "" {
		return extractor.New(), nil
	}
	v := vocab.Default()
	if err := v.LoadFile(vocabFile); err != nil {
		return nil, err
	}
	return extractor.New(extractor.WithVocabulary(v)), nil
}
