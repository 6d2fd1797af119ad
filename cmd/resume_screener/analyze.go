package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/upload"
)

var (
	criteriaJSON string
	criteriaFile string
	outputJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a single resume file",
	Long:  "Run the full screening pipeline on one PDF or DOCX resume and print the extracted data and scored analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&criteriaJSON, "criteria", "c", "", "Job criteria as inline JSON")
	analyzeCmd.Flags().StringVar(&criteriaFile, "criteria-file", "", "Path to a job criteria JSON file")
	analyzeCmd.Flags().BoolVar(&outputJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	criteria, err := loadCriteria()
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	input, err := readResumeFile(args[0])
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(cmd.Context(), *input, criteria)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if outputJSON {
		return printJSON(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResume(result.Resume)
	printer.PrintAnalysis(result.Analysis)
	return nil
}

// buildAnalyzer wires the pipeline from environment configuration. CLI runs
// are stateless, so no candidate store is attached.
func buildAnalyzer() (*pipeline.Analyzer, error) {
	cfg, err := config.NewAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	ring, err := llm.NewKeyRing(cfg.GeminiAPIKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential ring: %w", err)
	}

	llmConfig := llm.DefaultConfig()
	if cfg.StandardModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	if cfg.LiteModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, cfg.LiteModel)
	}

	parser := parsing.NewParser(ring, llmConfig)
	return pipeline.NewAnalyzer(parser, scoring.NewEngine(), nil), nil
}

// loadCriteria resolves the criteria flags; both unset yields defaults.
func loadCriteria() (*types.JobCriteria, error) {
	if criteriaJSON != "" && criteriaFile != "" {
		return nil, fmt.Errorf("--criteria and --criteria-file are mutually exclusive; provide only one")
	}

	raw := criteriaJSON
	if criteriaFile != "" {
		data, err := os.ReadFile(criteriaFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read criteria file: %w", err)
		}
		raw = string(data)
	}

	criteria := &types.JobCriteria{}
	if raw == "" {
		return criteria, nil
	}
	if err := json.Unmarshal([]byte(raw), criteria); err != nil {
		return nil, fmt.Errorf("invalid criteria JSON: %w", err)
	}
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("invalid criteria: %w", err)
	}
	return criteria, nil
}

// readResumeFile loads one resume from disk, inferring the MIME type from
// the file extension.
func readResumeFile(path string) (*pipeline.Input, error) {
	mimeType, err := mimeTypeForFile(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	return &pipeline.Input{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

func mimeTypeForFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return upload.MIMEPDF, nil
	case ".docx":
		return upload.MIMEDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q: only .pdf and .docx are supported", filepath.Ext(path))
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
