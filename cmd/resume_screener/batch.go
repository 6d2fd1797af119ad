package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/batch"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <resume-file-or-dir>...",
	Short: "Analyze a batch of resume files",
	Long:  fmt.Sprintf("Run the screening pipeline on up to %d resumes concurrently and print a ranked report. Directory arguments are expanded to the PDF and DOCX files they contain. Individual file failures are reported per file and never abort the batch.", batch.MaxFiles),
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&criteriaJSON, "criteria", "c", "", "Job criteria as inline JSON")
	batchCmd.Flags().StringVar(&criteriaFile, "criteria-file", "", "Path to a job criteria JSON file")
	batchCmd.Flags().BoolVar(&outputJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	criteria, err := loadCriteria()
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	files := make([]pipeline.Input, 0, len(paths))
	for _, path := range paths {
		input, err := readResumeFile(path)
		if err != nil {
			return err
		}
		files = append(files, *input)
	}

	report, err := batch.Run(cmd.Context(), analyzer, files, criteria)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if outputJSON {
		return printJSON(report)
	}

	observability.NewPrinter(os.Stdout).PrintBatchReport(report)
	return nil
}

// expandPaths resolves each argument to resume files: directories contribute
// their PDF and DOCX entries, anything else passes through as-is.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if _, err := mimeTypeForFile(entry.Name()); err == nil {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF or DOCX files found")
	}
	return paths, nil
}
