// Package pipeline wires the per-file analysis stages: file validation,
// text extraction, prompted parsing, schema validation, and scoring.
package pipeline

import (
	"context"
	"log"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/upload"
)

// Input is one uploaded file entering the pipeline.
type Input struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Result is the outcome of one successful analysis.
type Result struct {
	Resume   *types.ParsedResume
	Analysis *types.EnhancedAnalysis
}

// CandidateStore persists successfully analyzed resumes. The analysis itself
// is derived data and is recomputed on demand, so only the resume is stored.
type CandidateStore interface {
	SaveCandidate(ctx context.Context, resume *types.ParsedResume) error
}

// ExtractFunc converts file bytes into plain text for one MIME type.
type ExtractFunc func(data []byte, mimeType string) (string, error)

// Analyzer runs the full pipeline for one file. Stages are strictly
// sequential within a file; concurrency across files belongs to the batch
// orchestrator.
type Analyzer struct {
	extract ExtractFunc
	parser  *parsing.Parser
	engine  *scoring.Engine
	store   CandidateStore
}

// NewAnalyzer creates an Analyzer. store may be nil when persistence is not
// configured (CLI usage).
func NewAnalyzer(parser *parsing.Parser, engine *scoring.Engine, store CandidateStore) *Analyzer {
	return &Analyzer{
		extract: extraction.Extract,
		parser:  parser,
		engine:  engine,
		store:   store,
	}
}

// NewAnalyzerWithExtractor creates an Analyzer with a custom extraction
// function. Tests use this to bypass real PDF/DOCX decoding.
func NewAnalyzerWithExtractor(extract ExtractFunc, parser *parsing.Parser, engine *scoring.Engine, store CandidateStore) *Analyzer {
	a := NewAnalyzer(parser, engine, store)
	a.extract = extract
	return a
}

// Analyze validates, extracts, parses, schema-checks, and scores one file.
// The returned error is always one of the pipeline's terminal error kinds,
// safe to surface to the caller verbatim.
func (a *Analyzer) Analyze(ctx context.Context, input Input, criteria *types.JobCriteria) (*Result, error) {
	file := upload.File{
		Name:     input.Name,
		MIMEType: input.MIMEType,
		Size:     int64(len(input.Data)),
	}
	if err := upload.Validate(file); err != nil {
		return nil, err
	}

	text, err := a.extract(input.Data, input.MIMEType)
	if err != nil {
		return nil, err
	}

	raw, err := a.parser.ParseResume(ctx, text)
	if err != nil {
		return nil, err
	}

	resume, err := schemas.ValidateResume(raw)
	if err != nil {
		// Field-level violations go to the server log; the caller gets one
		// generic statement.
		log.Printf("[PIPELINE] schema rejection for %q: %v", input.Name, err)
		return nil, &SchemaRejectionError{cause: err}
	}

	analysis := a.engine.Score(resume, criteria)

	if a.store != nil {
		// Persistence is best-effort: a storage failure must not discard a
		// completed analysis.
		if err := a.store.SaveCandidate(ctx, resume); err != nil {
			log.Printf("[PIPELINE] failed to persist candidate %q: %v", resume.Name, err)
		}
	}

	return &Result{Resume: resume, Analysis: analysis}, nil
}
