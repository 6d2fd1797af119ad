// Package parsing converts extracted resume text into the canonical JSON
// shape via an LLM extraction call with credential rotation.
package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/prompts"
)

const (
	// maxPromptChars bounds the resume text embedded in the prompt to keep
	// per-call token cost predictable.
	maxPromptChars = 2000
	// maxAttempts bounds credential rotation within one request.
	maxAttempts = 3
)

// Parser drives the extraction call. Rotation state lives in the shared
// KeyRing so concurrent requests agree on which credential is current.
type Parser struct {
	ring    *llm.KeyRing
	factory llm.ClientFactory
	config  *llm.Config
}

// NewParser creates a Parser over the given credential ring.
func NewParser(ring *llm.KeyRing, config *llm.Config) *Parser {
	if config == nil {
		config = llm.DefaultConfig()
	}
	return &Parser{
		ring:    ring,
		factory: llm.NewClient,
		config:  config,
	}
}

// NewParserWithFactory creates a Parser with a custom client factory.
// Tests use this to substitute a fake endpoint.
func NewParserWithFactory(ring *llm.KeyRing, config *llm.Config, factory llm.ClientFactory) *Parser {
	p := NewParser(ring, config)
	p.factory = factory
	return p
}

// ParseResume asks the model to convert resume text into the canonical JSON
// shape and returns the raw JSON reply. Authentication failures rotate to the
// next credential and retry; every other failure is terminal for the call.
// Structural validation of the reply is the schema validator's job.
func (p *Parser) ParseResume(ctx context.Context, text string) (json.RawMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyTextError{}
	}

	prompt := buildExtractionPrompt(text)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		key, pos := p.ring.Current()

		raw, err := p.generate(ctx, key, prompt)
		if err == nil {
			if !json.Valid([]byte(raw)) {
				// Log the raw reply server-side only; the client gets the
				// generic message.
				log.Printf("[PARSING] model returned non-JSON reply (%d bytes): %.200s", len(raw), raw)
				return nil, &InvalidResponseFormatError{Raw: raw}
			}
			return json.RawMessage(raw), nil
		}

		if llm.IsAuthError(err) {
			log.Printf("[PARSING] credential %d failed authentication (attempt %d/%d), rotating: %v", pos, attempt, maxAttempts, err)
			p.ring.Invalidate(pos)
			continue
		}

		// Quota, server, and network failures are not retried here.
		log.Printf("[PARSING] extraction call failed (attempt %d/%d): %v", attempt, maxAttempts, err)
		return nil, &EndpointError{Message: llm.UserMessage(err), cause: err}
	}

	log.Printf("[PARSING] all %d credential attempts exhausted", maxAttempts)
	return nil, &AllCredentialsExhaustedError{Attempts: maxAttempts}
}

// generate opens a client for one credential and runs a single extraction call.
func (p *Parser) generate(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := p.factory(ctx, p.config, apiKey)
	if err != nil {
		return "", llm.ClassifyAPIError(fmt.Errorf("failed to create client: %w", err))
	}
	defer client.Close()

	return client.GenerateJSON(ctx, prompt, llm.TierStandard)
}

// buildExtractionPrompt embeds the truncated resume text into the fixed
// extraction template.
func buildExtractionPrompt(text string) string {
	if len(text) > maxPromptChars {
		cut := maxPromptChars
		// back off to a rune boundary so the cut never splits a character
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	template := prompts.MustGet("extraction.json", "extract-resume")
	return prompts.Format(template, map[string]string{"ResumeText": text})
}
