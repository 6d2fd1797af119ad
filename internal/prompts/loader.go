// Package prompts loads the embedded LLM prompt templates. Templates live
// in JSON files keyed by prompt name, so prompt tuning never touches Go
// source and the binary carries no runtime file dependency.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	mu    sync.Mutex
	files = make(map[string]map[string]string)
)

// Get returns the prompt stored under key in the named embedded file.
func Get(filename, key string) (string, error) {
	prompts, err := load(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the service cannot run without.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data. Prompt
// templates only need plain substitution, so this stays simpler than
// text/template.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

// List returns the prompt keys available in the named file.
func List(filename string) ([]string, error) {
	prompts, err := load(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}

// ClearCache drops parsed files so tests can exercise fresh loads.
func ClearCache() {
	mu.Lock()
	defer mu.Unlock()
	files = make(map[string]map[string]string)
}

// load parses an embedded prompt file once and caches the result.
func load(filename string) (map[string]string, error) {
	mu.Lock()
	defer mu.Unlock()

	if prompts, ok := files[filename]; ok {
		return prompts, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}
	files[filename] = prompts
	return prompts, nil
}
