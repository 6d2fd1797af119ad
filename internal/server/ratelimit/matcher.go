package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint resolves a request to its route budget. Exact path and
// method entries win over prefix entries; a Path ending in "/" matches any
// request under it, which is how the per-candidate routes share one budget.
// Health probes are never throttled. A nil return means the caller's default
// budget applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
