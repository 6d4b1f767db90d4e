package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the config governing a request path and method.
// Exact path matches win; configs whose path ends in "/" match as prefixes,
// covering parameterized routes. Returns nil when nothing matches, in which
// case the caller applies the global default.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes must never be throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
