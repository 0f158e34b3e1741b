package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the configuration governing a request, or nil when none applies.
// An exact path and method match wins. Otherwise the longest configured prefix ending in
// "/" is used, so "/analyze/" covers "/analyze/stream".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "HEAD" {
		method = "GET"
	}

	var best *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			if best == nil || len(ec.Path) > len(best.Path) {
				best = ec
			}
		}
	}
	return best
}
