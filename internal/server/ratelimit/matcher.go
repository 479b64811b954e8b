package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for probes that must never be throttled
var unlimited = EndpointConfig{}

// MatchEndpoint returns the endpoint configuration for a request, or nil when the
// global limit applies. An exact path wins over a prefix; among prefixes (paths
// ending in "/") the longest one wins. Methods must always match.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && path == "/health" {
		ep := unlimited
		return &ep
	}

	var best *EndpointConfig
	for i := range configs {
		ep := &configs[i]
		if ep.Method != method {
			continue
		}
		if ep.Path == path {
			return ep
		}
		if isPrefix(ep.Path) && strings.HasPrefix(path, ep.Path) && (best == nil || len(ep.Path) > len(best.Path)) {
			best = ep
		}
	}
	return best
}

func isPrefix(p string) bool { return strings.HasSuffix(p, "/") }
