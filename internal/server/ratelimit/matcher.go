package ratelimit

import "strings"

// MatchRule returns the rule for a request, or nil when none applies.
// Exact paths win over prefix rules (paths ending in "/").
func MatchRule(path, method string, rules []EndpointRule) *EndpointRule {
	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}
