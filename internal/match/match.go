package match

import "strings"

// Bindings maps placeholder names to the live values they captured during a
// match. When a template repeats a placeholder name, the last occurrence
// wins; no cross-occurrence consistency is enforced.
type Bindings map[string]string

// StripDynamicFlags removes every occurrence of a dynamic flag from the live
// token list together with the single token immediately following it (the
// flag's value). Flags are removed independent of position, one pass, and
// the order of the remaining tokens is preserved.
func StripDynamicFlags(live []string, dynamicFlags []string) []string {
	if len(dynamicFlags) == 0 {
		return live
	}

	flagSet := make(map[string]bool, len(dynamicFlags))
	for _, flag := range dynamicFlags {
		flagSet[flag] = true
	}

	filtered := make([]string, 0, len(live))
	for i := 0; i < len(live); i++ {
		if flagSet[live[i]] {
			i++ // consume the flag's value token as well
			continue
		}
		filtered = append(filtered, live[i])
	}
	return filtered
}

// Match reports whether the live token list matches the template after
// dynamic-flag stripping, and returns the placeholder bindings captured
// along the way. An empty template matches only an empty filtered live list.
func (t Template) Match(live []string, dynamicFlags []string) (Bindings, bool) {
	filtered := StripDynamicFlags(live, dynamicFlags)
	if len(filtered) != len(t.tokens) {
		return nil, false
	}

	bindings := make(Bindings)
	for i, tok := range t.tokens {
		value := filtered[i]
		switch tok.kind {
		case literalToken:
			if value != tok.text {
				return nil, false
			}
		case standaloneToken:
			bindings[tok.name] = value
		case embeddedToken:
			if len(value) < len(tok.prefix)+len(tok.suffix) {
				return nil, false
			}
			if !strings.HasPrefix(value, tok.prefix) || !strings.HasSuffix(value, tok.suffix) {
				return nil, false
			}
			bindings[tok.name] = value[len(tok.prefix) : len(value)-len(tok.suffix)]
		}
	}

	return bindings, true
}

// Matches is a convenience wrapper around Match for callers that only need
// the boolean outcome.
func (t Template) Matches(live []string, dynamicFlags []string) bool {
	_, ok := t.Match(live, dynamicFlags)
	return ok
}
