// Package match implements the template grammar and matching algorithm used
// to resolve live command invocations against recorded scenario templates.
package match

import "regexp"

// placeholderPattern recognizes a "{name}" placeholder inside a token.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

type tokenKind int

const (
	// literalToken matches only an identical live token.
	literalToken tokenKind = iota
	// standaloneToken is a token whose entire text is "{name}"; it matches
	// any single live token and binds the name.
	standaloneToken
	// embeddedToken contains "{name}" with a literal prefix and/or suffix,
	// e.g. "--grep={term}".
	embeddedToken
)

// token is one template token, classified once at parse time.
type token struct {
	kind   tokenKind
	text   string // literal text (literalToken only)
	name   string // placeholder name (standalone and embedded)
	prefix string // literal prefix (embeddedToken only)
	suffix string // literal suffix (embeddedToken only)
}

// Template is a parsed token pattern describing one mockable invocation
// shape. Parse once with ParseTemplate; a Template is immutable afterwards.
type Template struct {
	tokens []token
	raw    []string
}

// ParseTemplate classifies each stored token as literal, standalone
// placeholder, or embedded placeholder.
func ParseTemplate(tokens []string) Template {
	parsed := make([]token, 0, len(tokens))
	for _, raw := range tokens {
		parsed = append(parsed, parseToken(raw))
	}

	rawCopy := make([]string, len(tokens))
	copy(rawCopy, tokens)

	return Template{tokens: parsed, raw: rawCopy}
}

func parseToken(raw string) token {
	loc := placeholderPattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return token{kind: literalToken, text: raw}
	}

	name := raw[loc[2]:loc[3]]
	if loc[0] == 0 && loc[1] == len(raw) {
		return token{kind: standaloneToken, name: name}
	}

	return token{
		kind:   embeddedToken,
		name:   name,
		prefix: raw[:loc[0]],
		suffix: raw[loc[1]:],
	}
}

// Tokens returns the raw stored token list the template was parsed from.
func (t Template) Tokens() []string {
	out := make([]string, len(t.raw))
	copy(out, t.raw)
	return out
}

// Len returns the number of tokens in the template.
func (t Template) Len() int {
	return len(t.tokens)
}

// Vars returns the placeholder names referenced by the template, in token
// order. Duplicate names appear once, at their first position.
func (t Template) Vars() []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range t.tokens {
		if tok.kind == literalToken || seen[tok.name] {
			continue
		}
		seen[tok.name] = true
		names = append(names, tok.name)
	}
	return names
}
