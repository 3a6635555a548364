package match

import (
	"errors"
	"fmt"
)

// ErrMissingVariable indicates a placeholder in the template has no value in
// the supplied variable map.
var ErrMissingVariable = errors.New("missing template variable")

// Substitute builds the concrete argument list for a template by replacing
// every placeholder with its value from vars. This is the inverse of the
// binding extraction performed by Match. Literal tokens pass through
// unchanged. Returns ErrMissingVariable if a referenced name is absent.
func (t Template) Substitute(vars map[string]string) ([]string, error) {
	argv := make([]string, 0, len(t.tokens))
	for _, tok := range t.tokens {
		switch tok.kind {
		case literalToken:
			argv = append(argv, tok.text)
		case standaloneToken:
			value, ok := vars[tok.name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingVariable, tok.name)
			}
			argv = append(argv, value)
		case embeddedToken:
			value, ok := vars[tok.name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingVariable, tok.name)
			}
			argv = append(argv, tok.prefix+value+tok.suffix)
		}
	}
	return argv, nil
}
