// Package interpolate resolves ${...} placeholder expressions against an
// ordered chain of named value sources.
//
// An expression is either "prefix.field" where prefix belongs to the
// interpolator's recognized prefix set, or a bare "field". The prefix is
// stripped and the remaining field is looked up in each source in order; the
// first source that yields a value wins. A trailing "?" marks an expression
// as optional: if no source knows the field (with or without the "?"), the
// placeholder resolves to the empty string instead of failing.
//
// Placeholders whose dotted prefix is not recognized pass through verbatim,
// so templates may carry expressions addressed to a later processing stage.
package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedExpression is returned when a recognized expression has no
	// value in any source and is not marked optional.
	ErrUnresolvedExpression = errors.New("unresolved expression")

	// ErrCyclicExpression is returned when expanding an expression requires
	// expanding that same expression again.
	ErrCyclicExpression = errors.New("cyclic expression")
)

// ValueSource is a named, read-only field lookup. Implementations must be
// deterministic: repeated lookups of the same field yield the same result.
type ValueSource interface {
	// Name identifies the source in error messages and logs.
	Name() string

	// Lookup returns the value for field and whether the source knows it.
	// A source may return ("", true) for a field it knows to be empty.
	Lookup(field string) (string, bool)
}

// Interpolator binds a recognized prefix set to an ordered source chain.
// Build one per subject being interpolated and discard it afterwards; an
// Interpolator holds no state between calls.
type Interpolator struct {
	prefixes []string
	sources  []ValueSource
}

// New creates an Interpolator over the given prefixes and sources. Sources
// are queried in the order given.
func New(prefixes []string, sources ...ValueSource) *Interpolator {
	return &Interpolator{prefixes: prefixes, sources: sources}
}

// Interpolate substitutes every resolvable ${...} placeholder in template.
// It is a pure function of the template and the sources' state.
func (ip *Interpolator) Interpolate(template string) (string, error) {
	return ip.expand(template, make(map[string]bool))
}

// expand walks the template left to right. active tracks the expressions
// currently being expanded so that a value which itself contains a
// placeholder cannot re-enter its own expansion.
func (ip *Interpolator) expand(template string, active map[string]bool) (string, error) {
	var out strings.Builder

	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:start])
		rest = rest[start:]

		end := strings.Index(rest, "}")
		if end < 0 {
			// Unterminated placeholder: emit verbatim.
			out.WriteString(rest)
			break
		}
		expr := rest[2:end]
		rest = rest[end+1:]

		resolved, ok, err := ip.resolve(expr, active)
		if err != nil {
			return "", err
		}
		if !ok {
			// Unrecognized prefix: keep the placeholder as written.
			out.WriteString("${")
			out.WriteString(expr)
			out.WriteString("}")
			continue
		}
		out.WriteString(resolved)
	}

	return out.String(), nil
}

// resolve evaluates a single expression. The second return value reports
// whether the expression was recognized at all; unrecognized expressions are
// left to the caller to emit verbatim.
func (ip *Interpolator) resolve(expr string, active map[string]bool) (string, bool, error) {
	field, recognized := ip.stripPrefix(expr)
	if !recognized {
		return "", false, nil
	}
	if active[expr] {
		return "", false, fmt.Errorf("%w: ${%s}", ErrCyclicExpression, expr)
	}

	value, found := ip.lookup(field)
	if !found && strings.HasSuffix(field, "?") {
		// Optional spelling: retry without the marker, then give up quietly.
		value, found = ip.lookup(strings.TrimSuffix(field, "?"))
		if !found {
			return "", true, nil
		}
	}
	if !found {
		return "", false, fmt.Errorf("%w: ${%s}", ErrUnresolvedExpression, expr)
	}

	// Values may themselves contain placeholders; re-expand with this
	// expression marked active so cycles fail fast instead of recursing.
	if strings.Contains(value, "${") {
		active[expr] = true
		expanded, err := ip.expand(value, active)
		delete(active, expr)
		if err != nil {
			return "", false, err
		}
		return expanded, true, nil
	}

	return value, true, nil
}

// lookup queries the source chain in order; first hit wins.
func (ip *Interpolator) lookup(field string) (string, bool) {
	for _, src := range ip.sources {
		if v, ok := src.Lookup(field); ok {
			return v, true
		}
	}
	return "", false
}

// stripPrefix removes the first matching recognized prefix from expr. A bare
// expression (no dot) is recognized as-is; a dotted expression with an
// unknown prefix is not recognized.
func (ip *Interpolator) stripPrefix(expr string) (string, bool) {
	for _, p := range ip.prefixes {
		if strings.HasPrefix(expr, p) {
			return expr[len(p):], true
		}
	}
	if strings.Contains(expr, ".") {
		return "", false
	}
	return expr, true
}
