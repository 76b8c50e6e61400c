package interpolate

import (
	"errors"
	"strings"
	"testing"
)

// mapSource is a simple test source backed by a map. present entries with
// empty values are reported as found.
type mapSource struct {
	name   string
	values map[string]string
}

func (s mapSource) Name() string { return s.name }

func (s mapSource) Lookup(field string) (string, bool) {
	v, ok := s.values[field]
	return v, ok
}

func TestInterpolate_Basic(t *testing.T) {
	src := mapSource{name: "test", values: map[string]string{
		"artifactId": "dummy1",
		"version":    "1.0",
		"extension":  "jar",
		"empty":      "",
	}}
	ip := New([]string{"artifact."}, src)

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "no placeholders",
			template: "plain text",
			expected: "plain text",
		},
		{
			name:     "single placeholder",
			template: "${artifact.artifactId}",
			expected: "dummy1",
		},
		{
			name:     "several placeholders",
			template: "${artifact.artifactId}-${artifact.version}.${artifact.extension}",
			expected: "dummy1-1.0.jar",
		},
		{
			name:     "bare expression without prefix",
			template: "${artifactId}",
			expected: "dummy1",
		},
		{
			name:     "empty value is found",
			template: "a${artifact.empty}b",
			expected: "ab",
		},
		{
			name:     "text around placeholders",
			template: "lib/${artifact.artifactId}/file",
			expected: "lib/dummy1/file",
		},
		{
			name:     "unterminated placeholder passes through",
			template: "${artifact.artifactId",
			expected: "${artifact.artifactId",
		},
		{
			name:     "unrecognized prefix passes through",
			template: "${project.version}-${artifact.version}",
			expected: "${project.version}-1.0",
		},
		{
			name:     "empty template",
			template: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ip.Interpolate(tt.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.template, result, tt.expected)
			}
		})
	}
}

func TestInterpolate_OptionalMarker(t *testing.T) {
	src := mapSource{name: "test", values: map[string]string{
		"dashClassifier":  "-sources",
		"dashClassifier?": "-sources",
	}}
	srcNoClassifier := mapSource{name: "test", values: map[string]string{}}

	tests := []struct {
		name     string
		source   ValueSource
		template string
		expected string
	}{
		{
			name:     "optional spelling hits literal key",
			source:   src,
			template: "x${dashClassifier?}.jar",
			expected: "x-sources.jar",
		},
		{
			name:     "plain spelling",
			source:   src,
			template: "x${dashClassifier}.jar",
			expected: "x-sources.jar",
		},
		{
			name:     "optional missing resolves empty",
			source:   srcNoClassifier,
			template: "x${dashClassifier?}.jar",
			expected: "x.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := New([]string{"artifact."}, tt.source)
			result, err := ip.Interpolate(tt.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Interpolate(%q) = %q, want %q", tt.template, result, tt.expected)
			}
		})
	}
}

func TestInterpolate_SourceOrder(t *testing.T) {
	first := mapSource{name: "first", values: map[string]string{"version": "1.0"}}
	second := mapSource{name: "second", values: map[string]string{
		"version":     "2.0",
		"baseVersion": "1.1-SNAPSHOT",
	}}
	ip := New([]string{"artifact."}, first, second)

	got, err := ip.Interpolate("${artifact.version}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.0" {
		t.Errorf("first source should win: got %q, want %q", got, "1.0")
	}

	// Fields missing from the first source fall through to the second.
	got, err = ip.Interpolate("${artifact.baseVersion}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.1-SNAPSHOT" {
		t.Errorf("fallthrough failed: got %q, want %q", got, "1.1-SNAPSHOT")
	}
}

func TestInterpolate_NestedValues(t *testing.T) {
	src := mapSource{name: "test", values: map[string]string{
		"path":       "${artifact.group}/${artifact.name}",
		"group":      "org/apache/dummy",
		"name":       "dummy1",
		"self":       "${artifact.self}",
		"pingOuter":  "${artifact.pongOuter}",
		"pongOuter":  "${artifact.pingOuter}",
		"harmless":   "no placeholder here",
		"toHarmless": "${artifact.harmless}",
	}}
	ip := New([]string{"artifact."}, src)

	t.Run("values are re-expanded", func(t *testing.T) {
		got, err := ip.Interpolate("${artifact.path}")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "org/apache/dummy/dummy1" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("one level of indirection", func(t *testing.T) {
		got, err := ip.Interpolate("${artifact.toHarmless}")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "no placeholder here" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("self reference fails", func(t *testing.T) {
		_, err := ip.Interpolate("${artifact.self}")
		if !errors.Is(err, ErrCyclicExpression) {
			t.Fatalf("expected ErrCyclicExpression, got %v", err)
		}
	})

	t.Run("mutual cycle fails", func(t *testing.T) {
		_, err := ip.Interpolate("${artifact.pingOuter}")
		if !errors.Is(err, ErrCyclicExpression) {
			t.Fatalf("expected ErrCyclicExpression, got %v", err)
		}
	})
}

func TestInterpolate_Unresolved(t *testing.T) {
	src := mapSource{name: "test", values: map[string]string{"artifactId": "dummy1"}}
	ip := New([]string{"artifact."}, src)

	_, err := ip.Interpolate("${artifact.nope}")
	if !errors.Is(err, ErrUnresolvedExpression) {
		t.Fatalf("expected ErrUnresolvedExpression, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "${artifact.nope}") {
		t.Errorf("error should carry the expression text: %v", err)
	}
}

func TestInterpolate_Deterministic(t *testing.T) {
	src := mapSource{name: "test", values: map[string]string{
		"artifactId": "dummy1",
		"version":    "1.0",
		"extension":  "jar",
	}}
	ip := New([]string{"artifact."}, src)

	const template = "${artifact.artifactId}-${artifact.version}.${artifact.extension}"
	first, err := ip.Interpolate(template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ip.Interpolate(template)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("iteration %d produced %q, first run produced %q", i, again, first)
		}
	}
}
