package classpath

import (
	"testing"

	"github.com/provide-io/jarpack/go/jarpack/pkg/artifact"
)

func TestDerivedSource_GroupIDPath(t *testing.T) {
	tests := []struct {
		groupID  string
		expected string
	}{
		{groupID: "org.apache.dummy", expected: "org/apache/dummy"},
		{groupID: "org.apache.dummy.bar", expected: "org/apache/dummy/bar"},
		{groupID: "nodots", expected: "nodots"},
	}

	for _, tt := range tests {
		t.Run(tt.groupID, func(t *testing.T) {
			src := newDerivedSource(&artifact.Artifact{GroupID: tt.groupID})
			got, ok := src.Lookup("groupIdPath")
			if !ok {
				t.Fatal("groupIdPath missing")
			}
			if got != tt.expected {
				t.Errorf("groupIdPath = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDerivedSource_DashClassifier(t *testing.T) {
	t.Run("with classifier", func(t *testing.T) {
		src := newDerivedSource(&artifact.Artifact{Classifier: "sources"})
		for _, key := range []string{"dashClassifier", "dashClassifier?"} {
			got, ok := src.Lookup(key)
			if !ok {
				t.Fatalf("%s missing", key)
			}
			if got != "-sources" {
				t.Errorf("%s = %q, want %q", key, got, "-sources")
			}
		}
	})

	t.Run("without classifier", func(t *testing.T) {
		src := newDerivedSource(&artifact.Artifact{})
		for _, key := range []string{"dashClassifier", "dashClassifier?"} {
			got, ok := src.Lookup(key)
			if !ok {
				t.Fatalf("%s must be present (empty), not missing", key)
			}
			if got != "" {
				t.Errorf("%s = %q, want empty", key, got)
			}
		}
	})
}

func TestDerivedSource_BaseVersion(t *testing.T) {
	t.Run("release exposes baseVersion equal to version", func(t *testing.T) {
		src := newDerivedSource(&artifact.Artifact{Version: "1.0"})
		got, ok := src.Lookup("baseVersion")
		if !ok {
			t.Fatal("baseVersion missing for release artifact")
		}
		if got != "1.0" {
			t.Errorf("baseVersion = %q, want %q", got, "1.0")
		}
	})

	t.Run("snapshot omits the key so coordinate lookup wins", func(t *testing.T) {
		src := newDerivedSource(&artifact.Artifact{
			Version:     "1.1-20081022.112233-1",
			BaseVersion: "1.1-SNAPSHOT",
			Snapshot:    true,
		})
		if _, ok := src.Lookup("baseVersion"); ok {
			t.Fatal("snapshot derived table must not define baseVersion")
		}
	})
}

func TestCoordinateSource_EmptyFieldsAreMissing(t *testing.T) {
	src := coordinateSource{a: &artifact.Artifact{
		GroupID:    "org.apache.dummy",
		ArtifactID: "dummy1",
		Version:    "1.0",
	}}

	if _, ok := src.Lookup("classifier"); ok {
		t.Error("empty classifier should be reported missing")
	}
	if _, ok := src.Lookup("baseVersion"); ok {
		t.Error("empty baseVersion should be reported missing")
	}
	if v, ok := src.Lookup("groupId"); !ok || v != "org.apache.dummy" {
		t.Errorf("groupId = %q, %v", v, ok)
	}
	if _, ok := src.Lookup("somethingElse"); ok {
		t.Error("unknown fields should be reported missing")
	}
}

func TestHandlerSource(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		field    string
		expected string
	}{
		{name: "test-jar maps to jar", typ: "test-jar", field: "extension", expected: "jar"},
		{name: "war keeps war", typ: "war", field: "extension", expected: "war"},
		{name: "empty type defaults to jar", typ: "", field: "extension", expected: "jar"},
		{name: "unknown type passes through", typ: "nar", field: "extension", expected: "nar"},
		{name: "type field", typ: "test-jar", field: "type", expected: "test-jar"},
		{name: "packaging field", typ: "war", field: "packaging", expected: "war"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := handlerSource{a: &artifact.Artifact{Type: tt.typ}}
			got, ok := src.Lookup(tt.field)
			if !ok {
				t.Fatalf("%s missing", tt.field)
			}
			if got != tt.expected {
				t.Errorf("Lookup(%q) = %q, want %q", tt.field, got, tt.expected)
			}
		})
	}
}

// A descriptor that carries only a dependency type still renders an entry,
// with the extension supplied by the handler table.
func TestEntry_ExtensionFromHandler(t *testing.T) {
	a := &artifact.Artifact{
		GroupID:    "org.apache.dummy",
		ArtifactID: "dummy1",
		Version:    "1.0",
		Type:       "test-jar",
	}
	got, err := Entry(a, Config{LayoutType: LayoutTypeSimple, UseUniqueVersions: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "dummy1-1.0.jar" {
		t.Errorf("Entry() = %q, want %q", got, "dummy1-1.0.jar")
	}
}
