package classpath

import (
	"strings"

	"github.com/provide-io/jarpack/go/jarpack/pkg/artifact"
	"github.com/provide-io/jarpack/go/jarpack/pkg/utils/interpolate"
)

// handlerExtensions maps dependency types to their artifact file extension,
// mirroring the stock artifact handler set of the build tool. Types not listed
// use the type string itself as the extension.
var handlerExtensions = map[string]string{
	"jar":          "jar",
	"test-jar":     "jar",
	"maven-plugin": "jar",
	"ejb":          "jar",
	"ejb-client":   "jar",
	"javadoc":      "jar",
	"java-source":  "jar",
	"war":          "war",
	"ear":          "ear",
	"rar":          "rar",
	"pom":          "pom",
}

// coordinateSource exposes the artifact's own coordinate fields. Empty fields
// are reported as missing so that later sources in the chain can supply them.
type coordinateSource struct {
	a *artifact.Artifact
}

func (s coordinateSource) Name() string { return "coordinates" }

func (s coordinateSource) Lookup(field string) (string, bool) {
	var v string
	switch field {
	case "groupId":
		v = s.a.GroupID
	case "artifactId":
		v = s.a.ArtifactID
	case "version":
		v = s.a.Version
	case "baseVersion":
		v = s.a.BaseVersion
	case "classifier":
		v = s.a.Classifier
	case "extension":
		v = s.a.Extension
	case "type":
		v = s.a.Type
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// handlerSource exposes metadata of the artifact's type handler, so templates
// can reference ${artifact.extension} even when the descriptor only carried a
// dependency type.
type handlerSource struct {
	a *artifact.Artifact
}

func (s handlerSource) Name() string { return "handler" }

func (s handlerSource) Lookup(field string) (string, bool) {
	typ := s.a.Type
	if typ == "" {
		typ = "jar"
	}
	switch field {
	case "extension":
		if ext, ok := handlerExtensions[typ]; ok {
			return ext, true
		}
		return typ, true
	case "packaging", "type":
		return typ, true
	}
	return "", false
}

// derivedSource is the per-artifact table of synthetic fields:
//
//   - groupIdPath: group id with dots replaced by slashes
//   - dashClassifier, dashClassifier?: "-<classifier>" or empty
//   - baseVersion: only for non-snapshots, equal to the resolved version;
//     for snapshots the key is absent so lookups fall through to the
//     coordinate source's own baseVersion
type derivedSource struct {
	values map[string]string
}

func newDerivedSource(a *artifact.Artifact) derivedSource {
	values := map[string]string{
		"groupIdPath": strings.ReplaceAll(a.GroupID, ".", "/"),
	}
	if a.Classifier != "" {
		values["dashClassifier"] = "-" + a.Classifier
		values["dashClassifier?"] = "-" + a.Classifier
	} else {
		values["dashClassifier"] = ""
		values["dashClassifier?"] = ""
	}
	if !a.Snapshot {
		values["baseVersion"] = a.Version
	}
	return derivedSource{values: values}
}

func (s derivedSource) Name() string { return "derived" }

func (s derivedSource) Lookup(field string) (string, bool) {
	v, ok := s.values[field]
	return v, ok
}

// newInterpolator builds the per-artifact value-source chain. The chain is
// ordered: coordinate fields first, handler metadata second, derived
// properties last. Chains never outlive a single entry.
func newInterpolator(a *artifact.Artifact) *interpolate.Interpolator {
	return interpolate.New(expressionPrefixes,
		coordinateSource{a: a},
		handlerSource{a: a},
		newDerivedSource(a),
	)
}
