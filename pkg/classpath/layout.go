// Package classpath renders the Class-Path manifest attribute from a set of
// resolved dependency artifacts. Each entry is laid out by interpolating a
// layout template against the artifact's coordinate fields and a small table
// of derived properties.
package classpath

// LayoutType selects the naming scheme for classpath entries.
type LayoutType string

const (
	// LayoutTypeSimple renders the plain artifact file name.
	LayoutTypeSimple LayoutType = "simple"

	// LayoutTypeRepository renders a Maven-repository-style nested path.
	LayoutTypeRepository LayoutType = "repository"

	// LayoutTypeCustom renders a user-supplied template.
	LayoutTypeCustom LayoutType = "custom"
)

// Built-in layout templates. The unique variants reference the resolved
// version; the non-unique variants reference the base version so snapshots
// keep their generic -SNAPSHOT naming.
const (
	SimpleLayout = "${artifact.artifactId}-${artifact.version}${dashClassifier?}.${artifact.extension}"

	SimpleLayoutNonUnique = "${artifact.artifactId}-${artifact.baseVersion}${dashClassifier?}.${artifact.extension}"

	RepositoryLayout = "${artifact.groupIdPath}/${artifact.artifactId}/" +
		"${artifact.baseVersion}/${artifact.artifactId}-" +
		"${artifact.version}${dashClassifier?}.${artifact.extension}"

	RepositoryLayoutNonUnique = "${artifact.groupIdPath}/${artifact.artifactId}/" +
		"${artifact.baseVersion}/${artifact.artifactId}-" +
		"${artifact.baseVersion}${dashClassifier?}.${artifact.extension}"
)

// expressionPrefixes is the recognized prefix set for layout expressions.
var expressionPrefixes = []string{"artifact."}

// templateFor maps a built-in layout type and the unique-versions flag to its
// template string. Custom layouts are handled by the caller.
func templateFor(layout LayoutType, useUniqueVersions bool) (string, bool) {
	switch layout {
	case LayoutTypeSimple:
		if useUniqueVersions {
			return SimpleLayout, true
		}
		return SimpleLayoutNonUnique, true
	case LayoutTypeRepository:
		if useUniqueVersions {
			return RepositoryLayout, true
		}
		return RepositoryLayoutNonUnique, true
	default:
		return "", false
	}
}
