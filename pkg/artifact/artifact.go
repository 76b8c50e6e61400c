// Package artifact defines the resolved dependency coordinate consumed by the
// classpath and manifest builders. Coordinates are produced by the build
// tool's dependency resolution and are read-only here.
package artifact

import "fmt"

// Artifact is a single resolved dependency coordinate.
//
// Version carries the resolved form: for snapshots that were fetched from a
// remote repository this is the timestamp-qualified version
// (e.g. 1.1-20081022.112233-1), while BaseVersion keeps the generic form
// (e.g. 1.1-SNAPSHOT). For releases BaseVersion is usually empty.
type Artifact struct {
	GroupID    string
	ArtifactID string

	// Version is the resolved, unique version string.
	Version string

	// BaseVersion is the version without the snapshot timestamp qualifier.
	// Empty when the artifact is not a snapshot.
	BaseVersion string

	// Classifier distinguishes artifacts of the same coordinate and type
	// ("sources", "tests", ...). Optional.
	Classifier string

	// Type is the dependency type from the build descriptor ("jar",
	// "test-jar", "war", ...). Defaults to "jar" when empty.
	Type string

	// Extension is the file extension of the artifact. When empty it is
	// derived from Type via the handler table in the classpath package.
	Extension string

	// Path is the resolved file on disk.
	Path string

	// Snapshot marks timestamped or -SNAPSHOT versions.
	Snapshot bool
}

// HasCoordinates reports whether the artifact carries enough metadata to lay
// out a classpath entry. Artifacts without coordinates fall back to their
// bare file name.
func (a *Artifact) HasCoordinates() bool {
	return a != nil && a.GroupID != "" && a.ArtifactID != ""
}

// String renders the coordinate in groupId:artifactId:version form, with the
// classifier when present. Used for error context.
func (a *Artifact) String() string {
	if a == nil {
		return "<nil artifact>"
	}
	if a.Classifier != "" {
		return fmt.Sprintf("%s:%s:%s:%s", a.GroupID, a.ArtifactID, a.Version, a.Classifier)
	}
	return fmt.Sprintf("%s:%s:%s", a.GroupID, a.ArtifactID, a.Version)
}
