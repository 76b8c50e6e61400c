package descriptor

import (
	"errors"
	"fmt"
)

// ErrMissingCoordinates is returned when the descriptor project block lacks
// groupId, artifactId or version.
var ErrMissingCoordinates = errors.New("descriptor is missing project coordinates")

// ErrMissingDependencyPath is returned when a dependency record has no file
// path.
var ErrMissingDependencyPath = errors.New("dependency record is missing a file path")

// ErrUnknownLayout is returned for a classpathLayoutType outside simple,
// repository and custom.
var ErrUnknownLayout = errors.New("unknown classpathLayoutType")

// Validate checks the descriptor for the problems that would otherwise
// surface halfway through assembly.
func (d *Descriptor) Validate() error {
	if d.Project.GroupID == "" || d.Project.ArtifactID == "" || d.Project.Version == "" {
		return fmt.Errorf("%w: groupId, artifactId and version are required", ErrMissingCoordinates)
	}

	switch d.Archive.Manifest.ClasspathLayoutType {
	case "", "simple", "repository", "custom":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, d.Archive.Manifest.ClasspathLayoutType)
	}

	for _, dep := range d.Dependencies {
		if dep.Path == "" {
			return fmt.Errorf("%w: %s:%s", ErrMissingDependencyPath, dep.GroupID, dep.ArtifactID)
		}
	}
	return nil
}
