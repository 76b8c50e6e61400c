package pkg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/provide-io/jarpack/go/jarpack/internal/descriptor"
	"github.com/provide-io/jarpack/go/jarpack/pkg/manifest"
	"github.com/provide-io/jarpack/go/jarpack/pkg/pomprops"
)

// AssembleManifest loads the build descriptor at descriptorPath and returns
// the assembled manifest.
func AssembleManifest(descriptorPath string) (*manifest.Manifest, error) {
	d, err := descriptor.Load(descriptorPath)
	if err != nil {
		return nil, err
	}
	cfg := d.ArchiveConfig()
	return manifest.NewBuilder().Build(
		d.ManifestProject(), cfg.Manifest, cfg.ManifestEntries, cfg.ManifestSections, d.Artifacts())
}

// WriteManifest assembles the manifest for descriptorPath and writes it to
// outputPath, creating parent directories as needed.
func WriteManifest(descriptorPath, outputPath string) error {
	m, err := AssembleManifest(descriptorPath)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating manifest file: %w", err)
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing manifest: %w", err)
	}
	return f.Close()
}

// WriteProjectProperties writes the reproducible pom.properties metadata for
// descriptorPath to outputPath. It is a no-op when the descriptor disables
// the maven descriptor.
func WriteProjectProperties(descriptorPath, outputPath string) error {
	d, err := descriptor.Load(descriptorPath)
	if err != nil {
		return err
	}
	cfg := d.ArchiveConfig()
	if !cfg.AddMavenDescriptor {
		return nil
	}
	return pomprops.Create(
		d.Project.GroupID, d.Project.ArtifactID, d.Project.Version,
		cfg.PomPropertiesFile, outputPath, cfg.Forced)
}
