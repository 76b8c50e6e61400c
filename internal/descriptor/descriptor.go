// Package descriptor loads the YAML build descriptor that drives manifest
// assembly: project coordinates, build settings, plugin configuration, the
// archive section, and the resolved dependency set.
package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/provide-io/jarpack/go/jarpack/pkg/artifact"
	"github.com/provide-io/jarpack/go/jarpack/pkg/manifest"
)

// Project holds the project coordinates and descriptive metadata.
type Project struct {
	GroupID      string `yaml:"groupId"`
	ArtifactID   string `yaml:"artifactId"`
	Version      string `yaml:"version"`
	Packaging    string `yaml:"packaging"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Organization string `yaml:"organization"`
}

// Build holds build-level settings.
type Build struct {
	Directory       string `yaml:"directory"`
	OutputTimestamp string `yaml:"outputTimestamp"`
}

// ManifestConfig mirrors the archive manifest configuration. Fields whose
// default is true are pointers so an absent key and an explicit false can be
// told apart.
type ManifestConfig struct {
	MainClass                       string `yaml:"mainClass"`
	PackageName                     string `yaml:"packageName"`
	AddClasspath                    bool   `yaml:"addClasspath"`
	AddExtensions                   bool   `yaml:"addExtensions"`
	ClasspathPrefix                 string `yaml:"classpathPrefix"`
	AddDefaultEntries               *bool  `yaml:"addDefaultEntries"`
	AddBuildEnvironmentEntries      bool   `yaml:"addBuildEnvironmentEntries"`
	AddDefaultSpecificationEntries  bool   `yaml:"addDefaultSpecificationEntries"`
	AddDefaultImplementationEntries bool   `yaml:"addDefaultImplementationEntries"`
	ClasspathLayoutType             string `yaml:"classpathLayoutType"`
	CustomClasspathLayout           string `yaml:"customClasspathLayout"`
	UseUniqueVersions               *bool  `yaml:"useUniqueVersions"`
}

// Section is a named manifest section in the archive configuration.
type Section struct {
	Name    string            `yaml:"name"`
	Entries map[string]string `yaml:"entries"`
}

// Archive is the archive configuration block.
type Archive struct {
	Manifest           ManifestConfig    `yaml:"manifest"`
	ManifestEntries    map[string]string `yaml:"manifestEntries"`
	ManifestSections   []Section         `yaml:"manifestSections"`
	AddMavenDescriptor *bool             `yaml:"addMavenDescriptor"`
	Forced             bool              `yaml:"forced"`
	PomPropertiesFile  string            `yaml:"pomPropertiesFile"`
}

// Dependency is one resolved dependency record.
type Dependency struct {
	GroupID     string `yaml:"groupId"`
	ArtifactID  string `yaml:"artifactId"`
	Version     string `yaml:"version"`
	BaseVersion string `yaml:"baseVersion"`
	Classifier  string `yaml:"classifier"`
	Type        string `yaml:"type"`
	Scope       string `yaml:"scope"`
	Path        string `yaml:"path"`
	Snapshot    bool   `yaml:"snapshot"`
}

// Descriptor is the parsed build descriptor.
type Descriptor struct {
	Project      Project                      `yaml:"project"`
	Build        Build                        `yaml:"build"`
	Plugins      map[string]map[string]string `yaml:"plugins"`
	Properties   map[string]string            `yaml:"properties"`
	Archive      Archive                      `yaml:"archive"`
	Dependencies []Dependency                 `yaml:"dependencies"`
}

// Load reads and parses the descriptor at path and validates it.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ManifestProject converts the descriptor project block for the manifest
// builder, including the discovered Java release.
func (d *Descriptor) ManifestProject() manifest.Project {
	return manifest.Project{
		GroupID:      d.Project.GroupID,
		ArtifactID:   d.Project.ArtifactID,
		Version:      d.Project.Version,
		Name:         d.Project.Name,
		Description:  d.Project.Description,
		Organization: d.Project.Organization,
		JavaRelease:  d.JavaRelease(),
	}
}

// ArchiveConfig converts the archive block, applying the default-true knobs.
func (d *Descriptor) ArchiveConfig() manifest.ArchiveConfig {
	mc := d.Archive.Manifest
	cfg := manifest.DefaultConfig()
	cfg.MainClass = mc.MainClass
	cfg.PackageName = mc.PackageName
	cfg.AddClasspath = mc.AddClasspath
	cfg.AddExtensions = mc.AddExtensions
	cfg.ClasspathPrefix = mc.ClasspathPrefix
	cfg.AddDefaultEntries = boolOr(mc.AddDefaultEntries, true)
	cfg.AddBuildEnvironmentEntries = mc.AddBuildEnvironmentEntries
	cfg.AddDefaultSpecificationEntries = mc.AddDefaultSpecificationEntries
	cfg.AddDefaultImplementationEntries = mc.AddDefaultImplementationEntries
	if mc.ClasspathLayoutType != "" {
		cfg.ClasspathLayoutType = mc.ClasspathLayoutType
	}
	cfg.CustomClasspathLayout = mc.CustomClasspathLayout
	cfg.UseUniqueVersions = boolOr(mc.UseUniqueVersions, true)

	sections := make([]manifest.SectionConfig, 0, len(d.Archive.ManifestSections))
	for _, s := range d.Archive.ManifestSections {
		sections = append(sections, manifest.SectionConfig{Name: s.Name, Entries: s.Entries})
	}

	return manifest.ArchiveConfig{
		Manifest:           cfg,
		ManifestEntries:    d.Archive.ManifestEntries,
		ManifestSections:   sections,
		AddMavenDescriptor: boolOr(d.Archive.AddMavenDescriptor, true),
		Forced:             d.Archive.Forced,
		PomPropertiesFile:  d.Archive.PomPropertiesFile,
	}
}

// Artifacts converts the dependency records. Only compile and runtime scoped
// dependencies participate; an empty scope counts as compile.
func (d *Descriptor) Artifacts() []*artifact.Artifact {
	out := make([]*artifact.Artifact, 0, len(d.Dependencies))
	for _, dep := range d.Dependencies {
		if dep.Scope != "" && dep.Scope != "compile" && dep.Scope != "runtime" {
			continue
		}
		out = append(out, &artifact.Artifact{
			GroupID:     dep.GroupID,
			ArtifactID:  dep.ArtifactID,
			Version:     dep.Version,
			BaseVersion: dep.BaseVersion,
			Classifier:  dep.Classifier,
			Type:        dep.Type,
			Path:        dep.Path,
			Snapshot:    dep.Snapshot,
		})
	}
	return out
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
