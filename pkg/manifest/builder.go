package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/jarpack/go/jarpack/pkg/artifact"
	"github.com/provide-io/jarpack/go/jarpack/pkg/classpath"
)

// ErrInvalidModuleName is returned when a configured Automatic-Module-Name is
// not a valid dotted Java identifier.
var ErrInvalidModuleName = errors.New("invalid automatic module name")

const defaultCreatedBy = "jarpack"

// specVersionPattern extracts the major.minor prefix used for
// Specification-Version.
var specVersionPattern = regexp.MustCompile(`^([0-9]+\.[0-9]+)`)

// Project is the project metadata consumed by the builder. JavaRelease is
// the compiler target discovered from the build descriptor; empty when the
// descriptor does not configure one.
type Project struct {
	GroupID      string
	ArtifactID   string
	Version      string
	Name         string
	Description  string
	Organization string
	JavaRelease  string
}

// Builder assembles manifests. The zero value is not useful; use NewBuilder.
type Builder struct {
	createdBy           string
	buildJdkSpecDefault bool
	logger              hclog.Logger
}

// NewBuilder returns a Builder with the default Created-By value and the
// Build-Jdk-Spec default entry enabled.
func NewBuilder() *Builder {
	return &Builder{
		createdBy:           defaultCreatedBy,
		buildJdkSpecDefault: true,
		logger: hclog.New(&hclog.LoggerOptions{
			Name:  "jarpack.manifest",
			Level: hclog.Warn,
		}),
	}
}

// SetCreatedBy overrides the Created-By entry, e.g. "Maven Source Plugin 3.2".
func (b *Builder) SetCreatedBy(createdBy string) {
	b.createdBy = createdBy
}

// SetBuildJdkSpecDefaultEntry controls whether Build-Jdk-Spec is part of the
// default entries. Tools whose output does not depend on the compiler target
// disable it for reproducibility.
func (b *Builder) SetBuildJdkSpecDefaultEntry(enabled bool) {
	b.buildJdkSpecDefault = enabled
}

// Build produces the manifest for a project. User entries override computed
// attributes, except Class-Path: a user-supplied Class-Path is merged in
// front of the computed one so user resources win at runtime.
func (b *Builder) Build(
	project Project,
	cfg Config,
	entries map[string]string,
	sections []SectionConfig,
	artifacts []*artifact.Artifact,
) (*Manifest, error) {
	m := New()

	// Attributes the user configured explicitly are applied last so they
	// override the computed defaults.
	addDefault := func(name, value string) {
		if _, overridden := entries[name]; overridden {
			return
		}
		m.Set(name, value)
	}

	if cfg.AddDefaultEntries {
		addDefault("Created-By", b.createdBy)
		if b.buildJdkSpecDefault && project.JavaRelease != "" {
			addDefault("Build-Jdk-Spec", project.JavaRelease)
		}
	}

	if cfg.AddBuildEnvironmentEntries {
		addDefault("Build-Tool", defaultCreatedBy)
		if project.JavaRelease != "" {
			addDefault("Build-Jdk", project.JavaRelease)
		}
		addDefault("Build-Os", fmt.Sprintf("%s (%s)", runtime.GOOS, runtime.GOARCH))
	}

	if cfg.AddClasspath {
		cp, err := classpath.Build(artifacts, classpath.Config{
			LayoutType:        classpath.LayoutType(cfg.ClasspathLayoutType),
			CustomLayout:      cfg.CustomClasspathLayout,
			UseUniqueVersions: cfg.UseUniqueVersions,
			Prefix:            cfg.ClasspathPrefix,
		})
		if err != nil {
			return nil, err
		}
		if cp != "" {
			// Class-Path is special: added even when the user configured
			// one; the two are merged below.
			m.Set("Class-Path", cp)
		}
	}

	if cfg.AddDefaultSpecificationEntries {
		addDefault("Specification-Title", project.Name)
		if match := specVersionPattern.FindStringSubmatch(project.Version); match != nil {
			addDefault("Specification-Version", match[1])
		}
		if project.Organization != "" {
			addDefault("Specification-Vendor", project.Organization)
		}
	}

	if cfg.AddDefaultImplementationEntries {
		addDefault("Implementation-Title", project.Name)
		addDefault("Implementation-Version", project.Version)
		if project.Organization != "" {
			addDefault("Implementation-Vendor", project.Organization)
		}
	}

	if cfg.MainClass != "" {
		addDefault("Main-Class", cfg.MainClass)
	}
	if cfg.PackageName != "" {
		addDefault("Package", cfg.PackageName)
	}

	if cfg.AddExtensions {
		if list := extensionList(artifacts); list != "" {
			addDefault("Extension-List", list)
		}
	}

	// User entries, applied in sorted key order for deterministic output.
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := entries[key]
		if key == "Class-Path" {
			if computed, ok := m.Get("Class-Path"); ok {
				// User-supplied value goes first so its resources override
				// the computed classpath.
				m.Set("Class-Path", value+" "+computed)
				continue
			}
		}
		m.Set(key, value)
	}

	for _, sc := range sections {
		section := m.AddSection(sc.Name)
		sectionKeys := make([]string, 0, len(sc.Entries))
		for k := range sc.Entries {
			sectionKeys = append(sectionKeys, k)
		}
		sort.Strings(sectionKeys)
		for _, k := range sectionKeys {
			section.Set(k, sc.Entries[k])
		}
	}

	if name, ok := m.Get("Automatic-Module-Name"); ok {
		if !IsValidModuleName(name) {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidModuleName, name)
		}
	}

	b.logger.Debug("manifest assembled",
		"project", project.GroupID+":"+project.ArtifactID,
		"attributes", len(m.Main()))
	return m, nil
}

// extensionList renders the Extension-List value: the artifact ids of jar
// dependencies, de-duplicated, in input order.
func extensionList(artifacts []*artifact.Artifact) string {
	seen := make(map[string]bool)
	var list string
	for _, a := range artifacts {
		ext := a.Extension
		if ext == "" {
			ext = "jar"
		}
		if ext != "jar" || a.ArtifactID == "" || seen[a.ArtifactID] {
			continue
		}
		seen[a.ArtifactID] = true
		if list != "" {
			list += " "
		}
		list += a.ArtifactID
	}
	return list
}
