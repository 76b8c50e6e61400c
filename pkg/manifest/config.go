package manifest

// Config captures the manifest configuration of the build descriptor. The
// zero value is not useful; start from DefaultConfig.
type Config struct {
	// MainClass sets the Main-Class attribute when non-empty.
	MainClass string

	// PackageName sets the Package attribute when non-empty.
	PackageName string

	// AddClasspath enables the computed Class-Path attribute.
	AddClasspath bool

	// AddExtensions enables the Extension-List attribute listing runtime
	// jar dependencies.
	AddExtensions bool

	// ClasspathPrefix is prepended to every classpath entry. A trailing
	// slash is enforced when non-empty.
	ClasspathPrefix string

	// AddDefaultEntries adds the reproducible Created-By and Build-Jdk-Spec
	// entries. Default true.
	AddDefaultEntries bool

	// AddBuildEnvironmentEntries adds Build-Tool and Build-Os information.
	AddBuildEnvironmentEntries bool

	// AddDefaultSpecificationEntries adds Specification-Title/Version/Vendor.
	AddDefaultSpecificationEntries bool

	// AddDefaultImplementationEntries adds Implementation-Title/Version/Vendor.
	AddDefaultImplementationEntries bool

	// ClasspathLayoutType is "simple", "repository" or "custom".
	ClasspathLayoutType string

	// CustomClasspathLayout is required when ClasspathLayoutType is "custom".
	CustomClasspathLayout string

	// UseUniqueVersions selects timestamped snapshot versions (true, the
	// default) or generic -SNAPSHOT versions (false) in classpath entries.
	UseUniqueVersions bool
}

// DefaultConfig mirrors the descriptor defaults: default entries on, simple
// layout, unique snapshot versions.
func DefaultConfig() Config {
	return Config{
		AddDefaultEntries:   true,
		ClasspathLayoutType: "simple",
		UseUniqueVersions:   true,
	}
}

// SectionConfig is a user-configured named manifest section.
type SectionConfig struct {
	Name    string
	Entries map[string]string
}

// ArchiveConfig is the archive-level configuration wrapping the manifest
// config with literal entries and metadata knobs.
type ArchiveConfig struct {
	Manifest Config

	// ManifestEntries are literal main-section attributes. They override
	// the computed defaults, except Class-Path which is merged.
	ManifestEntries map[string]string

	// ManifestSections are additional named sections.
	ManifestSections []SectionConfig

	// AddMavenDescriptor controls whether pom.properties metadata is
	// written. Default true.
	AddMavenDescriptor bool

	// Forced rewrites metadata files even when their content is unchanged.
	Forced bool

	// PomPropertiesFile optionally seeds pom.properties with a custom
	// properties file.
	PomPropertiesFile string
}

// DefaultArchiveConfig returns an ArchiveConfig with the descriptor
// defaults applied.
func DefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		Manifest:           DefaultConfig(),
		AddMavenDescriptor: true,
	}
}
