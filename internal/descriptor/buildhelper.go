package descriptor

const compilerPluginID = "maven-compiler-plugin"

// JavaRelease discovers the compiler target of the build, checking the
// compiler plugin release setting, the maven.compiler.release property, the
// plugin target setting, and the maven.compiler.target property, in that
// order. The result is normalized; empty when nothing is configured.
func (d *Descriptor) JavaRelease() string {
	plugin := d.Plugins[compilerPluginID]

	if v := plugin["release"]; v != "" {
		return NormalizeJavaVersion(v)
	}
	if v := d.Properties["maven.compiler.release"]; v != "" {
		return NormalizeJavaVersion(v)
	}
	if v := plugin["target"]; v != "" {
		return NormalizeJavaVersion(v)
	}
	if v := d.Properties["maven.compiler.target"]; v != "" {
		return NormalizeJavaVersion(v)
	}
	return ""
}

// NormalizeJavaVersion maps the legacy 1.5 .. 1.8 version strings to their
// plain forms 5 .. 8. Anything else passes through unchanged.
func NormalizeJavaVersion(version string) string {
	if len(version) == 3 && version[0] == '1' && version[1] == '.' &&
		version[2] >= '5' && version[2] <= '8' {
		return version[2:]
	}
	return version
}
