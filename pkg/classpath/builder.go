package classpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/jarpack/go/jarpack/pkg/artifact"
)

var logger = hclog.New(&hclog.LoggerOptions{
	Name:  "jarpack.classpath",
	Level: hclog.Warn,
})

// Config carries the classpath-related manifest configuration.
type Config struct {
	// LayoutType is one of the LayoutType constants. Empty disables layout
	// rendering entirely: every entry falls back to its bare file name.
	LayoutType LayoutType

	// CustomLayout is the template used with LayoutTypeCustom. Required for
	// that layout type.
	CustomLayout string

	// UseUniqueVersions selects the timestamp-qualified version for snapshot
	// entries (true) or the generic -SNAPSHOT base version (false).
	UseUniqueVersions bool

	// Prefix is prepended to every entry. Normalized before use: backslashes
	// become slashes and a trailing slash is enforced when non-empty.
	Prefix string
}

// NormalizePrefix cleans a configured classpath prefix: path separators are
// normalized to forward slashes and a non-empty prefix always ends in "/".
func NormalizePrefix(prefix string) string {
	p := strings.ReplaceAll(prefix, "\\", "/")
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// Entry renders the layout string for a single artifact, without the
// configured prefix. Unknown layout types and a missing custom template are
// configuration errors that fail the whole classpath build; artifacts without
// coordinates fall back to their bare file name.
func Entry(a *artifact.Artifact, cfg Config) (string, error) {
	if !a.HasCoordinates() || cfg.LayoutType == "" {
		// No layout possible; use the file name by itself.
		return filepath.Base(a.Path), nil
	}

	var template string
	switch cfg.LayoutType {
	case LayoutTypeSimple, LayoutTypeRepository:
		template, _ = templateFor(cfg.LayoutType, cfg.UseUniqueVersions)
	case LayoutTypeCustom:
		if cfg.CustomLayout == "" {
			return "", fmt.Errorf(
				"%w: check your archive.manifest.customClasspathLayout element",
				ErrMissingCustomLayout)
		}
		template = cfg.CustomLayout
	default:
		return "", fmt.Errorf(
			"%w: %q, check your archive.manifest.classpathLayoutType element",
			ErrUnknownLayoutType, cfg.LayoutType)
	}

	// The value-source chain is built fresh for this artifact and discarded
	// with the interpolator; nothing leaks across entries.
	resolved, err := newInterpolator(a).Interpolate(template)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrEntryInterpolation, a, err)
	}
	return resolved, nil
}

// Build assembles the full Class-Path attribute value: one entry per artifact
// whose resolved file is a regular file on disk, each prefixed with the
// normalized classpath prefix, joined by single spaces in input order.
//
// Either the full string is produced or an error is returned; there are no
// partial results.
func Build(artifacts []*artifact.Artifact, cfg Config) (string, error) {
	prefix := NormalizePrefix(cfg.Prefix)

	var sb strings.Builder
	for _, a := range artifacts {
		if a == nil {
			continue
		}
		info, err := os.Stat(a.Path)
		if err != nil || !info.Mode().IsRegular() {
			logger.Debug("skipping classpath entry, not a regular file",
				"artifact", a.String(), "path", a.Path)
			continue
		}

		entry, err := Entry(a, cfg)
		if err != nil {
			return "", err
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(prefix)
		sb.WriteString(entry)
	}
	return sb.String(), nil
}
