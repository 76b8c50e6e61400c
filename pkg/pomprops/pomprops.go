// Package pomprops writes the pom.properties metadata file embedded in a
// JAR under META-INF/maven/<groupId>/<artifactId>/. The output is
// reproducible: entries are sorted, no timestamp comment is written, and an
// up-to-date file on disk is left untouched.
package pomprops

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/hashicorp/go-hclog"
	"github.com/magiconair/properties"
)

var log = hclog.New(&hclog.LoggerOptions{
	Name:  "jarpack.pomprops",
	Level: hclog.Warn,
})

// ArchivePath returns the location of pom.properties inside the archive.
func ArchivePath(groupID, artifactID string) string {
	return "META-INF/maven/" + groupID + "/" + artifactID + "/pom.properties"
}

// Write serializes the properties to w in the reproducible format: sorted
// key=value lines, no comment header, trailing newline.
func Write(w io.Writer, props map[string]string) error {
	_, err := w.Write(render(props))
	return err
}

// Create writes the pom.properties file for the given coordinates to
// outputFile. When customFile is non-empty its entries are used as the seed;
// the groupId, artifactId and version keys are always overwritten with the
// project coordinates. Unless forced, a file whose content already matches
// is left untouched.
func Create(groupID, artifactID, version, customFile, outputFile string, forced bool) error {
	props := make(map[string]string)

	if customFile != "" {
		loader := &properties.Loader{
			Encoding:         properties.ISO_8859_1,
			DisableExpansion: true,
		}
		custom, err := loader.LoadFile(customFile)
		if err != nil {
			return fmt.Errorf("loading custom properties file %s: %w", customFile, err)
		}
		for key, value := range custom.Map() {
			props[key] = value
		}
	}

	props["groupId"] = groupID
	props["artifactId"] = artifactID
	props["version"] = version

	content := render(props)

	if existing, err := os.ReadFile(outputFile); !forced && err == nil && bytes.Equal(existing, content) {
		log.Debug("pom.properties unchanged, not rewriting", "path", outputFile)
		return nil
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating pom.properties directory: %w", err)
		}
	}
	if err := os.WriteFile(outputFile, content, 0o644); err != nil {
		return fmt.Errorf("writing pom.properties: %w", err)
	}
	return nil
}

// render serializes the properties as sorted key=value lines with a trailing
// newline. All non-ASCII characters are written as \uXXXX escapes, so the
// output reads the same as ISO-8859-1 or UTF-8.
func render(props map[string]string) []byte {
	lines := make([]string, 0, len(props))
	for key, value := range props {
		lines = append(lines, escape(key, true)+"="+escape(value, false))
	}
	sort.Strings(lines)
	return []byte(strings.Join(lines, "\n") + "\n")
}

// escape applies the java.util.Properties store conventions. Keys escape
// every space; values only a leading one. Escaping works on UTF-16 code
// units so supplementary characters come out as surrogate pair escapes.
func escape(s string, escapeAllSpaces bool) string {
	var b strings.Builder
	for i, c := range utf16.Encode([]rune(s)) {
		switch {
		case c == ' ':
			if escapeAllSpaces || i == 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '=' || c == ':' || c == '#' || c == '!':
			b.WriteByte('\\')
			b.WriteByte(byte(c))
		case c < 0x20 || c > 0x7E:
			fmt.Fprintf(&b, `\u%04X`, c)
		default:
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
