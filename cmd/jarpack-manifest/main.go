package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/jarpack/go/jarpack/internal/descriptor"
	"github.com/provide-io/jarpack/go/jarpack/pkg/logging"
	"github.com/provide-io/jarpack/go/jarpack/pkg/manifest"
	"github.com/provide-io/jarpack/go/jarpack/pkg/pomprops"
)

const version = "0.1.0"

var (
	descriptorPath string
	outputDir      string
	logLevel       string
	versionFlag    bool
	rootCmd        *cobra.Command
)

func getBuilderTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "jarpack-manifest",
		Short: "Assemble JAR manifest and build metadata",
		Long:  `Assemble a JAR MANIFEST.MF and reproducible pom.properties from a build descriptor`,
		RunE:  assemble,
	}

	rootCmd.Flags().StringVarP(&descriptorPath, "descriptor", "d", "", "Path to build descriptor YAML (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for META-INF content (required)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("descriptor"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("jarpack-manifest %s\n", version)
		fmt.Printf("Built: %s\n", getBuilderTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func assemble(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("jarpack-manifest %s\n", version)
		fmt.Printf("Built: %s\n", getBuilderTimestamp())
		return nil
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("jarpack-manifest", level, os.Stderr)

	d, err := descriptor.Load(descriptorPath)
	if err != nil {
		return err
	}

	if ts := d.Build.OutputTimestamp; ts != "" {
		if when, ok, err := manifest.ParseBuildOutputTimestamp(ts); err != nil {
			return err
		} else if ok {
			logger.Debug("reproducible build timestamp", "timestamp", when.Format(time.RFC3339))
		}
	}

	cfg := d.ArchiveConfig()
	m, err := manifest.NewBuilder().Build(
		d.ManifestProject(), cfg.Manifest, cfg.ManifestEntries, cfg.ManifestSections, d.Artifacts())
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(outputDir, "META-INF", "MANIFEST.MF")
	if err := os.MkdirAll(filepath.Dir(manifestPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("creating manifest file: %w", err)
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("manifest written", "path", manifestPath)

	if cfg.AddMavenDescriptor {
		propsPath := filepath.Join(outputDir,
			pomprops.ArchivePath(d.Project.GroupID, d.Project.ArtifactID))
		if err := pomprops.Create(
			d.Project.GroupID, d.Project.ArtifactID, d.Project.Version,
			cfg.PomPropertiesFile, propsPath, cfg.Forced); err != nil {
			return err
		}
		logger.Info("pom.properties written", "path", propsPath)
	}

	return nil
}
