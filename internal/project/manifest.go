package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// DefaultSources is used when [build].sources is absent.
var DefaultSources = []string{"*.die"}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrNoSources indicates that the source globs matched nothing.
	ErrNoSources = errors.New("no .die sources matched")
)

// Config mirrors diec.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Sources are globs relative to the project root.
	Sources []string `toml:"sources,omitempty"`
	OutDir  string   `toml:"out_dir,omitempty"`
	// Class overrides the main class name for single-file projects.
	Class string `toml:"class,omitempty"`
	// Cache is the build cache directory; empty disables caching.
	Cache string `toml:"cache,omitempty"`
	Major int    `toml:"major,omitempty"`
}

// Manifest is a loaded diec.toml with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Load reads the manifest found at or above startDir.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig parses a single diec.toml.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	cfg.Package.Name = strings.TrimSpace(cfg.Package.Name)
	if !meta.IsDefined("package", "name") || cfg.Package.Name == "" {
		return Config{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if cfg.Build.Major != 0 && (cfg.Build.Major < 45 || cfg.Build.Major > 0xFFFF) {
		return Config{}, fmt.Errorf("%s: [build].major %d out of range", path, cfg.Build.Major)
	}
	if !meta.IsDefined("build", "sources") {
		cfg.Build.Sources = DefaultSources
	}
	return cfg, nil
}

// Sources expands the source globs into sorted absolute paths.
func (m *Manifest) Sources() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range m.Config.Build.Sources {
		matches, err := filepath.Glob(filepath.Join(m.Root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("%s: bad source pattern %q: %w", m.Path, pattern, err)
		}
		for _, match := range matches {
			if filepath.Ext(match) != ".die" || seen[match] {
				continue
			}
			seen[match] = true
			out = append(out, match)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", m.Path, ErrNoSources)
	}
	sort.Strings(out)
	return out, nil
}

// OutDir returns the absolute output directory.
func (m *Manifest) OutDir() string {
	dir := m.Config.Build.OutDir
	if dir == "" {
		dir = "out"
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

// CacheDir returns the absolute cache directory, or "" when disabled.
func (m *Manifest) CacheDir() string {
	if m.Config.Build.Cache == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Cache))
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Init writes a fresh manifest into dir. An existing one is left alone.
func Init(dir, name string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	data, err := Encode(Config{
		Package: PackageConfig{Name: name},
		Build:   BuildConfig{Sources: DefaultSources, OutDir: "out", Cache: ".diec-cache"},
	})
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ClassName derives a JVM class name from a source path: hello_world.die
// becomes HelloWorld.
func ClassName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var sb strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upper = true
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if sb.Len() == 0 && unicode.IsDigit(r) {
				sb.WriteByte('_')
			}
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "Main"
	}
	return sb.String()
}
