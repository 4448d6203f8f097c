// Package config loads the on-disk project manifest and lockfile that
// govern one compilation: which packages exist, what version of the
// toolchain they target, and (via the lockfile) the per-package snapshot
// recorded at the last successful build.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ManifestFileName is the name of the project manifest, read from a
// module's root directory.
const ManifestFileName = "onyx.toml"

// ToolchainVersion is the current toolchain version string, compared
// against a manifest's declared version; Load rejects a manifest whose
// declared version differs.
const ToolchainVersion = "0.1.0"

// tomlManifest is the on-disk shape of onyx.toml.
type tomlManifest struct {
	Name           string   `toml:"name"`
	OnyxVersion    string   `toml:"onyx-version"`
	EnableCaching  bool     `toml:"caching"`
	SourceDirs     []string `toml:"source-dirs"`
}

// Manifest is a validated, in-memory project manifest.
//
// Grounded on bootstrap/depm/load_mod.go's LoadModule/validateModule pair,
// carried over onto go-toml's Unmarshal in place of the teacher's own
// (identically shaped) toml.Unmarshal call.
type Manifest struct {
	AbsPath       string
	Name          string
	EnableCaching bool
	SourceDirs    []string
}

// Load reads and validates the manifest at abspath/onyx.toml.
func Load(abspath string) (*Manifest, error) {
	f, err := os.Open(filepath.Join(abspath, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest at %q: %w", abspath, err)
	}
	defer f.Close()

	buf, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, fmt.Errorf("error reading manifest at %q: %w", abspath, err)
	}

	tm := &tomlManifest{}
	if err := toml.Unmarshal(buf, tm); err != nil {
		return nil, fmt.Errorf("error parsing manifest at %q: %w", abspath, err)
	}

	m := &Manifest{
		AbsPath:    abspath,
		SourceDirs: tm.SourceDirs,
	}

	if err := validate(m, tm); err != nil {
		return nil, err
	}

	return m, nil
}

func validate(m *Manifest, tm *tomlManifest) error {
	if tm.Name == "" {
		return fmt.Errorf("manifest at %q: missing project name", m.AbsPath)
	}

	if !isValidIdentifier(tm.Name) {
		return fmt.Errorf("manifest at %q: project name must be a valid identifier", m.AbsPath)
	}

	if tm.OnyxVersion != "" && tm.OnyxVersion != ToolchainVersion {
		return fmt.Errorf("manifest at %q: version %q does not match toolchain version %q",
			m.AbsPath, tm.OnyxVersion, ToolchainVersion)
	}

	m.Name = tm.Name
	m.EnableCaching = tm.EnableCaching

	if len(m.SourceDirs) == 0 {
		m.SourceDirs = []string{"."}
	}

	return nil
}

func isValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}

	first := s[0]
	if !(first == '_' || 'a' <= first && first <= 'z' || 'A' <= first && first <= 'Z') {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			continue
		}
		return false
	}

	return true
}
