package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LockfileName is the name of the build snapshot file written alongside
// the manifest.
const LockfileName = "onyx.lock"

// PackageSnapshot records one compiled package's identity as of the last
// successful build, keyed by name in Lockfile.Packages.
type PackageSnapshot struct {
	ID          string `yaml:"id"`
	DeclOrder   int    `yaml:"decl-order-high-watermark"`
	LastBuiltAt string `yaml:"last-built-at"`
}

// Lockfile is the recorded state of a module's last successful build. It
// is read and written only through LoadLockfile, Touch and Save; the
// manifest's EnableCaching flag does not consult it.
//
// The teacher has no equivalent file (bootstrap/depm/load_mod.go tracks
// only a LastBuildTime field in-memory); this format is grounded on
// funxy's yaml.v3 config-file convention instead (internal/ext/config.go).
type Lockfile struct {
	ToolchainVersion string                     `yaml:"toolchain-version"`
	Packages         map[string]PackageSnapshot `yaml:"packages"`
}

// LoadLockfile reads onyx.lock from abspath, returning an empty Lockfile
// (not an error) if the file does not yet exist -- a fresh checkout has no
// prior build to compare against.
func LoadLockfile(abspath string) (*Lockfile, error) {
	buf, err := os.ReadFile(filepath.Join(abspath, LockfileName))
	if os.IsNotExist(err) {
		return &Lockfile{ToolchainVersion: ToolchainVersion, Packages: map[string]PackageSnapshot{}}, nil
	}
	if err != nil {
		return nil, err
	}

	lf := &Lockfile{}
	if err := yaml.Unmarshal(buf, lf); err != nil {
		return nil, err
	}
	if lf.Packages == nil {
		lf.Packages = map[string]PackageSnapshot{}
	}

	return lf, nil
}

// Save writes the lockfile back to abspath/onyx.lock.
func (lf *Lockfile) Save(abspath string) error {
	buf, err := yaml.Marshal(lf)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(abspath, LockfileName), buf, 0o644)
}

// Touch records pkgID as freshly built under name, stamped with the given
// time (passed in by the caller so this package never calls time.Now
// itself, keeping it deterministic under test).
func (lf *Lockfile) Touch(name, pkgID string, declOrderHigh int, at time.Time) {
	lf.Packages[name] = PackageSnapshot{
		ID:          pkgID,
		DeclOrder:   declOrderHigh,
		LastBuiltAt: at.Format(time.RFC3339),
	}
}
