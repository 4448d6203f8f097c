package depm

import (
	"onyx/config"
	"onyx/types"

	"github.com/google/uuid"
)

// Module is a loaded project: its manifest, its type registry, and every
// package declared under its source directories.
//
// Grounded on bootstrap/depm/source.go's ChaiModule, with ID generation
// switched from GenerateIDFromPath's fnv hash to uuid.New() (see
// package.go) and module metadata sourced from config.Manifest instead of
// an inline tomlModule.
type Module struct {
	ID       uuid.UUID
	Manifest *config.Manifest
	Registry *types.Registry

	// Packages indexes every package belonging to this module by name.
	Packages map[string]*Package
}

// NewModule creates a module from an already-loaded manifest.
func NewModule(manifest *config.Manifest) *Module {
	return &Module{
		ID:       uuid.New(),
		Manifest: manifest,
		Registry: types.NewRegistry(),
		Packages: make(map[string]*Package),
	}
}

// Load loads the manifest at abspath and constructs an empty Module ready
// for its packages to be declared.
func Load(abspath string) (*Module, error) {
	manifest, err := config.Load(abspath)
	if err != nil {
		return nil, err
	}

	return NewModule(manifest), nil
}

// DeclarePackage creates and registers a new, empty package under this
// module.
func (m *Module) DeclarePackage(name string) *Package {
	pkg := NewPackage(name, m.Registry)
	m.Packages[name] = pkg
	return pkg
}
