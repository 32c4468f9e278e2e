// Package parts loads the folder of buildable part assets shown in the
// editor palette.
package parts

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind is decided once, when an asset is registered, from its file extension.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMesh
	KindSpec
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindSpec:
		return "spec"
	default:
		return "unknown"
	}
}

// KindOf classifies a file name by extension.
func KindOf(name string) Kind {
	switch strings.ToLower(path.Ext(name)) {
	case ".glb", ".gltf":
		return KindMesh
	case ".yaml", ".yml":
		return KindSpec
	default:
		return KindUnknown
	}
}

type Asset struct {
	Path      string
	Kind      Kind
	Label     string
	Category  string
	Color     color.RGBA
	HasColor  bool
	Footprint []mgl64.Vec2
}

// DisplayName is the final path segment.
func (a Asset) DisplayName() string {
	return DisplayName(a.Path)
}

func DisplayName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Registry is a snapshot of one loaded part folder. A zero or nil Registry
// reports Loaded() == false.
type Registry struct {
	dir    string
	assets map[string]Asset
	meshes []string
	loaded bool
}

// LoadFolder walks dir inside fsys and registers every mesh and spec file.
// Mesh footprints come from the glTF bounds; a sidecar spec with the same
// base name overrides label, category and colour. A sidecar that fails to
// parse is logged and skipped so its mesh keeps the default label and colour.
func LoadFolder(fsys fs.FS, dir string) (*Registry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("parts: load %s: nil filesystem", dir)
	}
	dir = path.Clean(dir)

	reg := &Registry{dir: dir, assets: make(map[string]Asset)}
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind := KindOf(p)
		if kind == KindUnknown {
			return nil
		}
		reg.assets[p] = Asset{Path: p, Kind: kind}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parts: load %s: %w", dir, err)
	}

	specs := make(map[string]Spec)
	for p, a := range reg.assets {
		if a.Kind != KindSpec {
			continue
		}
		spec, err := LoadSpec(fsys, p)
		if err != nil {
			log.Printf("parts: skip spec %s: %v", p, err)
			continue
		}
		specs[strings.TrimSuffix(p, path.Ext(p))] = spec
	}

	for p, a := range reg.assets {
		if a.Kind != KindMesh {
			continue
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("parts: read %s: %w", p, err)
		}
		a.Footprint = Footprint(data)
		if spec, ok := specs[strings.TrimSuffix(p, path.Ext(p))]; ok {
			a.Label = spec.Name
			a.Category = spec.Category
			if spec.Color.Color != nil {
				a.Color = toRGBA(spec.Color.Color)
				a.HasColor = true
			}
		}
		reg.assets[p] = a
		reg.meshes = append(reg.meshes, p)
	}
	sort.Strings(reg.meshes)

	reg.loaded = true
	return reg, nil
}

func (r *Registry) Loaded() bool {
	return r != nil && r.loaded
}

func (r *Registry) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Meshes returns every mesh asset sorted by path.
func (r *Registry) Meshes() []Asset {
	if !r.Loaded() {
		return nil
	}
	out := make([]Asset, 0, len(r.meshes))
	for _, p := range r.meshes {
		out = append(out, r.assets[p])
	}
	return out
}

func (r *Registry) Lookup(p string) (Asset, bool) {
	if !r.Loaded() {
		return Asset{}, false
	}
	a, ok := r.assets[p]
	return a, ok
}

// Len counts registered assets of every kind.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.assets)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
