package parts

import (
	"bytes"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// UnitFootprint is used for meshes without readable bounds.
func UnitFootprint() []mgl64.Vec2 {
	return rectFootprint(-0.5, -0.5, 0.5, 0.5)
}

func rectFootprint(minX, minZ, maxX, maxZ float64) []mgl64.Vec2 {
	return []mgl64.Vec2{
		{minX, minZ},
		{maxX, minZ},
		{maxX, maxZ},
		{minX, maxZ},
	}
}

// Footprint returns the XZ bounding rectangle of every POSITION accessor in
// a .glb or .gltf file. Only the accessor bounds are read; buffers that live
// in external files make the decode fail and fall back to the unit square.
func Footprint(data []byte) []mgl64.Vec2 {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return UnitFootprint()
	}

	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	found := false
	for _, mesh := range doc.Meshes {
		if mesh == nil {
			continue
		}
		for _, prim := range mesh.Primitives {
			if prim == nil {
				continue
			}
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok || idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
				continue
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				continue
			}
			minX = math.Min(minX, acc.Min[0])
			minZ = math.Min(minZ, acc.Min[2])
			maxX = math.Max(maxX, acc.Max[0])
			maxZ = math.Max(maxZ, acc.Max[2])
			found = true
		}
	}
	if !found || maxX-minX <= 0 || maxZ-minZ <= 0 {
		return UnitFootprint()
	}
	return rectFootprint(minX, minZ, maxX, maxZ)
}
