package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/CindyYangCS/CircuitCider/ecs"
	"github.com/CindyYangCS/CircuitCider/ecs/component"
	"github.com/CindyYangCS/CircuitCider/ecs/resource"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	outlineWidth       = 2
	editedOutlineWidth = 3
)

var (
	attachColor = colornames.Yellow
	editedColor = colornames.White
)

// RenderSystem draws every mesh footprint top-down through the world's view.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	view := resource.ViewOf(w)
	if view == nil {
		return
	}

	var entities []ecs.Entity
	ecs.ForEach2(w, component.MeshComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Mesh, _ *component.Transform) {
		entities = append(entities, e)
	})
	drawOrder(w, entities)

	for _, e := range entities {
		mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		pts := OutlineOnScreen(*view, *t, mesh.Footprint)
		if len(pts) < 2 {
			continue
		}
		c, width := PartStyle(w, e)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, c, true)
		}
	}
}

// drawOrder puts placers first by entity slot and the hover preview on top.
func drawOrder(w *ecs.World, entities []ecs.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		di := ecs.Has(w, entities[i], component.DisplayModelComponent.Kind())
		dj := ecs.Has(w, entities[j], component.DisplayModelComponent.Kind())
		if di != dj {
			return dj
		}
		return entities[i].Index() < entities[j].Index()
	})
}

// OutlineOnScreen places a footprint with t and projects it through view.
func OutlineOnScreen(view resource.View, t component.Transform, footprint []mgl64.Vec2) [][2]float64 {
	sx, sz := t.Scale.X(), t.Scale.Z()
	if sx == 0 {
		sx = 1
	}
	if sz == 0 {
		sz = 1
	}
	sin, cos := math.Sincos(t.Yaw)
	out := make([][2]float64, 0, len(footprint))
	for _, v := range footprint {
		lx, lz := v.X()*sx, v.Y()*sz
		p := mgl64.Vec3{
			t.Position.X() + lx*cos - lz*sin,
			t.Position.Y(),
			t.Position.Z() + lx*sin + lz*cos,
		}
		x, y := view.GroundToScreen(p)
		out = append(out, [2]float64{x, y})
	}
	return out
}

// PartStyle picks the outline colour and width of e. The material colour is
// the base; the preview fades with its pulse, overlapping placers turn
// yellow and the edited placer is drawn thicker.
func PartStyle(w *ecs.World, e ecs.Entity) (color.RGBA, float32) {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if mat, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok {
		c = mat.Color
	}
	width := float32(outlineWidth)

	if ecs.Has(w, e, component.AttachCandidateComponent.Kind()) {
		c = attachColor
	}
	if ecs.Has(w, e, component.EditedComponent.Kind()) {
		width = editedOutlineWidth
		if !ecs.Has(w, e, component.AttachCandidateComponent.Kind()) {
			c = editedColor
		}
	}
	if dm, ok := ecs.Get(w, e, component.DisplayModelComponent.Kind()); ok {
		c = withAlpha(c, dm.Alpha)
	}
	return c, width
}

// withAlpha scales a straight-alpha colour into the premultiplied form ebiten
// draws with.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
