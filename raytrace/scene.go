// scene.go: scene graph and recursive ray tracing with Phong lighting.

package raytrace

import (
	"fmt"
	"math"
)

// Scene is a collection of objects and point lights under one ambient
// light. The zero value is an empty, unlit scene.
type Scene struct {
	ambient Color
	objects []Object
	lights  []Light
}

// NewScene returns an empty scene with black ambient light.
func NewScene() Scene {
	return Scene{}
}

// SetAmbient sets the scene's ambient light color.
func (s *Scene) SetAmbient(ambient Color) {
	s.ambient = ambient
}

// AddObject appends an object to the scene.
func (s *Scene) AddObject(obj Object) {
	s.objects = append(s.objects, obj)
}

// AddLight appends a point light to the scene.
func (s *Scene) AddLight(light Light) {
	s.lights = append(s.lights, light)
}

// Clone returns a scene with its own object and light lists, so adding to
// one copy never shows up in another.
func (s Scene) Clone() Scene {
	out := Scene{ambient: s.ambient}
	out.objects = append(out.objects, s.objects...)
	out.lights = append(out.lights, s.lights...)
	return out
}

// Trace follows ray through the scene for at most depth reflections and
// returns the color it picks up. Rays that escape the scene, and rays cut
// off by the depth limit, are black.
func (s *Scene) Trace(ray Ray, depth int) Color {
	if depth == 0 {
		return Color{}
	}

	nearest, ok := s.intersect(ray)
	if !ok {
		return Color{}
	}

	color := s.lighting(ray.Direction.Neg(), nearest.Material, nearest.Point, nearest.Normal)

	if m := nearest.Material.Mirror; m > 0 {
		reflected := NewRay(nearest.Point, Reflect(ray.Direction, nearest.Normal))
		return color.Scale(1 - m).Add(s.Trace(reflected, depth-1).Scale(m))
	}
	return color
}

// intersect returns the nearest hit over all objects.
func (s *Scene) intersect(ray Ray) (Hit, bool) {
	var nearest Hit
	found := false
	for _, obj := range s.objects {
		hit, ok := obj.Intersect(ray)
		if ok && (!found || hit.T < nearest.T) {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// lighting computes the Phong color of material at point with the given
// normal, seen from the direction view. Lights blocked by any object
// closer than the light contribute nothing.
func (s *Scene) lighting(view Vec3, material Material, point Point3, normal Vec3) Color {
	color := material.Ambient.Mul(s.ambient)

	for _, light := range s.lights {
		direction := light.Position.Sub(point)
		distance := direction.Norm()
		shadowRay := NewRay(point, direction.Scale(1/distance))
		if s.blocked(shadowRay, distance) {
			continue
		}

		l := light.Position.Sub(point).Normalize()
		cosTheta := l.Dot(normal)
		if cosTheta <= 0 {
			continue
		}
		color = color.Add(material.Diffuse.Mul(light.Color).Scale(cosTheta))

		r := Mirror(l, normal)
		if cosAlpha := r.Dot(view); cosAlpha > 0 {
			color = color.Add(material.Specular.Mul(light.Color).Scale(math.Pow(cosAlpha, material.Shininess)))
		}
	}

	return color
}

// blocked reports whether anything intersects ray closer than distance.
func (s *Scene) blocked(ray Ray, distance float64) bool {
	for _, obj := range s.objects {
		if hit, ok := obj.Intersect(ray); ok && hit.T < distance {
			return true
		}
	}
	return false
}

func (s Scene) String() string {
	return fmt.Sprintf("(scene ambient: %s, #objects: %d, #lights: %d)",
		s.ambient, len(s.objects), len(s.lights))
}
