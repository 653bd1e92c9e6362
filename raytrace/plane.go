// plane.go: infinite planes, plain and checkered.

package raytrace

import (
	"fmt"
	"math"
	"strconv"
)

// Plane is an infinite plane with a single material.
type Plane struct {
	position Point3
	normal   Vec3
	material Material
}

// NewPlane returns the plane through position with the given normal.
func NewPlane(position Point3, normal Vec3, material Material) Plane {
	return Plane{position: position, normal: normal, material: material}
}

// Intersect hits the plane from either side; only rays parallel to the
// plane miss. The reported normal is the constructed one regardless of
// which side the ray came from.
func (p Plane) Intersect(ray Ray) (Hit, bool) {
	denom := p.normal.Dot(ray.Direction)
	if denom == 0 {
		return Hit{}, false
	}

	d := p.normal.Dot(p.position.Vec())
	t := (d - p.normal.Dot(ray.Origin.Vec())) / denom
	if t <= epsilon {
		return Hit{}, false
	}

	return Hit{
		Point:    ray.At(t),
		Normal:   p.normal,
		T:        t,
		Material: p.material,
	}, true
}

func (p Plane) String() string {
	return fmt.Sprintf("(plane position: %s, normal: %s, material: %s)",
		p.position, p.normal, p.material)
}

// Checkerboard is a plane with two materials in a checker pattern.
type Checkerboard struct {
	base Plane
	alt  Material
	// scale is the side length of one square.
	scale float64
	// right and up span the 2D coordinate frame on the plane used to
	// decide which square a point falls into.
	right, up Vec3
}

// NewCheckerboard returns a checkered plane. material1 covers the squares
// containing the even coordinates, material2 the others; up fixes the
// orientation of the grid on the plane.
func NewCheckerboard(position Point3, normal Vec3, material1, material2 Material, scale float64, up Vec3) Checkerboard {
	return Checkerboard{
		base:  NewPlane(position, normal, material1),
		alt:   material2,
		scale: scale,
		right: up.Cross(normal).Normalize(),
		up:    up,
	}
}

func (c Checkerboard) Intersect(ray Ray) (Hit, bool) {
	hit, ok := c.base.Intersect(ray)
	if !ok {
		return Hit{}, false
	}

	v3 := hit.Point.Sub(c.base.position)
	x := c.right.Dot(v3)
	y := c.up.Dot(v3)

	if evenSquare(x, c.scale) != evenSquare(y, c.scale) {
		hit.Material = c.alt
	}
	return hit, true
}

func evenSquare(coord, scale float64) bool {
	return math.Mod(math.Round(coord/scale), 2) == 0
}

func (c Checkerboard) String() string {
	return fmt.Sprintf("(checkerboard position: %s, normal: %s, material1: %s, material2: %s, scale: %s)",
		c.base.position, c.base.normal, c.base.material, c.alt,
		strconv.FormatFloat(c.scale, 'g', -1, 64))
}
