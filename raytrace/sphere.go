// sphere.go: sphere intersection.

package raytrace

import (
	"fmt"
	"math"
	"strconv"
)

// Sphere is a sphere with a single material.
type Sphere struct {
	center   Point3
	radius   float64
	material Material
}

// NewSphere returns a sphere at center with the given radius and material.
func NewSphere(center Point3, radius float64, material Material) Sphere {
	return Sphere{center: center, radius: radius, material: material}
}

// Intersect solves the quadratic for the ray against the sphere and keeps
// the nearest root beyond epsilon, so rays starting on the surface (shadow
// and reflection rays) skip their own origin.
func (s Sphere) Intersect(ray Ray) (Hit, bool) {
	co := ray.Origin.Sub(s.center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(co)
	c := co.Dot(co) - s.radius*s.radius
	d := b*b - 4*a*c

	if d < 0 {
		return Hit{}, false
	}

	e := math.Sqrt(d)
	t1 := (-b - e) / (2 * a)
	t2 := (-b + e) / (2 * a)
	t := math.MaxFloat64

	if t1 > epsilon && t1 < t {
		t = t1
	}
	if t2 > epsilon && t2 < t {
		t = t2
	}
	if t == math.MaxFloat64 {
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{
		Point:    point,
		Normal:   point.Sub(s.center).Scale(1 / s.radius),
		T:        t,
		Material: s.material,
	}, true
}

func (s Sphere) String() string {
	return fmt.Sprintf("(sphere center: %s, radius: %s, material: %s)",
		s.center, strconv.FormatFloat(s.radius, 'g', -1, 64), s.material)
}
