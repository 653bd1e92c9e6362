// types.go: rays, lights, materials and the object interface.

package raytrace

import (
	"fmt"
	"strconv"
)

// Tolerance below which a hit distance counts as zero. Keeping it well
// above float noise avoids acne from rays re-hitting their own surface.
const epsilon = 1e-5

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay returns a ray from origin along direction.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At is the point on the ray at distance t.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Light is a point light source.
type Light struct {
	Position Point3
	Color    Color
}

// NewLight returns a point light at position shining with color.
func NewLight(position Point3, color Color) Light {
	return Light{Position: position, Color: color}
}

func (l Light) String() string {
	return fmt.Sprintf("(light position: %s, color: %s)", l.Position, l.Color)
}

// Material holds the Phong shading parameters of a surface.
type Material struct {
	// Ambient is the color under indirect light only.
	Ambient Color
	// Diffuse is the color under direct light.
	Diffuse Color
	// Specular is the color of highlights; Shininess controls their size
	// via cos(alpha)^Shininess.
	Specular  Color
	Shininess float64
	// Mirror in (0, 1] blends in the reflected ray's color.
	Mirror float64
}

// NewMaterial returns a material from its Phong parameters.
func NewMaterial(ambient, diffuse, specular Color, shininess, mirror float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Mirror:    mirror,
	}
}

func (m Material) String() string {
	return fmt.Sprintf("(material ambient: %s, diffuse: %s, specular: %s, shininess: %s, mirror: %s)",
		m.Ambient, m.Diffuse, m.Specular,
		strconv.FormatFloat(m.Shininess, 'g', -1, 64),
		strconv.FormatFloat(m.Mirror, 'g', -1, 64))
}

// Hit describes a ray/object intersection.
type Hit struct {
	// Point is where the ray meets the surface.
	Point Point3
	// Normal is the surface normal there, unit length for unit radius or
	// unit plane normals.
	Normal Vec3
	// T is the distance from the ray origin.
	T float64
	// Material is the surface material at the hit point.
	Material Material
}

// Object is anything a ray can intersect.
type Object interface {
	// Intersect reports the nearest intersection along ray, if any.
	Intersect(ray Ray) (Hit, bool)
}
