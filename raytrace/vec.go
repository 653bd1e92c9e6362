// vec.go: free vectors and points for the scene geometry.
//
// Vec3 and Point3 are kept distinct on purpose. A Vec3 is a direction or
// offset, a Point3 is a location; the only mixed operations are the
// affine ones (point plus offset, point minus point). Color aliases Vec3
// so that color arithmetic shares the componentwise operations.

package raytrace

import (
	"math"
	"strconv"
	"strings"
)

// Vec3 is a free vector in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a location in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Color is an RGB triple with components in [0, 1] during shading.
type Color = Vec3

// NewVec3 returns the vector (x y z).
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// NewPoint3 returns the point (x y z).
func NewPoint3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// NewColor returns the color (r g b).
func NewColor(r, g, b float64) Color { return Color{X: r, Y: g, Z: b} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul multiplies componentwise, which is how colors attenuate each other.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm is the Euclidean length.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector in v's direction.
func (v Vec3) Normalize() Vec3 { return v.Scale(1 / v.Norm()) }

// Add offsets the point by a vector.
func (p Point3) Add(v Vec3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// SubVec offsets the point by the negated vector.
func (p Point3) SubVec(v Vec3) Point3 { return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// Sub is the vector from o to p.
func (p Point3) Sub(o Point3) Vec3 { return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Vec reinterprets the point as its position vector from the origin.
func (p Point3) Vec() Vec3 { return Vec3(p) }

// Reflect bounces v off a surface with normal n: v minus twice its normal
// component. Used to continue a ray past a mirror hit.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Mirror flips v to the other side of the normal n, keeping the angle to n.
// Used for the ideal reflection direction of a light in Phong shading.
func Mirror(v, n Vec3) Vec3 {
	return n.Scale(2 * v.Dot(n)).Sub(v)
}

func (v Vec3) String() string {
	return "(vector " + triple(v.X, v.Y, v.Z) + ")"
}

func (p Point3) String() string {
	return "(point " + triple(p.X, p.Y, p.Z) + ")"
}

func triple(x, y, z float64) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(y, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(z, 'g', -1, 64))
	return b.String()
}
