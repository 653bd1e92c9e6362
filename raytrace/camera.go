// camera.go: pinhole camera and parallel rendering.

package raytrace

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Camera is a pinhole camera with a fixed image plane. The image plane
// passes through the look-at center; xDir and yDir span it with lengths
// equal to the image's world width and height.
type Camera struct {
	position  Point3
	lowerLeft Point3
	xDir      Vec3
	yDir      Vec3
	width     int
	height    int
}

// NewCamera places the eye at position looking at center, with up fixing
// the camera roll. fovy is the vertical field of view in degrees; width
// and height give the image size in pixels and its aspect ratio.
func NewCamera(position, center Point3, up Vec3, fovy float64, width, height int) Camera {
	view := center.Sub(position).Normalize()
	dist := center.Sub(position).Norm()
	aspect := float64(width) / float64(height)

	imHeight := 2 * dist * math.Tan(fovy*math.Pi/180/2)
	imWidth := aspect * imHeight

	xDir := view.Cross(up).Normalize().Scale(imWidth)
	yDir := xDir.Cross(view).Normalize().Scale(imHeight)
	lowerLeft := center.SubVec(xDir.Scale(0.5)).SubVec(yDir.Scale(0.5))

	return Camera{
		position:  position,
		lowerLeft: lowerLeft,
		xDir:      xDir,
		yDir:      yDir,
		width:     width,
		height:    height,
	}
}

// RayAtRelative returns the ray through the image plane at relative
// coordinates x, y in [0, 1], measured from the lower left corner.
func (c Camera) RayAtRelative(x, y float64) Ray {
	target := c.lowerLeft.Add(c.xDir.Scale(x)).Add(c.yDir.Scale(y))
	return NewRay(c.position, target.Sub(c.position).Normalize())
}

// RayAt returns the ray through pixel (x, y), with y growing downward as
// in image coordinates.
func (c Camera) RayAt(x, y int) Ray {
	return c.RayAtRelative(float64(x)/float64(c.width), 1-float64(y)/float64(c.height))
}

// Render traces the scene into an image, averaging subp x subp subpixel
// samples per pixel and following at most depth reflections per ray. Rows
// are rendered in parallel.
func (c Camera) Render(scene *Scene, depth, subp int) (*image.RGBA, error) {
	dx := 1 / float64(c.width)
	dy := 1 / float64(c.height)
	dsx := dx / float64(subp)
	dsy := dy / float64(subp)
	scale := 255 / float64(subp*subp)

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < c.height; y++ {
		y := y
		g.Go(func() error {
			py := float64(y) * dy
			for x := 0; x < c.width; x++ {
				px := float64(x) * dx
				var col Color
				for sx := 0; sx < subp; sx++ {
					for sy := 0; sy < subp; sy++ {
						ray := c.RayAtRelative(px+float64(sx)*dsx, 1-(py+float64(sy)*dsy))
						col = col.Add(scene.Trace(ray, depth))
					}
				}
				img.SetRGBA(x, y, pixel(col.Scale(scale)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// pixel converts a scaled color to 8-bit RGB, clamping each channel to
// [0, 255] and mapping NaN to 0.
func pixel(c Color) color.RGBA {
	return color.RGBA{R: channel(c.X), G: channel(c.Y), B: channel(c.Z), A: 255}
}

func channel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func (c Camera) String() string {
	return fmt.Sprintf("(camera position: %s, width: %d, height: %d)", c.position, c.width, c.height)
}
