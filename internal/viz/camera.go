package viz

import (
	"math"

	"github.com/san-kum/orbitview/internal/vec"
)

// Camera projects render-space points onto the braille canvas with a
// simple rotate-then-perspective transform.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, RotX: -0.4, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(100, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.01, c.Zoom/1.2) }

func (c *Camera) rotate(p vec.Vec3) vec.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a render-space point to sub-pixel canvas coordinates.
// The third return is false when the point sits behind the camera or
// outside the canvas.
func (c *Camera) Project(p vec.Vec3, cv *Canvas) (int, int, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, false
	}

	sw, sh := cv.Width*2, cv.Height*4
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	px := minDim / 3.0

	sx := int(rot.X*persp*px) + sw/2
	sy := int(-rot.Y*persp*px) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
