// Package camera provides a 2D camera for viewing the bounded Life board.
package camera

// Camera controls the viewport into the board's world space. Cell (x, y)
// is centred at world (x*cellSize, y*cellSize), so the board spans
// [-cellSize/2, W*cellSize - cellSize/2) on each axis.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Velocity in world units per frame, driven by Push
	VX, VY float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// World extents the center is clamped to
	MinX, MinY, MaxX, MaxY float64

	MinZoom, MaxZoom float64
	MaxSpeed         float64
	Acceleration     float64
}

// Settings tunes movement and zoom limits.
type Settings struct {
	MoveSpeed    float64
	Acceleration float64
	MinZoom      float64
	MaxZoom      float64
}

// DefaultSettings matches the sandbox defaults.
func DefaultSettings() Settings {
	return Settings{MoveSpeed: 15, Acceleration: 1, MinZoom: 0.05, MaxZoom: 4}
}

// New creates a camera for a cols x rows board of cellSize cells. The
// initial zoom fits the whole board into the viewport.
func New(viewportW, viewportH float64, cols, rows int, cellSize float64, s Settings) *Camera {
	half := cellSize / 2
	c := &Camera{
		ViewportW:    viewportW,
		ViewportH:    viewportH,
		MinX:         -half,
		MinY:         -half,
		MaxX:         float64(cols)*cellSize - half,
		MaxY:         float64(rows)*cellSize - half,
		MinZoom:      s.MinZoom,
		MaxZoom:      s.MaxZoom,
		MaxSpeed:     s.MoveSpeed,
		Acceleration: s.Acceleration,
	}
	if c.MinZoom <= 0 {
		c.MinZoom = 0.01
	}
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = c.MinZoom
	}
	c.Reset()
	return c
}

// Fit returns the zoom that shows the whole board.
func (c *Camera) Fit() float64 {
	w := c.MaxX - c.MinX
	h := c.MaxY - c.MinY
	if w <= 0 || h <= 0 {
		return 1
	}
	z := c.ViewportW / w
	if zy := c.ViewportH / h; zy < z {
		z = zy
	}
	return clamp(z, c.MinZoom, c.MaxZoom)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates. The
// result may lie outside the board.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampPosition()
}

// Push accelerates the camera along (ax, ay), each in [-1, 1]. Speed per
// axis is capped at MaxSpeed.
func (c *Camera) Push(ax, ay float64) {
	c.VX = clamp(c.VX+ax*c.Acceleration, -c.MaxSpeed, c.MaxSpeed)
	c.VY = clamp(c.VY+ay*c.Acceleration, -c.MaxSpeed, c.MaxSpeed)
}

// Halt zeroes velocity.
func (c *Camera) Halt() {
	c.VX, c.VY = 0, 0
}

// Update applies velocity for one frame. Hitting an edge stops motion on
// that axis.
func (c *Camera) Update() {
	c.X += c.VX
	c.Y += c.VY
	if c.clampPosition() {
		if c.X == c.MinX || c.X == c.MaxX {
			c.VX = 0
		}
		if c.Y == c.MinY || c.Y == c.MaxY {
			c.VY = 0
		}
	}
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor keeping the world point under (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.ZoomBy(factor)
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X += wx - nx
	c.Y += wy - ny
	c.clampPosition()
}

// Reset centers the camera on the board at the fitting zoom and stops it.
func (c *Camera) Reset() {
	c.X = (c.MinX + c.MaxX) / 2
	c.Y = (c.MinY + c.MaxY) / 2
	c.Zoom = c.Fit()
	c.Halt()
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

func (c *Camera) clampPosition() bool {
	x := clamp(c.X, c.MinX, c.MaxX)
	y := clamp(c.Y, c.MinY, c.MaxY)
	moved := x != c.X || y != c.Y
	c.X, c.Y = x, y
	return moved
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
