package mandel

// Position is the camera state: the plane point at the viewport center,
// the zoom (scale factor, always > 0) and the iteration limit.
type Position struct {
	Point Point[float64]
	Zoom  float64
	Limit uint32
}

// Left pans left by offsetScale pixels. Panning distance is divided by
// the zoom so the visual speed stays constant at any magnification.
func (p *Position) Left(offsetScale float64) {
	p.Point.X -= offsetScale / p.Zoom
}

func (p *Position) Right(offsetScale float64) {
	p.Point.X += offsetScale / p.Zoom
}

func (p *Position) Up(offsetScale float64) {
	p.Point.Y -= offsetScale / p.Zoom
}

func (p *Position) Down(offsetScale float64) {
	p.Point.Y += offsetScale / p.Zoom
}

// Translate is the general 2-axis pan.
func (p *Position) Translate(offsetScale Point[float64]) {
	p.Point = p.Point.Add(offsetScale.DivScalar(p.Zoom))
}

// ChangeZoom multiplies the zoom by (1 + zoomScale).
func (p *Position) ChangeZoom(zoomScale float64) {
	p.Zoom *= 1 + zoomScale
}

// UpdateLimit couples the iteration limit to the zoom: more
// magnification needs proportionally more iterations for a stable image.
func (p *Position) UpdateLimit(limitScale float64) {
	p.Limit = uint32(p.Zoom * limitScale)
}

func (p *Position) ClampZoom(minZoom, maxZoom float64) {
	p.Zoom = min(max(p.Zoom, minZoom), maxZoom)
}

func (p *Position) ClampLimit(minLimit, maxLimit uint32) {
	p.Limit = min(max(p.Limit, minLimit), maxLimit)
}

// MakeStep advances the position one discrete tick toward target and
// reports whether the target has been exactly reached. When zooming in,
// the point is advanced before zoom and limit, which avoids jarring pans
// once already magnified; otherwise zoom and limit go first. Both
// sub-steps run every tick; the result is true only when both report
// reached in the same tick.
func (p *Position) MakeStep(target Position, offsetScale Point[float64], zoomScale, limitScale float64) bool {
	if p.Zoom < target.Zoom {
		pointReached := p.stepPoint(target.Point, offsetScale)
		zoomReached := p.stepZoomLimit(target, zoomScale, limitScale)
		return pointReached && zoomReached
	}
	zoomReached := p.stepZoomLimit(target, zoomScale, limitScale)
	pointReached := p.stepPoint(target.Point, offsetScale)
	return pointReached && zoomReached
}

func (p *Position) stepPoint(target Point[float64], offsetScale Point[float64]) bool {
	return closerPoint(&p.Point, target, offsetScale.DivScalar(p.Zoom))
}

// stepZoomLimit advances zoom geometrically (constant relative rate) and
// drags the limit along. Once zoom arrives the limit snaps straight to
// the target value.
func (p *Position) stepZoomLimit(target Position, zoomScale, limitScale float64) bool {
	if closer(&p.Zoom, target.Zoom, p.Zoom*zoomScale) {
		p.Limit = target.Limit
		return true
	}
	if p.Limit != target.Limit {
		step := uint32(max(1, float64(p.Limit)*zoomScale*limitScale))
		closer(&p.Limit, target.Limit, step)
	}
	return false
}

// closer moves current one step toward target and reports whether it now
// equals target. A remaining distance smaller than the step snaps
// exactly to the target, so stepping never overshoots or oscillates.
func closer[T Number](current *T, target, step T) bool {
	switch {
	case *current == target:
		return true
	case *current < target:
		if target-*current < step {
			*current = target
			return true
		}
		*current += step
	default:
		if *current-target < step {
			*current = target
			return true
		}
		*current -= step
	}
	return false
}

// closerPoint steps both axes independently; the point is reached only
// when both axes are.
func closerPoint[T Number](current *Point[T], target, step Point[T]) bool {
	reachedX := closer(&current.X, target.X, step.X)
	reachedY := closer(&current.Y, target.Y, step.Y)
	return reachedX && reachedY
}

// PositionController wraps a Position with clamped per-tick operations
// for interactive navigation and with MakeStep for scripted travel. It
// owns its Position; share read-only copies of Pos into builds.
type PositionController struct {
	Pos Position

	// Step is the per-tick pan distance in pixels at zoom 1.
	Step Point[float64]
	// ZoomScale is the relative zoom change per tick.
	ZoomScale float64
	MinZoom   float64
	MaxZoom   float64
	// LimitScale couples the iteration limit to the zoom.
	LimitScale float64
	MinLimit   uint32
	MaxLimit   uint32
}

// NewController returns a controller over pos with the default stepping
// configuration.
func NewController(pos Position) *PositionController {
	return &PositionController{
		Pos:        pos,
		Step:       Splat(8.0),
		ZoomScale:  0.05,
		MinZoom:    1,
		MaxZoom:    1 << 40,
		LimitScale: 0.6,
		MinLimit:   50,
		MaxLimit:   60000,
	}
}

func (c *PositionController) Left() {
	c.Pos.Left(c.Step.X)
}

func (c *PositionController) Right() {
	c.Pos.Right(c.Step.X)
}

func (c *PositionController) Up() {
	c.Pos.Up(c.Step.Y)
}

func (c *PositionController) Down() {
	c.Pos.Down(c.Step.Y)
}

func (c *PositionController) IncreaseZoom() {
	c.Pos.ChangeZoom(c.ZoomScale)
	c.Pos.ClampZoom(c.MinZoom, c.MaxZoom)
}

func (c *PositionController) DecreaseZoom() {
	c.Pos.ChangeZoom(-c.ZoomScale)
	c.Pos.ClampZoom(c.MinZoom, c.MaxZoom)
}

func (c *PositionController) UpdateLimit() {
	c.Pos.UpdateLimit(c.LimitScale)
	c.Pos.ClampLimit(c.MinLimit, c.MaxLimit)
}

// MakeStep advances one tick toward target using the stored stepping
// configuration. Drive it once per animation frame until it returns true.
func (c *PositionController) MakeStep(target Position) bool {
	return c.Pos.MakeStep(target, c.Step, c.ZoomScale, c.LimitScale)
}
