package plot

// Transform maps between view coordinates and logical screen pixels.
// The y axis is flipped so that larger values are drawn higher up.
type Transform struct {
	v      ViewConfig
	width  float64
	height float64
}

func NewTransform(v ViewConfig, width, height float64) Transform {
	return Transform{v: v, width: width, height: height}
}

func (t Transform) ScreenX(x float64) float64 {
	return t.width * ((x - t.v.DomainMin) / (t.v.DomainMax - t.v.DomainMin))
}

func (t Transform) ScreenY(y float64) float64 {
	return t.height * (1 - (y-t.v.RangeMin)/(t.v.RangeMax-t.v.RangeMin))
}

// DomainX is the inverse of ScreenX.
func (t Transform) DomainX(sx float64) float64 {
	return t.v.DomainMin + sx/t.width*(t.v.DomainMax-t.v.DomainMin)
}

// RangeY is the inverse of ScreenY.
func (t Transform) RangeY(sy float64) float64 {
	return t.v.RangeMin + (1-sy/t.height)*(t.v.RangeMax-t.v.RangeMin)
}
