package raster

type Extent struct {
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

func (e Extent) Width() float64 {
	return e.XMax - e.XMin
}

func (e Extent) Height() float64 {
	return e.YMax - e.YMin
}

func (e Extent) IsEmpty() bool {
	return e.XMax <= e.XMin || e.YMax <= e.YMin
}

func (e Extent) Contains(x, y float64) bool {
	return x >= e.XMin && x <= e.XMax && y >= e.YMin && y <= e.YMax
}

func (e Extent) Intersects(o Extent) bool {
	return e.XMin < o.XMax && o.XMin < e.XMax && e.YMin < o.YMax && o.YMin < e.YMax
}

func (e Extent) Intersection(o Extent) Extent {
	out := Extent{
		XMin: maxf(e.XMin, o.XMin),
		YMin: maxf(e.YMin, o.YMin),
		XMax: minf(e.XMax, o.XMax),
		YMax: minf(e.YMax, o.YMax),
	}
	return out
}

// Expand returns the union of the two extents.
func (e Extent) Expand(o Extent) Extent {
	if e.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return e
	}
	return Extent{
		XMin: minf(e.XMin, o.XMin),
		YMin: minf(e.YMin, o.YMin),
		XMax: maxf(e.XMax, o.XMax),
		YMax: maxf(e.YMax, o.YMax),
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
