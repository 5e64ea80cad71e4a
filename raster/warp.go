package raster

// PointTransform maps a coordinate from one reference system to another.
type PointTransform func(x, y float64) (float64, float64)

// IdentityTransform is the no-op transform used when source and
// destination share a CRS.
func IdentityTransform(x, y float64) (float64, float64) {
	return x, y
}

// Geotransform returns the affine georeferencing array
// [originX, pixelW, 0, originY, 0, -pixelH] for a north-up grid
// covering bbox at the given dimensions.
func Geotransform(width, height int, bbox Extent) []float64 {
	return []float64{
		bbox.XMin, (bbox.XMax - bbox.XMin) / float64(width), 0,
		bbox.YMax, 0, (bbox.YMin - bbox.YMax) / float64(height),
	}
}

// Warp regrids src (covering srcExtent in the destination of inverse)
// onto a dstCols x dstRows grid covering dstExtent. For every
// destination cell center the inverse transform maps the coordinate
// back into the source CRS and the source grid is sampled with the
// given method. Cells falling outside the source grid become nodata.
func Warp(src *MultibandTile, srcExtent Extent, dstExtent Extent, dstCols, dstRows int, inverse PointTransform, method ResampleMethod) *MultibandTile {
	srcCols, srcRows := src.Dims()
	srcGeot := Geotransform(srcCols, srcRows, srcExtent)
	dstGeot := Geotransform(dstCols, dstRows, dstExtent)

	out := &MultibandTile{Bands: make([]*Tile, len(src.Bands))}
	for i, band := range src.Bands {
		out.Bands[i] = NewTile(dstCols, dstRows, band.NoData)
	}

	for row := 0; row < dstRows; row++ {
		// Destination cell centers, georeferenced.
		y := dstGeot[3] + (float64(row)+0.5)*dstGeot[5]
		for col := 0; col < dstCols; col++ {
			x := dstGeot[0] + (float64(col)+0.5)*dstGeot[1]

			sx, sy := inverse(x, y)
			fx := (sx-srcGeot[0])/srcGeot[1] - 0.5
			fy := (sy-srcGeot[3])/srcGeot[5] - 0.5
			if fx < -0.5 || fx > float64(srcCols)-0.5 || fy < -0.5 || fy > float64(srcRows)-0.5 {
				continue
			}

			for i, band := range src.Bands {
				v := band.SamplePixel(fx, fy, method)
				if !band.IsNoData(v) {
					out.Bands[i].Set(col, row, v)
				}
			}
		}
	}
	return out
}
