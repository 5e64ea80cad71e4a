package layer

import (
	"fmt"

	"github.com/nci/tilebridge/proj"
	"github.com/nci/tilebridge/raster"
)

const (
	SchemeFloat = "float"
	SchemeZoom  = "zoom"
)

// Reproject warps the layer into an explicit target layout in the
// target CRS. The target layout no longer corresponds to a pyramid
// level, so the zoom level of the result is unknown.
func (l *TiledLayer[K]) Reproject(extentMap map[string]float64, layoutMap map[string]int64, crs string, resampleName string) (*TiledLayer[K], error) {
	extent, err := ExtentFromMap(extentMap)
	if err != nil {
		return nil, err
	}
	tl, err := TileLayoutFromMap(layoutMap)
	if err != nil {
		return nil, err
	}
	dstCRS, err := proj.Resolve(crs)
	if err != nil {
		return nil, err
	}
	method, err := raster.ResampleMethodFromName(resampleName)
	if err != nil {
		return nil, err
	}
	return l.regrid(dstCRS, LayoutDefinition{Extent: extent, Layout: tl}, method, nil)
}

// ReprojectScheme warps the layer into a layout derived from a named
// layout scheme. The zoomed scheme places the result on the world
// pyramid grid and reports the chosen level; the floating scheme
// anchors the layout on the data extent and leaves the zoom unknown.
func (l *TiledLayer[K]) ReprojectScheme(scheme string, tileSize int, resolutionThreshold float64, crs string, resampleName string) (*TiledLayer[K], error) {
	dstCRS, err := proj.Resolve(crs)
	if err != nil {
		return nil, err
	}
	method, err := raster.ResampleMethodFromName(resampleName)
	if err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}

	srcCRS, err := proj.Resolve(l.Meta.CRS)
	if err != nil {
		return nil, err
	}
	forward, err := proj.Transform(srcCRS, dstCRS)
	if err != nil {
		return nil, err
	}
	dataExtent := proj.TransformExtent(l.Meta.Extent, forward)

	// Approximate the reprojected cell size by spreading the source
	// pixel counts over the reprojected extent.
	srcCells := float64(l.Meta.Layout.Layout.LayoutCols * l.Meta.Layout.Layout.TileCols)
	cellW := dataExtent.Width() / srcCells
	cellH := dataExtent.Height() / float64(l.Meta.Layout.Layout.LayoutRows*l.Meta.Layout.Layout.TileRows)

	switch scheme {
	case SchemeZoom:
		zoom, err := ZoomFor(dstCRS, tileSize, cellW, resolutionThreshold)
		if err != nil {
			return nil, err
		}
		return l.regrid(dstCRS, ZoomedLayout(dstCRS, tileSize, zoom), method, zoomPtr(zoom))
	case SchemeFloat:
		return l.regrid(dstCRS, FloatingLayout(dataExtent, cellW, cellH, tileSize), method, nil)
	default:
		return nil, fmt.Errorf("unknown layout scheme: %s", scheme)
	}
}

// TileToLayout re-keys and resamples the layer onto a new layout in
// its own CRS. The result's zoom level is unknown.
func (l *TiledLayer[K]) TileToLayout(extentMap map[string]float64, layoutMap map[string]int64, resampleName string) (*TiledLayer[K], error) {
	extent, err := ExtentFromMap(extentMap)
	if err != nil {
		return nil, err
	}
	tl, err := TileLayoutFromMap(layoutMap)
	if err != nil {
		return nil, err
	}
	crs, err := proj.Resolve(l.Meta.CRS)
	if err != nil {
		return nil, err
	}
	method, err := raster.ResampleMethodFromName(resampleName)
	if err != nil {
		return nil, err
	}
	return l.regrid(crs, LayoutDefinition{Extent: extent, Layout: tl}, method, nil)
}

// regrid implements reprojection and retiling: every temporal slice is
// mosaicked, each target tile samples the mosaic through the inverse
// transform, and target tiles with no data are dropped.
func (l *TiledLayer[K]) regrid(dstCRS *proj.CRS, dstLayout LayoutDefinition, method raster.ResampleMethod, newZoom *int) (*TiledLayer[K], error) {
	srcCRS, err := proj.Resolve(l.Meta.CRS)
	if err != nil {
		return nil, err
	}
	forward, err := proj.Transform(srcCRS, dstCRS)
	if err != nil {
		return nil, err
	}
	inverse, err := proj.Transform(dstCRS, srcCRS)
	if err != nil {
		return nil, err
	}

	meta := l.Meta
	meta.CRS = dstCRS.Code
	meta.Layout = dstLayout
	dataExtent := proj.TransformExtent(l.Meta.Extent, forward)
	meta.Extent = dataExtent.Intersection(dstLayout.Extent)

	out := make(map[K]*raster.MultibandTile)
	if l.IsEmpty() {
		return New(out, meta, newZoom), nil
	}

	tl := dstLayout.Layout
	for _, keys := range groupByInstant(l) {
		mosaic, mosaicExtent, _, err := stitchGroup(l, keys)
		if err != nil {
			return nil, err
		}
		coverage := proj.TransformExtent(mosaicExtent, forward)
		gb, covered := dstLayout.GridBoundsFor(coverage)
		if !covered {
			continue
		}

		// Carries any temporal component onto the rebuilt keys.
		protoKey := keys[0]
		targets := make(map[K]*raster.MultibandTile)
		for row := gb.RowMin; row <= gb.RowMax; row++ {
			for col := gb.ColMin; col <= gb.ColMax; col++ {
				targets[protoKey.WithSpatialComponent(SpatialKey{Col: col, Row: row})] = nil
			}
		}

		warped := mapTiles(targets, func(k K, _ *raster.MultibandTile) *raster.MultibandTile {
			dstExtent := dstLayout.TileExtent(k.SpatialComponent())
			t := raster.Warp(mosaic, mosaicExtent, dstExtent, tl.TileCols, tl.TileRows, inverse, method)
			if tileIsEmpty(t) {
				return nil
			}
			return t
		})
		for k, t := range warped {
			out[k] = t
		}
	}

	return New(out, meta, newZoom), nil
}
