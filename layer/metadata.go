package layer

import (
	"encoding/json"
	"fmt"

	"github.com/nci/tilebridge/raster"
	geojson "github.com/paulmach/go.geojson"
)

// Metadata describes how a layer's tiles compose into a logical
// raster: data extent, CRS, tiling layout, key bounds and cell
// encoding. Bounds is nil for an empty layer.
type Metadata struct {
	CellType   string           `json:"cellType"`
	CRS        string           `json:"crs"`
	NoData     float64          `json:"nodata"`
	Extent     raster.Extent    `json:"extent"`
	Layout     LayoutDefinition `json:"layout"`
	Bounds     *GridBounds      `json:"bounds"`
	MinInstant *int64           `json:"minInstant,omitempty"`
	MaxInstant *int64           `json:"maxInstant,omitempty"`
}

type metadataDoc struct {
	Metadata
	Footprint json.RawMessage `json:"footprint,omitempty"`
}

// ToJSON serializes the metadata to the pretty-printed JSON document
// surfaced to the host, including a GeoJSON footprint polygon of the
// data extent.
func (m Metadata) ToJSON() (string, error) {
	doc := metadataDoc{Metadata: m}
	if !m.Extent.IsEmpty() {
		ring := [][]float64{
			{m.Extent.XMin, m.Extent.YMin},
			{m.Extent.XMax, m.Extent.YMin},
			{m.Extent.XMax, m.Extent.YMax},
			{m.Extent.XMin, m.Extent.YMax},
			{m.Extent.XMin, m.Extent.YMin},
		}
		footprint, err := geojson.NewPolygonGeometry([][][]float64{ring}).MarshalJSON()
		if err != nil {
			return "", fmt.Errorf("failed to marshal layer footprint: %v", err)
		}
		doc.Footprint = footprint
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal layer metadata: %v", err)
	}
	return string(data), nil
}

// MetadataFromJSON parses a metadata document produced by ToJSON. The
// footprint field is derived output and is dropped on the way in.
func MetadataFromJSON(s string) (Metadata, error) {
	var doc metadataDoc
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return Metadata{}, fmt.Errorf("failed to unmarshal layer metadata: %v", err)
	}
	return doc.Metadata, nil
}
