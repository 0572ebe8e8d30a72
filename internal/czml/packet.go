// Package czml models the subset of the CZML scene-description format the
// converter emits: a document packet, time-dynamic entity packets, and
// label/billboard child packets. CZML is a JSON packet stream, so the
// types here are plain structs with JSON tags.
package czml

// Packet is one CZML packet. Unused properties stay nil and are omitted
// from the serialized document.
type Packet struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Version      string `json:"version,omitempty"`
	Description  string `json:"description,omitempty"`
	Parent       string `json:"parent,omitempty"`
	Availability string `json:"availability,omitempty"`

	Clock       *Clock       `json:"clock,omitempty"`
	Position    *Position    `json:"position,omitempty"`
	Orientation *Orientation `json:"orientation,omitempty"`
	Path        *Path        `json:"path,omitempty"`
	Point       *Point       `json:"point,omitempty"`
	Label       *Label       `json:"label,omitempty"`
	Billboard   *Billboard   `json:"billboard,omitempty"`
	Model       *Model       `json:"model,omitempty"`
}

// Clock configures document playback.
type Clock struct {
	Interval    string  `json:"interval"`
	CurrentTime string  `json:"currentTime"`
	Multiplier  float64 `json:"multiplier"`
	Range       string  `json:"range"`
	Step        string  `json:"step"`
}

// Position is either a time-tagged coordinate array (interleaved
// offset+coordinates against Epoch), or a logical reference to another
// packet's position.
type Position struct {
	Epoch                  string    `json:"epoch,omitempty"`
	CartographicDegrees    []float64 `json:"cartographicDegrees,omitempty"`
	Cartesian              []float64 `json:"cartesian,omitempty"`
	Reference              string    `json:"reference,omitempty"`
	InterpolationAlgorithm string    `json:"interpolationAlgorithm,omitempty"`
	InterpolationDegree    int       `json:"interpolationDegree,omitempty"`
}

// Orientation is a time-tagged unit-quaternion array (interleaved
// offset+x+y+z+w against Epoch).
type Orientation struct {
	Epoch                  string    `json:"epoch,omitempty"`
	UnitQuaternion         []float64 `json:"unitQuaternion"`
	InterpolationAlgorithm string    `json:"interpolationAlgorithm,omitempty"`
	InterpolationDegree    int       `json:"interpolationDegree,omitempty"`
}

// Color is an rgba byte quadruple.
type Color struct {
	RGBA [4]int `json:"rgba"`
}

// SolidColor wraps a color for path materials.
type SolidColor struct {
	Color Color `json:"color"`
}

// Material styles a path.
type Material struct {
	SolidColor SolidColor `json:"solidColor"`
}

// Path renders the vehicle's travelled track line.
type Path struct {
	Width      float64   `json:"width,omitempty"`
	Material   *Material `json:"material,omitempty"`
	Resolution float64   `json:"resolution,omitempty"`
	LeadTime   float64   `json:"leadTime,omitempty"`
	TrailTime  float64   `json:"trailTime,omitempty"`
}

// Point renders the vehicle marker dot.
type Point struct {
	Color        *Color  `json:"color,omitempty"`
	PixelSize    float64 `json:"pixelSize,omitempty"`
	OutlineColor *Color  `json:"outlineColor,omitempty"`
	OutlineWidth float64 `json:"outlineWidth,omitempty"`
}

// PixelOffset is a screen-space cartesian2 offset.
type PixelOffset struct {
	Cartesian2 [2]float64 `json:"cartesian2"`
}

// Label is a styled text annotation.
type Label struct {
	Text             string       `json:"text"`
	Show             bool         `json:"show"`
	Font             string       `json:"font,omitempty"`
	Style            string       `json:"style,omitempty"`
	Scale            float64      `json:"scale,omitempty"`
	FillColor        *Color       `json:"fillColor,omitempty"`
	OutlineColor     *Color       `json:"outlineColor,omitempty"`
	OutlineWidth     float64      `json:"outlineWidth,omitempty"`
	PixelOffset      *PixelOffset `json:"pixelOffset,omitempty"`
	HorizontalOrigin string       `json:"horizontalOrigin,omitempty"`
	VerticalOrigin   string       `json:"verticalOrigin,omitempty"`
}

// Billboard is an image marker.
type Billboard struct {
	Image            string       `json:"image"`
	Show             bool         `json:"show"`
	Scale            float64      `json:"scale,omitempty"`
	Color            *Color       `json:"color,omitempty"`
	PixelOffset      *PixelOffset `json:"pixelOffset,omitempty"`
	HorizontalOrigin string       `json:"horizontalOrigin,omitempty"`
	VerticalOrigin   string       `json:"verticalOrigin,omitempty"`
}

// Model references a hosted glTF asset for the vehicle.
type Model struct {
	Gltf             string  `json:"gltf"`
	Show             bool    `json:"show"`
	Scale            float64 `json:"scale,omitempty"`
	MinimumPixelSize float64 `json:"minimumPixelSize,omitempty"`
}
