// pkg/core/style.go
package core

// StyleProperties holds rendering hints extracted from a feature's
// properties. All fields are optional; a nil pointer means "not
// specified", which is distinct from any default a renderer might apply.
type StyleProperties struct {
	Stroke        *string  `json:"stroke,omitempty"`
	StrokeWidth   *float64 `json:"strokeWidth,omitempty"`
	StrokeOpacity *float64 `json:"strokeOpacity,omitempty"`
	Fill          *string  `json:"fill,omitempty"`
	FillOpacity   *float64 `json:"fillOpacity,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Opacity       *float64 `json:"opacity,omitempty"`

	// Marker carries simplestyle marker keys (marker-color, marker-size,
	// marker-symbol) passed through verbatim. Values are restricted to
	// strings and numbers.
	Marker map[string]any `json:"marker,omitempty"`
}

// IsEmpty reports whether no style hint was extracted at all.
func (s StyleProperties) IsEmpty() bool {
	return s.Stroke == nil && s.StrokeWidth == nil && s.StrokeOpacity == nil &&
		s.Fill == nil && s.FillOpacity == nil &&
		s.Color == nil && s.Weight == nil && s.Opacity == nil &&
		len(s.Marker) == 0
}

// Merge overlays other onto s: any field set in other wins. Marker maps
// are merged key-wise.
func (s StyleProperties) Merge(other StyleProperties) StyleProperties {
	out := s
	if other.Stroke != nil {
		out.Stroke = other.Stroke
	}
	if other.StrokeWidth != nil {
		out.StrokeWidth = other.StrokeWidth
	}
	if other.StrokeOpacity != nil {
		out.StrokeOpacity = other.StrokeOpacity
	}
	if other.Fill != nil {
		out.Fill = other.Fill
	}
	if other.FillOpacity != nil {
		out.FillOpacity = other.FillOpacity
	}
	if other.Color != nil {
		out.Color = other.Color
	}
	if other.Weight != nil {
		out.Weight = other.Weight
	}
	if other.Opacity != nil {
		out.Opacity = other.Opacity
	}
	if len(other.Marker) > 0 {
		merged := make(map[string]any, len(s.Marker)+len(other.Marker))
		for k, v := range s.Marker {
			merged[k] = v
		}
		for k, v := range other.Marker {
			merged[k] = v
		}
		out.Marker = merged
	}
	return out
}
