// Package style extracts rendering hints from arbitrary GeoJSON feature
// properties. Three overlapping naming conventions are recognized and
// merged, later passes winning on collision:
//
//  1. simplestyle keys: stroke, stroke-width, stroke-opacity, fill,
//     fill-opacity
//  2. Mapbox/Leaflet keys: color, weight, opacity, fillColor, fillOpacity
//  3. alternative names: strokeColor, strokeWeight, lineColor, lineWidth
//
// A nested "style" object is extracted recursively and merged in, and
// simplestyle marker keys pass through verbatim. Values with the wrong
// primitive type for their key are silently ignored, never coerced.
package style

import "github.com/geodrop/geodrop/pkg/core"

var markerKeys = []string{"marker-color", "marker-size", "marker-symbol"}

// Extract pulls style hints out of a properties record. A nil map yields
// the zero StyleProperties.
func Extract(props map[string]any) core.StyleProperties {
	var s core.StyleProperties
	if len(props) == 0 {
		return s
	}

	// pass 1: simplestyle
	setString(&s.Stroke, props, "stroke")
	setNumber(&s.StrokeWidth, props, "stroke-width")
	setNumber(&s.StrokeOpacity, props, "stroke-opacity")
	setString(&s.Fill, props, "fill")
	setNumber(&s.FillOpacity, props, "fill-opacity")

	// pass 2: Mapbox/Leaflet
	setString(&s.Color, props, "color")
	setNumber(&s.Weight, props, "weight")
	setNumber(&s.Opacity, props, "opacity")
	setString(&s.Fill, props, "fillColor")
	setNumber(&s.FillOpacity, props, "fillOpacity")

	// pass 3: alternative names
	setString(&s.Stroke, props, "strokeColor")
	setNumber(&s.StrokeWidth, props, "strokeWeight")
	setString(&s.Stroke, props, "lineColor")
	setNumber(&s.StrokeWidth, props, "lineWidth")

	// nested style object, recursively extracted and merged in
	if nested, ok := props["style"].(map[string]any); ok {
		s = s.Merge(Extract(nested))
	}

	// marker passthrough
	for _, k := range markerKeys {
		v, ok := props[k]
		if !ok {
			continue
		}
		switch v.(type) {
		case string, float64, int:
		default:
			continue
		}
		if s.Marker == nil {
			s.Marker = make(map[string]any, len(markerKeys))
		}
		s.Marker[k] = v
	}

	return s
}

// setString copies props[key] into dst when it is a string.
func setString(dst **string, props map[string]any, key string) {
	if v, ok := props[key].(string); ok {
		*dst = &v
	}
}

// setNumber copies props[key] into dst when it is numeric. JSON decoding
// yields float64; int covers values built in-process.
func setNumber(dst **float64, props map[string]any, key string) {
	switch v := props[key].(type) {
	case float64:
		*dst = &v
	case int:
		f := float64(v)
		*dst = &f
	}
}
