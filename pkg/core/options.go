// pkg/core/options.go
package core

// ParseOptions threads per-call parsing options through the dispatcher
// and the individual format parsers. The zero value gives the documented
// defaults; there is no ambient/module-level default state.
type ParseOptions struct {
	// UnescapePolylines controls percent-decoding of encoded polyline
	// input before it reaches the codec. Users often paste polylines
	// that were escaped by an intermediate JSON/URL encoding layer.
	// nil means true.
	UnescapePolylines *bool

	// SourceEPSG declares the coordinate reference system of the input.
	// 0 or 4326 leaves coordinates untouched; 3857 reprojects web
	// mercator input to WGS84 lon/lat after parsing.
	SourceEPSG int
}

// Unescape resolves the UnescapePolylines default.
func (o ParseOptions) Unescape() bool {
	if o.UnescapePolylines == nil {
		return true
	}
	return *o.UnescapePolylines
}
