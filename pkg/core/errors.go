// pkg/core/errors.go
package core

import "fmt"

// ErrorCode classifies a parse failure. Codes are mutually exclusive;
// every failed parse carries exactly one.
type ErrorCode string

const (
	ErrInvalidJSON          ErrorCode = "INVALID_JSON"
	ErrInvalidGeoJSONSchema ErrorCode = "INVALID_GEOJSON_SCHEMA"
	ErrInvalidGeometry      ErrorCode = "INVALID_GEOMETRY"
	ErrUnsupportedType      ErrorCode = "UNSUPPORTED_TYPE"
	ErrFeatureGeometry      ErrorCode = "FEATURE_GEOMETRY_ERROR"
	ErrValidation           ErrorCode = "VALIDATION_ERROR"
	ErrParsing              ErrorCode = "PARSING_ERROR"
	ErrPolyline             ErrorCode = "POLYLINE_ERROR"
	ErrWKT                  ErrorCode = "WKT_ERROR"
	ErrLatLngList           ErrorCode = "LATLNG_LIST_ERROR"
	ErrAutoDetection        ErrorCode = "AUTO_DETECTION_ERROR"
)

// ParseError is the failure half of every parser's contract. Parsers are
// total: they never panic across their public boundary, and every failure
// mode funnels into one of these.
//
// Message is short and user-facing. Details carries a longer
// human-actionable hint (expected coordinate shapes, per-format failure
// reasons from auto-detection) suitable for direct display.
type ParseError struct {
	Code    ErrorCode `json:"errorCode"`
	Message string    `json:"error"`
	Details string    `json:"errorDetails,omitempty"`
}

func (e *ParseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewParseError builds a ParseError with a formatted message and no details.
func NewParseError(code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails returns a copy of e carrying the given details hint.
func (e *ParseError) WithDetails(format string, args ...any) *ParseError {
	return &ParseError{Code: e.Code, Message: e.Message, Details: fmt.Sprintf(format, args...)}
}
