package parser

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/geodrop/geodrop/internal/parser"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
