package client

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// ContentRequest carries the structured birth data a report's content is
// generated from
type ContentRequest struct {
	Product entity.ReportProduct
	Name    string
	Birth   entity.BirthDetails
	Chart   KundliChart
}

// ReportContent is the schema-shaped content generated for one report.
// The shape varies per report product (each product carries its own schema
// descriptor) but always merges into the product's PDF template.
type ReportContent map[string]any

// ContentGenerator turns structured birth-chart data into structured report
// content via schema-constrained generation. Implementations look up the
// product's schema descriptor and prompt by its catalog slug.
type ContentGenerator interface {
	// Generate produces the report content for the request's product.
	// Independent content sections of a single product may be generated
	// concurrently by the implementation.
	//
	// Possible errors:
	// - ErrUnknownReportType: If the product slug has no schema descriptor
	// - ErrContentGeneration: If the completion call fails or returns
	//   content that does not match the schema
	Generate(ctx context.Context, req ContentRequest) (ReportContent, error)
}
