package entity

import (
	errs "github.com/astrodash/astro-api/internal/domain/error"
)

// ReportProduct describes one entry of the fixed report catalog. Each
// product carries its own price, content endpoint slug and PDF template
// identifier; the per-product content schema lives with the content
// generation adapter keyed by the same slug.
type ReportProduct struct {
	Type         string
	Description  string
	PricePaise   int64
	Slug         string // content generation endpoint identifier
	TemplateFile string // PDF template filename
}

// Price returns the product price formatted with 2 decimal places
func (p ReportProduct) Price() string {
	return FormatPaise(p.PricePaise)
}

// reportCatalog is the fixed catalog of report products. Prices are in paise.
var reportCatalog = []ReportProduct{
	{
		Type:         "Chakra Healing Report",
		Description:  "Discover your energy centers and healing potential",
		PricePaise:   49900,
		Slug:         "chakra-healing",
		TemplateFile: "report-chakra-healing.html",
	},
	{
		Type:         "Fortune Report",
		Description:  "Unveil your destiny and future prospects",
		PricePaise:   99900,
		Slug:         "yearly-fortune",
		TemplateFile: "report-yearly-fortune.html",
	},
	{
		Type:         "Lucky 13 Reports",
		Description:  "Explore your 13 key lucky elements",
		PricePaise:   129900,
		Slug:         "lucky-13",
		TemplateFile: "report-lucky-13.html",
	},
	{
		Type:         "Vedic 4 Report",
		Description:  "Traditional Vedic astrology insights",
		PricePaise:   79900,
		Slug:         "vedic4",
		TemplateFile: "report-vedic-4.html",
	},
	{
		Type:         "Wealth Comprehensive Report",
		Description:  "Detailed analysis of wealth potential",
		PricePaise:   149900,
		Slug:         "wealth-comprehensive",
		TemplateFile: "report-wealth-comprehensive.html",
	},
	{
		Type:         "Wealth Report",
		Description:  "Quick overview of financial prospects",
		PricePaise:   69900,
		Slug:         "wealth",
		TemplateFile: "report-wealth.html",
	},
	{
		Type:         "Yogas & Doshas",
		Description:  "Analysis of astrological combinations",
		PricePaise:   89900,
		Slug:         "yogas-doshas",
		TemplateFile: "report-yogas-and-doshas.html",
	},
}

// Catalog returns the full report catalog in stable order
func Catalog() []ReportProduct {
	out := make([]ReportProduct, len(reportCatalog))
	copy(out, reportCatalog)
	return out
}

// ProductByType looks up a report product by its catalog type
func ProductByType(reportType string) (ReportProduct, error) {
	for _, p := range reportCatalog {
		if p.Type == reportType {
			return p, nil
		}
	}
	return ReportProduct{}, errs.ErrUnknownReportType
}
