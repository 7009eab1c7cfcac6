package client

import (
	"context"
)

// PDFRenderer converts report data into a PDF byte buffer. The template is
// selected from the report-name field nested in the data, falling back to a
// default template for unknown names rather than failing.
type PDFRenderer interface {
	// Render expands the matching HTML template with the report data and
	// captures it as an A4 PDF. Browser resources are released on every
	// exit path.
	//
	// Possible errors:
	// - ErrBrowserLaunch: If the headless browser cannot start
	// - ErrRenderTimeout: If the page load exceeds the configured timeout
	// - ErrRenderFailed: For any other rendering failure
	Render(ctx context.Context, reportData map[string]any) ([]byte, error)
}
