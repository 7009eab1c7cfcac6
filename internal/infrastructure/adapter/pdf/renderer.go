package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/config"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches, with 20px margins at 96 DPI
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 20.0 / 96.0
)

// ChromeRenderer implements client.PDFRenderer with a headless Chrome
// instance driven over the DevTools protocol. Each render gets its own
// browser context; all browser resources are released on every exit path.
type ChromeRenderer struct {
	templateDir string
	timeout     time.Duration
	logger      coreport.Logger
}

// NewChromeRenderer creates a PDF renderer from configuration
func NewChromeRenderer(cfg config.RenderConfig, logger coreport.Logger) *ChromeRenderer {
	return &ChromeRenderer{
		templateDir: cfg.TemplateDir,
		timeout:     cfg.Timeout,
		logger:      logger,
	}
}

// Render expands the matching HTML template with the report data and
// captures it as an A4 PDF
func (r *ChromeRenderer) Render(ctx context.Context, reportData map[string]any) ([]byte, error) {
	html, err := expandTemplate(r.templateDir, reportData)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Rendering PDF", map[string]any{
		"html_bytes": len(html),
	})

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	renderCtx := browserCtx
	if r.timeout > 0 {
		var cancelTimeout context.CancelFunc
		renderCtx, cancelTimeout = context.WithTimeout(browserCtx, r.timeout)
		defer cancelTimeout()
	}

	var pdf []byte
	err = chromedp.Run(renderCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, r.classifyRenderError(err)
	}

	r.logger.Info("PDF rendered", map[string]any{
		"pdf_bytes": len(pdf),
	})
	return pdf, nil
}

// classifyRenderError maps Chrome failures onto the renderer error taxonomy
func (r *ChromeRenderer) classifyRenderError(err error) error {
	r.logger.Error("PDF rendering failed", map[string]any{
		"error": err.Error(),
	})

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", errs.ErrRenderTimeout, err.Error())
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("%w: %s", errs.ErrBrowserLaunch, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrRenderFailed, err.Error())
	}
}
