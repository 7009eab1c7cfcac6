package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/aymerick/raymond"
)

// defaultTemplate is used when the report name is missing or has no catalog entry
const defaultTemplate = "report.html"

// maxTimesRepeat caps the times helper. Its counts come from generated
// content (star ratings, numbered lists), so a bad value must not be able
// to blow up the rendered document.
const maxTimesRepeat = 100

var registerHelpersOnce sync.Once

// registerHelpers installs the template helpers the report templates use.
// Raymond keeps a global helper registry, so registration happens once.
func registerHelpers() {
	registerHelpersOnce.Do(func() {
		raymond.RegisterHelper("times", func(n interface{}, options *raymond.Options) raymond.SafeString {
			count := toInt(n)
			if count > maxTimesRepeat {
				count = maxTimesRepeat
			}
			var b strings.Builder
			for i := 0; i < count; i++ {
				b.WriteString(options.FnWith(i))
			}
			return raymond.SafeString(b.String())
		})
	})
}

// toInt coerces the numeric types JSON decoding and templates produce
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		var parsed int
		fmt.Sscanf(n, "%d", &parsed)
		return parsed
	default:
		return 0
	}
}

// templateFor resolves the template filename from the report name nested in
// the report data, falling back to the default template rather than failing
// on unknown names
func templateFor(reportData map[string]any) string {
	fortune, _ := reportData["fortune_report"].(map[string]any)
	company, _ := fortune["company_details"].(map[string]any)
	reportName, _ := company["report_name"].(string)
	if reportName == "" {
		return defaultTemplate
	}

	product, err := entity.ProductByType(reportName)
	if err != nil {
		return defaultTemplate
	}
	return product.TemplateFile
}

// expandTemplate reads the matching HTML template from the template
// directory and fills it with the report data
func expandTemplate(templateDir string, reportData map[string]any) (string, error) {
	registerHelpers()

	templateFile := templateFor(reportData)
	templatePath := filepath.Join(templateDir, templateFile)

	templateContent, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: reading template %s: %s", errs.ErrRenderFailed, templateFile, err.Error())
	}

	tpl, err := raymond.Parse(string(templateContent))
	if err != nil {
		return "", fmt.Errorf("%w: parsing template %s: %s", errs.ErrRenderFailed, templateFile, err.Error())
	}

	html, err := tpl.Exec(reportData)
	if err != nil {
		return "", fmt.Errorf("%w: expanding template %s: %s", errs.ErrRenderFailed, templateFile, err.Error())
	}
	return html, nil
}
