package content

import (
	"testing"

	"github.com/astrodash/astro-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSpecs(t *testing.T) {
	t.Run("Every catalog product has a spec", func(t *testing.T) {
		for _, product := range entity.Catalog() {
			spec, ok := reportSpecs[product.Slug]
			require.True(t, ok, "no content spec for slug %s", product.Slug)
			assert.NotEmpty(t, spec.sectionKey, "slug %s has no section key", product.Slug)
			assert.NotNil(t, spec.prompt, "slug %s has no prompt", product.Slug)
			assert.NotEmpty(t, spec.schema.Properties, "slug %s has an empty schema", product.Slug)
		}
	})

	t.Run("No orphan specs", func(t *testing.T) {
		slugs := make(map[string]bool)
		for _, product := range entity.Catalog() {
			slugs[product.Slug] = true
		}
		for slug := range reportSpecs {
			assert.True(t, slugs[slug], "spec slug %s has no catalog product", slug)
		}
	})

	t.Run("Section keys are unique", func(t *testing.T) {
		seen := make(map[string]string)
		for slug, spec := range reportSpecs {
			previous, duplicate := seen[spec.sectionKey]
			assert.False(t, duplicate, "section key %s shared by %s and %s", spec.sectionKey, previous, slug)
			seen[spec.sectionKey] = slug
		}
	})

	t.Run("Prompts carry the birth details and chart", func(t *testing.T) {
		birth := entity.BirthDetails{
			DateOfBirth: "1992-04-17",
			TimeOfBirth: "06:45",
			BirthPlace:  "Mumbai",
		}

		for slug, spec := range reportSpecs {
			prompt := spec.prompt("Ananya Sharma", birth, `{"ascendant":"Leo"}`)
			assert.Contains(t, prompt, "Ananya Sharma", "slug %s", slug)
			assert.Contains(t, prompt, "1992-04-17", "slug %s", slug)
			assert.Contains(t, prompt, `{"ascendant":"Leo"}`, "slug %s", slug)
		}
	})
}

func TestBasicAnalysisPrompt(t *testing.T) {
	birth := entity.BirthDetails{
		DateOfBirth: "1988-11-02",
		TimeOfBirth: "23:10",
		BirthPlace:  "Delhi",
	}

	prompt := basicAnalysisPrompt("Rohan Verma", birth, `{}`)

	assert.Contains(t, prompt, "Rohan Verma")
	assert.Contains(t, prompt, "1988-11-02")
	assert.Contains(t, prompt, "23:10")
	assert.Contains(t, prompt, "Delhi")
}

func TestUserDetailsSchema(t *testing.T) {
	details, ok := userDetailsSchema.Properties["user_details"]
	require.True(t, ok)
	assert.Contains(t, details.Required, "sun_sign")
	assert.Contains(t, details.Required, "moon_sign")
	assert.Contains(t, details.Required, "ascendant")
}
