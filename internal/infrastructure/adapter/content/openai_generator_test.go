package content

import (
	"testing"

	"github.com/astrodash/astro-api/internal/domain/entity"
	"github.com/astrodash/astro-api/internal/infrastructure/config"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasSpec(t *testing.T) {
	t.Run("Every catalog product is covered", func(t *testing.T) {
		for _, product := range entity.Catalog() {
			assert.True(t, HasSpec(product), "slug %s", product.Slug)
		}
	})

	t.Run("Unknown product is not covered", func(t *testing.T) {
		assert.False(t, HasSpec(entity.ReportProduct{Slug: "palmistry-report"}))
	})
}

func TestNewOpenAIGenerator(t *testing.T) {
	t.Run("Startup does not warn when the catalog is fully covered", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		generator := NewOpenAIGenerator(config.OpenAIConfig{
			APIKey: "test-key",
			Model:  "gpt-4o",
		}, mockLogger)

		require.NotNil(t, generator)
	})
}
