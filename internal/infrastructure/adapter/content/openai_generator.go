package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/client"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/config"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"golang.org/x/sync/errgroup"
)

const systemPrompt = "You are an expert Vedic astrologer producing structured report content. " +
	"Ground every statement in the supplied birth chart data."

// OpenAIGenerator implements client.ContentGenerator on the OpenAI chat
// completion API with schema-constrained responses
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      coreport.Logger
}

// NewOpenAIGenerator creates a content generator from configuration. A
// catalog product without a registered content spec can only fail at
// generation time, so coverage gaps are surfaced here.
func NewOpenAIGenerator(cfg config.OpenAIConfig, logger coreport.Logger) *OpenAIGenerator {
	for _, product := range entity.Catalog() {
		if !HasSpec(product) {
			logger.Warn("Catalog product has no content spec", map[string]any{
				"slug": product.Slug,
			})
		}
	}
	return &OpenAIGenerator{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		logger:      logger,
	}
}

// Generate produces the report content for the request's product. The basic
// analysis and the product-specific section are independent, so they run as
// two concurrent completions and merge afterwards.
func (g *OpenAIGenerator) Generate(ctx context.Context, req client.ContentRequest) (client.ReportContent, error) {
	spec, ok := reportSpecs[req.Product.Slug]
	if !ok {
		return nil, errs.ErrUnknownReportType
	}

	chartJSON, err := json.MarshalIndent(map[string]any(req.Chart), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encoding chart: %s", errs.ErrContentGeneration, err.Error())
	}

	g.logger.Debug("Generating report content", map[string]any{
		"slug":  req.Product.Slug,
		"model": g.model,
	})

	genCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var basic, section map[string]any
	group, groupCtx := errgroup.WithContext(genCtx)
	group.Go(func() error {
		var err error
		basic, err = g.complete(groupCtx, "basic_analysis",
			basicAnalysisPrompt(req.Name, req.Birth, string(chartJSON)), userDetailsSchema)
		return err
	})
	group.Go(func() error {
		var err error
		section, err = g.complete(groupCtx, spec.sectionKey,
			spec.prompt(req.Name, req.Birth, string(chartJSON)), spec.schema)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	content := make(client.ReportContent, len(basic)+2)
	for k, v := range basic {
		content[k] = v
	}
	content[spec.sectionKey] = section
	if kundli, ok := req.Chart["kundli"]; ok {
		content["kundli_data"] = kundli
	}

	g.logger.Info("Report content generated", map[string]any{
		"slug": req.Product.Slug,
	})
	return content, nil
}

// complete runs one schema-constrained chat completion and decodes the
// resulting JSON object
func (g *OpenAIGenerator) complete(ctx context.Context, name, prompt string, schema jsonschema.Definition) (map[string]any, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &schema,
			},
		},
	})
	if err != nil {
		g.logger.Error("OpenAI completion failed", map[string]any{
			"section": name,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrContentGeneration, err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion returned no choices", errs.ErrContentGeneration)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &decoded); err != nil {
		g.logger.Error("OpenAI completion returned invalid JSON", map[string]any{
			"section": name,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: decoding completion: %s", errs.ErrContentGeneration, err.Error())
	}
	return decoded, nil
}

// HasSpec reports whether a catalog product has a content spec registered
func HasSpec(product entity.ReportProduct) bool {
	_, ok := reportSpecs[product.Slug]
	return ok
}
