package content

import (
	"fmt"

	"github.com/astrodash/astro-api/internal/domain/entity"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// reportSpec couples a product's content prompt with the JSON schema the
// completion is constrained to. Specs are keyed by the product's catalog
// slug; the section key is where the generated object lands in the merged
// report content.
type reportSpec struct {
	sectionKey string
	prompt     func(name string, birth entity.BirthDetails, chartJSON string) string
	schema     jsonschema.Definition
}

// Schema construction helpers. Definitions nest deeply; these keep the
// reportSpecs table readable.
func obj(props map[string]jsonschema.Definition, required ...string) jsonschema.Definition {
	return jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: props,
		Required:   required,
	}
}

func str(description string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: description}
}

func num(description string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.Number, Description: description}
}

func arr(items jsonschema.Definition) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.Array, Items: &items}
}

// userDetailsSchema is the basic analysis every report opens with
var userDetailsSchema = obj(map[string]jsonschema.Definition{
	"user_details": obj(map[string]jsonschema.Definition{
		"name":           str(""),
		"dob":            str(""),
		"time_of_birth":  str(""),
		"place_of_birth": str(""),
		"latitude":       str(""),
		"longitude":      str(""),
		"timezone":       str(""),
		"sun_sign":       str(""),
		"moon_sign":      str(""),
		"ascendant":      str(""),
	}, "name", "dob", "time_of_birth", "place_of_birth", "sun_sign", "moon_sign", "ascendant"),
}, "user_details")

// basicAnalysisPrompt asks for the personality analysis shared by all reports
func basicAnalysisPrompt(name string, birth entity.BirthDetails, chartJSON string) string {
	return fmt.Sprintf(`Generate a detailed astrological analysis for %s, born on %s at %s in %s.
Focus on personality traits, core characteristics, and life patterns based on planetary positions.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
}

// reportSpecs maps catalog slugs to their content generation spec
var reportSpecs = map[string]reportSpec{
	"chakra-healing": {
		sectionKey: "chakra_healing_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a personalized chakra healing report for %s, born on %s at %s in %s.
Consider their birth chart placements and current planetary positions to provide specific healing practices.
Include empowering affirmations, sensory therapies, color therapies, donation recommendations, and meditation practices.

Chakra Healing Report Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"overview": str("Summary of the user's energetic constitution"),
			"chakras": arr(obj(map[string]jsonschema.Definition{
				"name":          str(""),
				"sanskrit_name": str(""),
				"status":        str("balanced, underactive or overactive"),
				"analysis":      str(""),
				"affirmations":  arr(str("")),
				"color_therapy": str(""),
				"healing_practices": arr(obj(map[string]jsonschema.Definition{
					"practice":     str(""),
					"frequency":    str(""),
					"instructions": str(""),
				}, "practice", "instructions")),
			}, "name", "sanskrit_name", "status", "analysis")),
			"donation_recommendations": arr(str("")),
			"meditation_practices":     arr(str("")),
		}, "overview", "chakras"),
	},
	"yearly-fortune": {
		sectionKey: "yearly_fortune_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a yearly fortune report for %s, born on %s at %s in %s.
Cover career, finance, health and relationships for the coming year, quarter by quarter,
based on current dashas and transits.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"yearly_overview": str(""),
			"quarterly_predictions": arr(obj(map[string]jsonschema.Definition{
				"quarter":       str(""),
				"career":        str(""),
				"finance":       str(""),
				"health":        str(""),
				"relationships": str(""),
			}, "quarter", "career", "finance", "health", "relationships")),
			"favorable_periods":   arr(str("")),
			"challenging_periods": arr(str("")),
			"remedies":            arr(str("")),
		}, "yearly_overview", "quarterly_predictions"),
	},
	"lucky-13": {
		sectionKey: "lucky_13_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a Lucky 13 report for %s, born on %s at %s in %s.
Calculate the following lucky elements based on numerological principles using birth date (%s):

1. First calculate the birth number (day of birth) and destiny number (sum of full birth date).
2. Based on these numbers, determine thirteen lucky elements such as lucky colors, lucky sounds
for car brands, lucky days, lucky gemstones, lucky directions and lucky metals, each with a brief
description of the selection logic.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, birth.DateOfBirth, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"birth_number":   num("Day of birth reduced to a single digit"),
			"destiny_number": num("Sum of the full birth date reduced to a single digit"),
			"elements": arr(obj(map[string]jsonschema.Definition{
				"element":   str("Which of the 13 lucky elements this is"),
				"values":    arr(str("")),
				"reasoning": str("Selection logic based on the ruling planet"),
			}, "element", "values", "reasoning")),
		}, "birth_number", "destiny_number", "elements"),
	},
	"vedic4": {
		sectionKey: "vedic4_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a traditional Vedic astrology report for %s, born on %s at %s in %s.
Analyze the lagna, planetary positions with nakshatras, the current dasha sequence and
the resulting life-area predictions.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"lagna_analysis": str(""),
			"planetary_positions": arr(obj(map[string]jsonschema.Definition{
				"planet":    str(""),
				"house":     num(""),
				"rashi":     str(""),
				"nakshatra": str(""),
				"analysis":  str(""),
			}, "planet", "house", "rashi", "nakshatra")),
			"dasha_analysis": obj(map[string]jsonschema.Definition{
				"mahadasha":      str(""),
				"antardasha":     str(""),
				"interpretation": str(""),
			}, "mahadasha", "antardasha", "interpretation"),
			"predictions": arr(obj(map[string]jsonschema.Definition{
				"life_area":  str(""),
				"prediction": str(""),
			}, "life_area", "prediction")),
		}, "lagna_analysis", "planetary_positions", "dasha_analysis", "predictions"),
	},
	"wealth-comprehensive": {
		sectionKey: "wealth_score_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a comprehensive wealth score report for %s, born on %s at %s in %s.
Use the following birth chart details and divisional charts:
%s

Analyze all aspects mentioned in the report structure including:
- Financial indicators in birth chart
- Wealth-bearing yogas
- Divisional chart analysis (D1, D2, D4, D9, D10, D60)
- Wealth score calculation
- Remedies and manifestation practices`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"introduction": obj(map[string]jsonschema.Definition{
				"purpose":                    str(""),
				"methodology":                str(""),
				"vedic_astrology_principles": arr(str("")),
			}, "purpose", "methodology", "vedic_astrology_principles"),
			"financial_indicators": obj(map[string]jsonschema.Definition{
				"key_houses": arr(obj(map[string]jsonschema.Definition{
					"house_number": num(""),
					"significance": str(""),
					"lord":         str(""),
					"placement":    str(""),
					"strength":     num(""),
					"prediction":   str(""),
				}, "house_number", "significance", "lord", "prediction")),
				"wealth_yogas": arr(obj(map[string]jsonschema.Definition{
					"name":      str(""),
					"formation": str(""),
					"strength":  num(""),
					"impact":    str(""),
				}, "name", "formation", "impact")),
			}, "key_houses", "wealth_yogas"),
			"divisional_charts": obj(map[string]jsonschema.Definition{
				"d1_analysis":  divisionalChartSchema,
				"d2_analysis":  divisionalChartSchema,
				"d4_analysis":  divisionalChartSchema,
				"d9_analysis":  divisionalChartSchema,
				"d10_analysis": divisionalChartSchema,
				"d60_analysis": divisionalChartSchema,
			}, "d1_analysis", "d2_analysis", "d4_analysis", "d9_analysis", "d10_analysis", "d60_analysis"),
			"wealth_score": obj(map[string]jsonschema.Definition{
				"total_score": num("Overall wealth potential score out of 100"),
				"category_scores": arr(obj(map[string]jsonschema.Definition{
					"category":       str(""),
					"weightage":      num("Importance of this category, all weightages sum to 100"),
					"score":          num("Score out of 20 for this category"),
					"interpretation": str(""),
				}, "category", "weightage", "score", "interpretation")),
				"interpretation": obj(map[string]jsonschema.Definition{
					"tier":        str("Exceptional, Strong, Moderate or Challenging"),
					"description": str(""),
					"potential":   str(""),
				}, "tier", "description", "potential"),
			}, "total_score", "category_scores", "interpretation"),
			"remedies": obj(map[string]jsonschema.Definition{
				"planetary_remedies": arr(obj(map[string]jsonschema.Definition{
					"planet": str(""),
					"gemstone": obj(map[string]jsonschema.Definition{
						"name":                 str(""),
						"wearing_instructions": str(""),
					}, "name", "wearing_instructions"),
					"mantras": arr(obj(map[string]jsonschema.Definition{
						"mantra":      str(""),
						"repetitions": num(""),
					}, "mantra", "repetitions")),
					"charity": arr(str("")),
				}, "planet")),
				"manifestation_practices": arr(obj(map[string]jsonschema.Definition{
					"practice":     str(""),
					"frequency":    str(""),
					"instructions": str(""),
				}, "practice", "frequency", "instructions")),
			}, "planetary_remedies"),
			"career_recommendations": arr(obj(map[string]jsonschema.Definition{
				"field":             str(""),
				"suitability_score": num(""),
				"reasoning":         str(""),
				"best_timing":       str(""),
			}, "field", "suitability_score", "reasoning")),
		}, "introduction", "financial_indicators", "divisional_charts", "wealth_score", "remedies"),
	},
	"wealth": {
		sectionKey: "wealth_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a wealth report for %s, born on %s at %s in %s.
Give a focused overview of financial prospects: income sources, wealth-bearing yogas,
favorable investment periods and practical remedies.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"financial_overview": str(""),
			"income_sources": arr(obj(map[string]jsonschema.Definition{
				"source":    str(""),
				"potential": str(""),
				"timing":    str(""),
			}, "source", "potential")),
			"wealth_yogas": arr(obj(map[string]jsonschema.Definition{
				"name":   str(""),
				"impact": str(""),
			}, "name", "impact")),
			"investment_guidance": arr(str("")),
			"remedies":            arr(str("")),
		}, "financial_overview", "income_sources"),
	},
	"yogas-doshas": {
		sectionKey: "yogas_doshas_report",
		prompt: func(name string, birth entity.BirthDetails, chartJSON string) string {
			return fmt.Sprintf(`Generate a yogas and doshas analysis for %s, born on %s at %s in %s.
Identify every significant yoga and dosha formed in the chart with its formation,
strength, life impact and remedies.

Birth Chart Details:
%s`, name, birth.DateOfBirth, birth.TimeOfBirth, birth.BirthPlace, chartJSON)
		},
		schema: obj(map[string]jsonschema.Definition{
			"yogas": arr(obj(map[string]jsonschema.Definition{
				"name":      str(""),
				"formation": str(""),
				"strength":  num("Strength on a 1-10 scale"),
				"impact":    str(""),
			}, "name", "formation", "impact")),
			"doshas": arr(obj(map[string]jsonschema.Definition{
				"name":     str(""),
				"severity": str("low, medium or high"),
				"effects":  str(""),
				"remedies": arr(str("")),
			}, "name", "severity", "effects")),
			"overall_assessment": str(""),
		}, "yogas", "doshas", "overall_assessment"),
	},
}

// divisionalChartSchema is shared between the D1..D60 analyses of the
// comprehensive wealth report
var divisionalChartSchema = obj(map[string]jsonschema.Definition{
	"analysis":          str(""),
	"wealth_indicators": arr(str("")),
	"rating":            num("Rating on a 1-10 scale"),
	"chart_explanation": str("Detailed explanation of this divisional chart analysis"),
}, "analysis", "rating", "chart_explanation")
