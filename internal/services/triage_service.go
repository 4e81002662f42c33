package services

import (
	"strings"

	"carebuilds/internal/catalog"
	"carebuilds/internal/models/response_models"
)

const (
	introOverwhelm = "I understand you're feeling overwhelmed. This is a common experience, and there are proven strategies that can help you regain control and find balance."
	introAnxiety   = "Anxiety can be challenging, but it's manageable with the right tools and support. Let's work together on strategies that have helped many people in similar situations."
	introStress    = "Stress is a natural response, but chronic stress can impact your well-being. These evidence-based techniques will help you develop healthier coping mechanisms."
	introGeneric   = "Thank you for sharing your experience. Here's a personalized plan designed to help you work through these challenges step by step."
)

type introRule struct {
	keywords []string
	message  string
}

// Evaluated in order; the first rule with a matching keyword wins.
var introRules = []introRule{
	{keywords: []string{"overwhelmed"}, message: introOverwhelm},
	{keywords: []string{"anxious", "anxiety"}, message: introAnxiety},
	{keywords: []string{"stress"}, message: introStress},
}

type TriageEngine interface {
	GeneratePlan(freeText, category string) response_models.PlanDocument
}

type triageEngine struct {
	catalog *catalog.Catalog
}

func NewTriageEngine(c *catalog.Catalog) TriageEngine {
	return &triageEngine{catalog: c}
}

// GeneratePlan picks the template for category and attaches an introduction
// chosen from the wording of freeText. The result never aliases the catalog.
func (t *triageEngine) GeneratePlan(freeText, category string) response_models.PlanDocument {
	key := t.catalog.Resolve(category)

	return response_models.PlanDocument{
		Template:          t.catalog.Lookup(key).Clone(),
		PersonalizedIntro: personalizedIntro(freeText),
		Category:          key,
	}
}

func personalizedIntro(freeText string) string {
	text := strings.ToLower(freeText)
	for _, rule := range introRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.message
			}
		}
	}
	return introGeneric
}
