package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebuilds/internal/catalog"
)

func TestGeneratePlanIntroPriority(t *testing.T) {
	engine := NewTriageEngine(catalog.Default())

	cases := []struct {
		name string
		text string
		want string
	}{
		{"overwhelm wins over anxiety", "I feel overwhelmed and anxious", introOverwhelm},
		{"anxiety", "So much ANXIETY lately", introAnxiety},
		{"anxious", "I'm anxious about tomorrow", introAnxiety},
		{"stress", "work stress is killing me", introStress},
		{"substring match", "stressful week", introStress},
		{"default", "I just feel off", introGeneric},
		{"empty", "", introGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := engine.GeneratePlan(tc.text, catalog.Health)
			assert.Equal(t, tc.want, plan.PersonalizedIntro)
		})
	}
}

func TestGeneratePlanResolvesCategory(t *testing.T) {
	engine := NewTriageEngine(catalog.Default())

	upper := engine.GeneratePlan("stress", "Work")
	lower := engine.GeneratePlan("stress", "work")
	assert.Equal(t, lower, upper)
	assert.Equal(t, catalog.Work, upper.Category)
	assert.Equal(t, "Managing Work Stress and Burnout", upper.Title)

	unknown := engine.GeneratePlan("hello", "astrology")
	assert.Equal(t, catalog.Personal, unknown.Category)
	assert.Equal(t, catalog.Default().Lookup(catalog.Personal).Title, unknown.Title)
}

func TestGeneratePlanDoesNotLeakIntoCatalog(t *testing.T) {
	c := catalog.Default()
	engine := NewTriageEngine(c)

	plan := engine.GeneratePlan("stress", catalog.Family)
	require.NotEmpty(t, plan.Steps)
	plan.Steps[0].Title = "mutated"
	plan.Steps[0].Activities[0] = "mutated"

	again := engine.GeneratePlan("stress", catalog.Family)
	assert.NotEqual(t, "mutated", again.Steps[0].Title)
	assert.NotEqual(t, "mutated", again.Steps[0].Activities[0])
}
