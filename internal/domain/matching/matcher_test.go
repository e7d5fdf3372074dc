//go:build unit

package matching_test

import (
	"testing"

	"alert-engine/internal/domain/matching"
	"alert-engine/internal/domain/subscription"
	"alert-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	t.Run("empty name defaults to weighted", func(t *testing.T) {
		s, err := matching.NewStrategy("")
		require.NoError(t, err)
		assert.IsType(t, &matching.Weighted{}, s)
	})

	t.Run("additive is selectable", func(t *testing.T) {
		s, err := matching.NewStrategy("additive")
		require.NoError(t, err)
		assert.IsType(t, &matching.Additive{}, s)
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := matching.NewStrategy("bayesian")
		assert.Error(t, err)
	})
}

func TestWeightedScore(t *testing.T) {
	m := matching.NewWeighted()
	approx := cmpopts.EquateApprox(0, 1e-9)

	t.Run("full alignment scores 1.0", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().Build()
		post := builder.NewPostingBuilder().Build()

		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(1.0, score, approx), "score = %v", score)
		assert.True(t, m.Matches(sub, post))
	})

	t.Run("nothing aligned keeps only the soft experience credit", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().Build()
		post := builder.NewPostingBuilder().
			WithTitle("Java Backend Engineer").
			WithDescription("We need a seasoned JVM engineer for our payments platform.").
			WithLocation("Pune").
			WithExperience("5 years").
			Build()

		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(0.075, score, approx), "score = %v", score)
		assert.False(t, m.Matches(sub, post))
	})

	t.Run("no keywords plus location substring still matches", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithoutKeywords().
			WithLocation("Remote").
			WithExperience("").
			Build()
		post := builder.NewPostingBuilder().
			WithTitle("Data Engineer").
			WithDescription("Own our warehouse pipelines.").
			WithLocation("Remote - India").
			Build()

		assert.True(t, m.Matches(sub, post))
	})

	t.Run("unrestricted alert matches everything", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithoutKeywords().
			WithLocation("").
			WithExperience("").
			Build()
		post := builder.NewPostingBuilder().
			WithTitle("Anything At All").
			WithDescription("Any description.").
			WithLocation("Anywhere").
			WithExperience("20 years").
			Build()

		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(1.0, score, approx), "score = %v", score)
		assert.True(t, m.Matches(sub, post))
	})

	t.Run("partial keyword overlap is prorated", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithKeywordValues("react", "kubernetes").
			WithLocation("").
			WithExperience("").
			Build()
		post := builder.NewPostingBuilder().Build()

		// 1 of 2 keywords hit: 0.5*0.6 + 0.25 + 0.15 = 0.7
		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(0.7, score, approx), "score = %v", score)
		assert.True(t, m.Matches(sub, post))
	})

	t.Run("keyword miss alone falls below the bar", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithKeywordValues("golang").
			Build()
		post := builder.NewPostingBuilder().Build()

		// 0 + 0.25 + 0.15 = 0.4
		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(0.4, score, approx), "score = %v", score)
		assert.False(t, m.Matches(sub, post))
	})

	t.Run("experience mismatch yields half credit", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().WithExperience("5 years").Build()
		post := builder.NewPostingBuilder().Build()

		// 0.6 + 0.25 + 0.075 = 0.925
		score := m.Score(sub, post)
		assert.True(t, cmp.Equal(0.925, score, approx), "score = %v", score)
		assert.True(t, m.Matches(sub, post))
	})

	t.Run("keyword matching tolerates fuzzy spellings", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithKeywordValues("reactjs").
			WithLocation("").
			WithExperience("").
			Build()
		post := builder.NewPostingBuilder().
			WithTitle("React Developer").
			WithDescription("Build our web frontend with react and TypeScript.").
			Build()

		assert.True(t, m.Matches(sub, post))
	})

	t.Run("score is deterministic and bounded", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().Build()
		posts := []struct{ title, desc, loc, exp string }{
			{"React Developer", "react frontend work", "Bangalore, India", "2 years"},
			{"Java Backend Engineer", "spring boot services", "Pune", "5 years"},
			{"Designer", "", "", ""},
		}
		for _, p := range posts {
			post := builder.NewPostingBuilder().
				WithTitle(p.title).
				WithDescription(p.desc).
				WithLocation(p.loc).
				WithExperience(p.exp).
				Build()
			first := m.Score(sub, post)
			second := m.Score(sub, post)
			assert.True(t, cmp.Equal(first, second, approx))
			assert.GreaterOrEqual(t, first, 0.0)
			assert.LessOrEqual(t, first, 1.0)
		}
	})
}

func TestWeightedThreshold(t *testing.T) {
	m := matching.NewWeighted()

	t.Run("keyword credit alone clears the bar", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithLocation("Chennai").
			WithExperience("10 years").
			Build()
		post := builder.NewPostingBuilder().Build()

		// 0.6 + 0 + 0.075 = 0.675 >= 0.6
		assert.True(t, m.Matches(sub, post))
	})

	t.Run("area keywords count like any other kind", func(t *testing.T) {
		sub := builder.NewSubscriptionBuilder().
			WithKeywords(subscription.Keyword{Label: "Frontend", Value: "frontend", Kind: subscription.KindArea}).
			WithLocation("").
			WithExperience("").
			Build()
		post := builder.NewPostingBuilder().
			WithTitle("Frontend Engineer").
			WithDescription("Ship polished web experiences.").
			Build()

		assert.True(t, m.Matches(sub, post))
	})
}
