// Package matching decides whether one posting is relevant to one
// subscription. The decision is derived fresh for every pair and never
// persisted: both sides change over time.
package matching

import (
	"strings"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/domain/subscription"

	"github.com/cockroachdb/errors"
)

// Strategy is the single matcher contract both delivery pipelines use.
type Strategy interface {
	Matches(sub *subscription.Subscription, post *posting.Posting) bool
}

// NewStrategy selects the configured scoring strategy. The weighted-fraction
// matcher is canonical; the additive variant is a tunable alternative, never
// a second code path.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "", "weighted":
		return NewWeighted(), nil
	case "additive":
		return NewAdditive(), nil
	default:
		return nil, errors.Newf("unknown match strategy %q", name)
	}
}

const (
	keywordWeight    = 0.6
	locationWeight   = 0.25
	experienceWeight = 0.15
	experienceSoft   = 0.075

	// MatchThreshold is the pass bar for the weighted total.
	MatchThreshold = 0.6
)

// Weighted is the canonical matcher: weighted sub-scores for keyword overlap,
// location affinity and experience affinity, biased strongly toward keywords
// since they carry the subscriber's primary intent. Location and experience
// are softer preferences that cannot by themselves disqualify a strong
// keyword match, which is why missing preferences default to satisfied
// rather than unknown.
type Weighted struct{}

func NewWeighted() *Weighted {
	return &Weighted{}
}

func (m *Weighted) Matches(sub *subscription.Subscription, post *posting.Posting) bool {
	return m.Score(sub, post) >= MatchThreshold
}

// Score returns the relevance total, always in [0,1] and a deterministic
// function of the normalized inputs.
func (m *Weighted) Score(sub *subscription.Subscription, post *posting.Posting) float64 {
	var score float64

	if len(sub.Keywords) == 0 {
		// Absence of a keyword filter is not a rejection reason.
		score += keywordWeight
	} else {
		text := Normalize(post.MatchText())
		matched := 0
		for _, kw := range sub.Keywords {
			if fuzzyContainsNormalized(text, Normalize(kw.Value)) {
				matched++
			}
		}
		score += float64(matched) / float64(len(sub.Keywords)) * keywordWeight
	}

	if sub.Location == "" {
		score += locationWeight
	} else if strings.Contains(Normalize(post.Location), Normalize(sub.Location)) {
		score += locationWeight
	}

	switch {
	case sub.Experience == "":
		score += experienceWeight
	case post.ExperienceText == sub.Experience:
		score += experienceWeight
	default:
		// Unmatched experience is a weak signal, not a hard filter.
		score += experienceSoft
	}

	return score
}
