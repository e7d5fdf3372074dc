package matching

import (
	"strings"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/domain/subscription"
)

// synonyms expands common keyword spellings so "react" also credits postings
// that only say "reactjs" or "frontend".
var synonyms = map[string][]string{
	"react":      {"reactjs", "frontend", "ui"},
	"node":       {"nodejs", "express", "nestjs"},
	"javascript": {"js"},
	"backend":    {"server", "api"},
	"mongodb":    {"mongo", "nosql"},
	"bangalore":  {"bengaluru", "blr"},
	"fresher":    {"junior", "entry", "0-1"},
}

const (
	rolePoints  = 5
	techPoints  = 3
	areaPoints  = 2
	bonusPoints = 2

	// AdditiveThreshold is the fixed pass bar for the point total.
	AdditiveThreshold = 6
)

// Additive scores keyword tokens per kind against title or description, with
// synonym expansion and flat location/experience bonuses. Selectable via
// MATCH_STRATEGY=additive.
type Additive struct{}

func NewAdditive() *Additive {
	return &Additive{}
}

func (m *Additive) Matches(sub *subscription.Subscription, post *posting.Posting) bool {
	return m.Score(sub, post) >= AdditiveThreshold
}

func (m *Additive) Score(sub *subscription.Subscription, post *posting.Posting) int {
	title := Normalize(post.Title)
	desc := Normalize(post.Description)

	var score int
	for _, kw := range sub.Keywords {
		tokens := strings.Fields(Normalize(kw.Value))
		switch kw.Kind {
		case subscription.KindRole:
			score += scoreTokens(title, tokens, rolePoints)
		case subscription.KindTech:
			score += scoreTokens(desc, tokens, techPoints)
		case subscription.KindArea:
			score += scoreTokens(title, tokens, areaPoints)
		}
	}

	if sub.Location != "" && strings.Contains(Normalize(post.Location), Normalize(sub.Location)) {
		score += bonusPoints
	}
	if sub.Experience != "" && strings.Contains(Normalize(post.ExperienceText), Normalize(sub.Experience)) {
		score += bonusPoints
	}

	return score
}

func scoreTokens(text string, tokens []string, base int) int {
	var score int
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			score += base
		}
		for _, syn := range synonyms[tok] {
			if strings.Contains(text, syn) {
				score += base - 1
			}
		}
	}
	return score
}
