// Package posting holds the read-only view of a published job opening. The
// authoring side owns its lifecycle; this core only matches and delivers it.
package posting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Name    string
	LogoURL string
}

type Posting struct {
	ID               uuid.UUID
	Title            string
	ShortDescription string
	Description      string
	Location         string
	ExperienceText   string
	EmploymentType   string
	ApplyURL         string
	CreatedAt        time.Time
	Organization     Organization
}

// MatchText is the haystack keyword terms are scored against.
func (p *Posting) MatchText() string {
	return p.Title + " " + p.Description
}

// CityPrefix returns the first comma-separated segment of the location,
// e.g. "Bangalore" for "Bangalore, India". Used by the cheap realtime
// prefilter, never by the matcher itself.
func (p *Posting) CityPrefix() string {
	city, _, _ := strings.Cut(p.Location, ",")
	return strings.TrimSpace(city)
}
