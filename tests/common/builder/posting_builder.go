package builder

import (
	"time"

	"alert-engine/internal/domain/posting"

	"github.com/google/uuid"
)

// PostingBuilder builds a posting that matches the default subscription of
// SubscriptionBuilder.
type PostingBuilder struct {
	id          uuid.UUID
	title       string
	shortDesc   string
	description string
	location    string
	experience  string
	employment  string
	applyURL    string
	createdAt   time.Time
	orgName     string
}

func NewPostingBuilder() *PostingBuilder {
	return &PostingBuilder{
		id:          uuid.New(),
		title:       "React Developer",
		shortDesc:   "Build delightful UIs",
		description: "We are hiring a React developer to build our frontend.",
		location:    "Bangalore, India",
		experience:  "2 years",
		employment:  "full-time",
		applyURL:    "https://acme.example.com/careers/react-developer",
		createdAt:   time.Now(),
		orgName:     "Acme",
	}
}

func (b *PostingBuilder) WithID(id uuid.UUID) *PostingBuilder {
	b.id = id
	return b
}

func (b *PostingBuilder) WithTitle(title string) *PostingBuilder {
	b.title = title
	return b
}

func (b *PostingBuilder) WithDescription(desc string) *PostingBuilder {
	b.description = desc
	return b
}

func (b *PostingBuilder) WithLocation(loc string) *PostingBuilder {
	b.location = loc
	return b
}

func (b *PostingBuilder) WithExperience(exp string) *PostingBuilder {
	b.experience = exp
	return b
}

func (b *PostingBuilder) WithCreatedAt(t time.Time) *PostingBuilder {
	b.createdAt = t
	return b
}

func (b *PostingBuilder) WithOrganization(name string) *PostingBuilder {
	b.orgName = name
	return b
}

func (b *PostingBuilder) Build() *posting.Posting {
	return &posting.Posting{
		ID:               b.id,
		Title:            b.title,
		ShortDescription: b.shortDesc,
		Description:      b.description,
		Location:         b.location,
		ExperienceText:   b.experience,
		EmploymentType:   b.employment,
		ApplyURL:         b.applyURL,
		CreatedAt:        b.createdAt,
		Organization:     posting.Organization{Name: b.orgName},
	}
}
