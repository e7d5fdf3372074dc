package subscription

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidStatus    = errors.New("invalid subscription status")
	ErrInvalidFrequency = errors.New("invalid digest frequency")
	ErrEmptyKeyword     = errors.New("keyword value cannot be empty")
	ErrInvalidKeyword   = errors.New("invalid keyword kind")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored lowercased; digests address the subscriber by it.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Keyword is one term of the subscription's matching criteria.
type Keyword struct {
	Label string      `json:"label"`
	Value string      `json:"value"`
	Kind  KeywordKind `json:"kind"`
}

func NewKeyword(label, value string, kind KeywordKind) (Keyword, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Keyword{}, ErrEmptyKeyword
	}
	if !kind.IsValid() {
		return Keyword{}, ErrInvalidKeyword
	}
	if label == "" {
		label = value
	}
	return Keyword{Label: label, Value: value, Kind: kind}, nil
}

// PushRegistration is the subscriber's live browser push channel. Absent
// (nil) means the subscriber relies on the digest path alone.
type PushRegistration struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

func (r *PushRegistration) IsUsable() bool {
	return r != nil && r.Endpoint != "" && r.P256dh != "" && r.Auth != ""
}
