package subscription

import "time"

// Status discriminates subscription eligibility in a single check instead of
// independent verified/deleted flags that could disagree.
type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusActive              Status = "active"
	StatusDeleted             Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingVerification, StatusActive, StatusDeleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Frequency selects which scheduled digest run processes the subscription.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

func NewFrequency(s string) (Frequency, error) {
	freq := Frequency(s)
	if !freq.IsValid() {
		return "", ErrInvalidFrequency
	}
	return freq, nil
}

// Lookback is the first-run window used when a subscription has no
// notification cursor yet: 24h for daily, 168h for weekly.
func (f Frequency) Lookback() time.Duration {
	if f == FrequencyWeekly {
		return 168 * time.Hour
	}
	return 24 * time.Hour
}

// KeywordKind tags what a keyword term is about.
type KeywordKind string

const (
	KindRole KeywordKind = "role"
	KindTech KeywordKind = "tech"
	KindArea KeywordKind = "area"
)

func (k KeywordKind) IsValid() bool {
	switch k {
	case KindRole, KindTech, KindArea:
		return true
	default:
		return false
	}
}
