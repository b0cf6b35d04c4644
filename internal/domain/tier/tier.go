package tier

import "strings"

// Tier is a canonical subscription tier
type Tier string

const (
	Free       Tier = "free"
	Gold       Tier = "gold"
	Enterprise Tier = "enterprise"
	SuperAdmin Tier = "superAdmin"
)

// All returns every canonical tier in ascending priority order
func All() []Tier {
	return []Tier{Free, Gold, Enterprise, SuperAdmin}
}

// aliases is keyed by lower-cased, trimmed input.
// New aliases must map onto one of the four constants above.
var aliases = map[string]Tier{
	"free":        Free,
	"basic":       Free,
	"starter":     Free,
	"gold":        Gold,
	"pro":         Gold,
	"premium":     Gold,
	"enterprise":  Enterprise,
	"platinum":    Enterprise,
	"business":    Enterprise,
	"superadmin":  SuperAdmin,
	"super_admin": SuperAdmin,
	"super-admin": SuperAdmin,
	"admin":       SuperAdmin,
}

// Normalize maps any raw tier identifier onto a canonical tier.
// Unknown and empty input resolve to Free.
func Normalize(raw string) Tier {
	if t, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t
	}
	return Free
}

// IsValid returns true if t is one of the canonical tiers
func (t Tier) IsValid() bool {
	switch t {
	case Free, Gold, Enterprise, SuperAdmin:
		return true
	}
	return false
}

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// Priority orders tiers; higher is more privileged
func (t Tier) Priority() int {
	switch t {
	case SuperAdmin:
		return 100
	case Enterprise:
		return 80
	case Gold:
		return 60
	case Free:
		return 40
	}
	return 0
}

// AtLeast returns true if t ranks at or above other
func (t Tier) AtLeast(other Tier) bool {
	return t.Priority() >= other.Priority()
}

// DisplayName returns the user-facing name
func (t Tier) DisplayName() string {
	switch t {
	case Gold:
		return "Gold"
	case Enterprise:
		return "Enterprise"
	case SuperAdmin:
		return "Super Admin"
	}
	return "Free"
}

// Color returns the badge color tag
func (t Tier) Color() string {
	switch t {
	case Gold:
		return "yellow"
	case Enterprise:
		return "purple"
	case SuperAdmin:
		return "red"
	}
	return "gray"
}

// Description returns a one-line summary of the tier
func (t Tier) Description() string {
	switch t {
	case Gold:
		return "Enhanced features for growing businesses"
	case Enterprise:
		return "Full-featured solution for large organizations"
	case SuperAdmin:
		return "Complete system access and management"
	}
	return "Basic features for getting started"
}

// UpgradeSuggestion returns the next tier a user can move to.
// The second value is false when no self-service upgrade exists.
func (t Tier) UpgradeSuggestion() (Tier, bool) {
	switch t {
	case Free:
		return Gold, true
	case Gold:
		return Enterprise, true
	}
	return "", false
}
