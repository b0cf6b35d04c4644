package tier

import "fmt"

// Policy resolves quotas and features for canonical tiers.
// It is immutable after construction and safe for concurrent use.
type Policy struct {
	limits   Table
	features map[Tier]FeatureSet
}

// NewPolicy builds a policy from a quota table.
// The table must define every canonical tier.
func NewPolicy(table Table) (*Policy, error) {
	limits := make(Table, len(table))
	features := make(map[Tier]FeatureSet, len(table))
	for _, t := range All() {
		q, ok := table[t]
		if !ok {
			return nil, fmt.Errorf("quota table missing tier %q", t)
		}
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("tier %q: %w", t, err)
		}
		limits[t] = q
		features[t] = featuresFor(t)
	}
	return &Policy{limits: limits, features: features}, nil
}

// DefaultPolicy returns a policy over DefaultTable
func DefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultTable())
	if err != nil {
		panic(err)
	}
	return p
}

// LimitsFor returns the quota table of a tier.
// Non-canonical values are normalized first.
func (p *Policy) LimitsFor(t Tier) QuotaTable {
	if !t.IsValid() {
		t = Normalize(string(t))
	}
	return p.limits[t]
}

// FeaturesFor returns a copy of the feature set of a tier
func (p *Policy) FeaturesFor(t Tier) FeatureSet {
	if !t.IsValid() {
		t = Normalize(string(t))
	}
	src := p.features[t]
	out := make(FeatureSet, len(src))
	for f, on := range src {
		out[f] = on
	}
	return out
}

// Resolve normalizes a raw identifier and returns its tier, quotas and features
func (p *Policy) Resolve(raw string) (Tier, QuotaTable, FeatureSet) {
	t := Normalize(raw)
	return t, p.LimitsFor(t), p.FeaturesFor(t)
}
