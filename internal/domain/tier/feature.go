package tier

import "sort"

// Feature is a named capability
type Feature string

const (
	FeatureVideoTranscription      Feature = "videoTranscription"
	FeatureBasicEmailGeneration    Feature = "basicEmailGeneration"
	FeatureContentLibrary          Feature = "contentLibrary"
	FeatureBasicSupport            Feature = "basicSupport"
	FeatureAdvancedEmailGeneration Feature = "advancedEmailGeneration"
	FeatureBulkOperations          Feature = "bulkOperations"
	FeaturePrioritySupport         Feature = "prioritySupport"
	FeatureCustomBranding          Feature = "customBranding"
	FeatureAPIAccess               Feature = "apiAccess"
	FeatureTeamFeatures            Feature = "teamFeatures"
	FeatureDedicatedSupport        Feature = "dedicatedSupport"
	FeatureAdminPanel              Feature = "adminPanel"
	FeatureSystemManagement        Feature = "systemManagement"
	FeatureUserManagement          Feature = "userManagement"
	FeatureAnalytics               Feature = "analytics"
)

// minimumTier is the lowest tier that unlocks each feature.
// A tier gets every feature whose minimum it meets, so higher tiers are
// always supersets of lower ones.
var minimumTier = map[Feature]Tier{
	FeatureVideoTranscription:      Free,
	FeatureBasicEmailGeneration:    Free,
	FeatureContentLibrary:          Free,
	FeatureBasicSupport:            Free,
	FeatureAdvancedEmailGeneration: Gold,
	FeatureBulkOperations:          Gold,
	FeaturePrioritySupport:         Gold,
	FeatureCustomBranding:          Enterprise,
	FeatureAPIAccess:               Enterprise,
	FeatureTeamFeatures:            Enterprise,
	FeatureDedicatedSupport:        Enterprise,
	FeatureAdminPanel:              SuperAdmin,
	FeatureSystemManagement:        SuperAdmin,
	FeatureUserManagement:          SuperAdmin,
	FeatureAnalytics:               SuperAdmin,
}

// AllFeatures returns every known feature, sorted
func AllFeatures() []Feature {
	out := make([]Feature, 0, len(minimumTier))
	for f := range minimumTier {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FeatureSet is a boolean capability map covering every known feature
type FeatureSet map[Feature]bool

// Has returns true if the feature is enabled
func (s FeatureSet) Has(f Feature) bool {
	return s[f]
}

// Enabled returns the enabled features, sorted
func (s FeatureSet) Enabled() []Feature {
	out := make([]Feature, 0, len(s))
	for f, on := range s {
		if on {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains returns true if every feature enabled in other is enabled in s
func (s FeatureSet) Contains(other FeatureSet) bool {
	for f, on := range other {
		if on && !s[f] {
			return false
		}
	}
	return true
}

func featuresFor(t Tier) FeatureSet {
	set := make(FeatureSet, len(minimumTier))
	for f, floor := range minimumTier {
		set[f] = t.IsValid() && t.AtLeast(floor)
	}
	return set
}
