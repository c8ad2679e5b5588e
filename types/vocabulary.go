package types

import "fmt"

// The backend persists a closed vocabulary: five activity types, each with a
// fixed set of subtypes and units. Requests outside these sets are rejected
// with a 400 before they reach the calculator or the database. The calculator
// itself stays permissive (it also understands the extended client-side
// types), so preview/offline estimation can reuse it with looser input.

var persistedSubtypes = map[string][]string{
	"electricity": {"ac", "fan", "laptop", "led_bulb", "geyser"},
	"water":       {"shower", "bucket", "tap"},
	"waste":       {"plastic_bottle", "plastic_bag", "plastic_container"},
	"materials":   {"used_plastic_item", "used_reusable_item"},
	"flights":     {"domestic_economy", "domestic_business", "short_haul_economy", "short_haul_business", "long_haul_economy", "long_haul_business", "long_haul_first"},
}

var persistedUnits = map[string][]string{
	"electricity": {"hours"},
	"water":       {"minutes", "count"},
	"waste":       {"count"},
	"materials":   {"count"},
	"flights":     {"km"},
}

// ExtendedActivityTypes are understood by the calculator for preview but are
// never persisted by this backend.
var ExtendedActivityTypes = []string{"transport", "food", "shopping", "micro_action", "energy"}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// ValidateLogRequest enforces the strict persisted vocabulary. It returns a
// descriptive error for the API boundary; a nil error means the request is
// safe to calculate and store.
func ValidateLogRequest(req CalcRequest) error {
	subtypes, ok := persistedSubtypes[req.ActivityType]
	if !ok {
		return fmt.Errorf("unknown activity_type %q", req.ActivityType)
	}
	if !contains(subtypes, req.Subtype) {
		return fmt.Errorf("unknown subtype %q for activity_type %q", req.Subtype, req.ActivityType)
	}
	if !contains(persistedUnits[req.ActivityType], req.Unit) {
		return fmt.Errorf("unit %q is not valid for activity_type %q", req.Unit, req.ActivityType)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}

// IsPreviewableActivityType reports whether the permissive calculator knows
// the type at all, persisted or extended.
func IsPreviewableActivityType(activityType string) bool {
	if _, ok := persistedSubtypes[activityType]; ok {
		return true
	}
	return contains(ExtendedActivityTypes, activityType)
}
