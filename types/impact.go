package types

import (
	"fmt"
)

// CalcRequest is the input to the impact calculator. It is the same shape
// the HTTP layer binds, so the preview endpoint can pass it through as-is.
type CalcRequest struct {
	ActivityType string  `json:"activity_type" binding:"required"`
	Subtype      string  `json:"subtype" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit"`
	// Flights: doubles the distance before applying the factor
	RoundTrip bool `json:"round_trip"`
	// Transport: explicit mode to compare avoided emissions against.
	// Empty means the baseline mode for low-carbon modes, nothing otherwise.
	AlternativeMode string `json:"alternative_mode"`
}

// CalculatedImpact is the quantified result for a single activity.
// Every numeric field defaults to 0 when it does not apply; SavedCo2eKg is
// present only for avoidance-type activities.
type CalculatedImpact struct {
	Co2eKg        float64  `json:"co2e_kg"`
	Kwh           float64  `json:"kwh"`
	WaterL        float64  `json:"water_l"`
	WasteKg       float64  `json:"waste_kg"`
	SavedCo2eKg   *float64 `json:"saved_co2e_kg,omitempty"`
	WaterSavedL   float64  `json:"water_saved_l,omitempty"`
	WasteDiverted float64  `json:"waste_diverted,omitempty"`
	Confidence    float64  `json:"confidence"`
	Explanation   string   `json:"explanation"`
}

// Avoided returns the avoided CO2e, 0 when none was computed.
func (ci CalculatedImpact) Avoided() float64 {
	if ci.SavedCo2eKg == nil {
		return 0
	}
	return *ci.SavedCo2eKg
}

func saved(v float64) *float64 { return &v }

// Calculate converts one logged activity into its environmental impact using
// only the factor table. It is a total function: unknown activity types or
// subtypes produce a zero-impact result with Confidence 0 and an explanatory
// string instead of an error. Strict input checking belongs to the API
// boundary (see ValidateLogRequest), not here.
func Calculate(req CalcRequest, ft *FactorTable) CalculatedImpact {
	switch req.ActivityType {
	case "electricity":
		return calculateElectricity(req.Subtype, req.Quantity, ft)
	case "energy":
		return calculateRawEnergy(req.Quantity, ft)
	case "water":
		return calculateWater(req.Subtype, req.Quantity, ft)
	case "waste":
		return calculateWaste(req.Subtype, req.Quantity, ft)
	case "materials":
		return calculateMaterials(req.Subtype, req.Quantity, ft)
	case "flights":
		return calculateFlight(req.Subtype, req.Quantity, req.RoundTrip, ft)
	case "transport":
		return calculateTransport(req.Subtype, req.Quantity, req.AlternativeMode, ft)
	case "food":
		return calculateFood(req.Subtype, req.Quantity, ft)
	case "shopping":
		return calculateShopping(req.Subtype, req.Quantity, ft)
	case "micro_action":
		return calculateMicroAction(req.Subtype, req.Quantity, ft)
	default:
		return unsupported(fmt.Sprintf("Unsupported activity type %q - no impact recorded", req.ActivityType))
	}
}

func unsupported(explanation string) CalculatedImpact {
	return CalculatedImpact{Confidence: 0, Explanation: explanation}
}

func calculateElectricity(subtype string, hours float64, ft *FactorTable) CalculatedImpact {
	watts, ok := ft.DeviceWatts[subtype]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown electricity device %q - no impact recorded", subtype))
	}
	kwh := watts * hours / 1000
	co2e := kwh * ft.GridCo2ePerKwh
	return CalculatedImpact{
		Kwh:        kwh,
		Co2eKg:     co2e,
		Confidence: 0.9,
		Explanation: fmt.Sprintf("Running %s (%.0f W) for %.1f hours used %.2f kWh, emitting %.2f kg CO2e at a grid factor of %.2f kg/kWh",
			subtype, watts, hours, kwh, co2e, ft.GridCo2ePerKwh),
	}
}

func calculateRawEnergy(kwh float64, ft *FactorTable) CalculatedImpact {
	co2e := kwh * ft.GridCo2ePerKwh
	return CalculatedImpact{
		Kwh:        kwh,
		Co2eKg:     co2e,
		Confidence: 0.95,
		Explanation: fmt.Sprintf("Metered %.2f kWh of electricity, emitting %.2f kg CO2e at a grid factor of %.2f kg/kWh",
			kwh, co2e, ft.GridCo2ePerKwh),
	}
}

func calculateWater(subtype string, quantity float64, ft *FactorTable) CalculatedImpact {
	rate, ok := ft.WaterLitersPerUnit[subtype]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown water activity %q - no impact recorded", subtype))
	}
	liters := quantity * rate

	impact := CalculatedImpact{
		WaterL:     liters,
		Confidence: 0.8,
	}

	switch subtype {
	case "bucket":
		impact.Explanation = fmt.Sprintf("%.0f bucket uses at %.0f L each consumed %.0f liters of water",
			quantity, rate, liters)
	case "shower":
		impact.Explanation = fmt.Sprintf("A %.1f minute shower at %.0f L/min used %.0f liters of water",
			quantity, rate, liters)
		if quantity < ft.BaselineShowerMinutes {
			savedL := (ft.BaselineShowerMinutes - quantity) * rate
			impact.WaterSavedL = savedL
			impact.Explanation += fmt.Sprintf(", saving %.0f liters against a %.0f minute baseline",
				savedL, ft.BaselineShowerMinutes)
		}
	default:
		impact.Explanation = fmt.Sprintf("Running the %s for %.1f minutes at %.0f L/min used %.0f liters of water",
			subtype, quantity, rate, liters)
	}
	return impact
}

func calculateWaste(subtype string, quantity float64, ft *FactorTable) CalculatedImpact {
	if weight, ok := ft.PlasticItemKg[subtype]; ok {
		wasteKg := quantity * weight
		co2e := wasteKg * ft.PlasticCo2eMultiplier
		return CalculatedImpact{
			WasteKg:    wasteKg,
			Co2eKg:     co2e,
			Confidence: 0.75,
			Explanation: fmt.Sprintf("Disposed %.0f x %s (%.3f kg plastic), emitting %.2f kg CO2e embodied carbon",
				quantity, subtype, wasteKg, co2e),
		}
	}
	if avoided, ok := ft.WasteAvoidedKg[subtype]; ok {
		totalAvoided := quantity * avoided
		return CalculatedImpact{
			SavedCo2eKg:   saved(totalAvoided),
			WasteDiverted: quantity,
			Confidence:    0.7,
			Explanation: fmt.Sprintf("Diverted %.0f items via %s, avoiding %.2f kg CO2e",
				quantity, subtype, totalAvoided),
		}
	}
	return unsupported(fmt.Sprintf("Unknown waste activity %q - no impact recorded", subtype))
}

func calculateMaterials(subtype string, quantity float64, ft *FactorTable) CalculatedImpact {
	if impactKg, ok := ft.MaterialsImpactKg[subtype]; ok {
		co2e := quantity * impactKg
		return CalculatedImpact{
			Co2eKg:     co2e,
			Confidence: 0.7,
			Explanation: fmt.Sprintf("Used %.0f single-use plastic items, emitting %.2f kg CO2e",
				quantity, co2e),
		}
	}
	if savedKg, ok := ft.MaterialsSavedKg[subtype]; ok {
		totalSaved := quantity * savedKg
		return CalculatedImpact{
			SavedCo2eKg: saved(totalSaved),
			Confidence:  0.7,
			Explanation: fmt.Sprintf("Chose a reusable item %.0f times, avoiding %.2f kg CO2e",
				quantity, totalSaved),
		}
	}
	return unsupported(fmt.Sprintf("Unknown materials activity %q - no impact recorded", subtype))
}

func calculateFlight(subtype string, distanceKm float64, roundTrip bool, ft *FactorTable) CalculatedImpact {
	perKm, ok := ft.FlightCo2ePerKm[subtype]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown flight class %q - no impact recorded", subtype))
	}
	distance := distanceKm
	if roundTrip {
		distance *= 2
	}
	co2e := distance * perKm
	explanation := fmt.Sprintf("A %.0f km %s flight emitted %.1f kg CO2e (%.3f kg/km, radiative forcing included)",
		distance, subtype, co2e, perKm)
	if roundTrip {
		explanation = fmt.Sprintf("A %.0f km %s round trip emitted %.1f kg CO2e (%.3f kg/km, radiative forcing included)",
			distance, subtype, co2e, perKm)
	}
	return CalculatedImpact{
		Co2eKg:      co2e,
		Confidence:  0.85,
		Explanation: explanation,
	}
}

func calculateTransport(mode string, distanceKm float64, alternativeMode string, ft *FactorTable) CalculatedImpact {
	perKmGrams, ok := ft.TransportCo2ePerKm[mode]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown transport mode %q - no impact recorded", mode))
	}
	co2e := distanceKm * perKmGrams / 1000

	impact := CalculatedImpact{
		Co2eKg:     co2e,
		Confidence: 0.75,
		Explanation: fmt.Sprintf("Travelled %.1f km by %s, emitting %.2f kg CO2e (%.0f g/km)",
			distanceKm, mode, co2e, perKmGrams),
	}

	baseline := alternativeMode
	if baseline == "" && ft.LowCarbonModes[mode] {
		baseline = ft.BaselineTransportMode
	}
	if baseline != "" && baseline != mode {
		if baselineGrams, ok := ft.TransportCo2ePerKm[baseline]; ok {
			avoided := distanceKm*baselineGrams/1000 - co2e
			if avoided < 0 {
				avoided = 0
			}
			impact.SavedCo2eKg = saved(avoided)
			impact.Explanation += fmt.Sprintf(", avoiding %.2f kg CO2e versus %s", avoided, baseline)
		}
	}
	return impact
}

func calculateFood(mealType string, servings float64, ft *FactorTable) CalculatedImpact {
	perServing, ok := ft.FoodCo2ePerServing[mealType]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown meal type %q - no impact recorded", mealType))
	}
	co2e := servings * perServing

	impact := CalculatedImpact{
		Co2eKg:     co2e,
		Confidence: 0.6,
		Explanation: fmt.Sprintf("%.0f %s serving(s) emitted %.2f kg CO2e (%.2f kg each)",
			servings, mealType, co2e, perServing),
	}

	if mealType == "veg" || mealType == "vegan" {
		if baselinePerServing, ok := ft.FoodCo2ePerServing[ft.BaselineMealType]; ok {
			avoided := servings * (baselinePerServing - perServing)
			if avoided < 0 {
				avoided = 0
			}
			impact.SavedCo2eKg = saved(avoided)
			impact.Explanation += fmt.Sprintf(", avoiding %.2f kg CO2e versus %s", avoided, ft.BaselineMealType)
		}
	}
	return impact
}

func calculateShopping(itemType string, quantity float64, ft *FactorTable) CalculatedImpact {
	perItem, ok := ft.ShoppingItemCo2eKg[itemType]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown shopping type %q - no impact recorded", itemType))
	}
	co2e := quantity * perItem

	impact := CalculatedImpact{
		Co2eKg:     co2e,
		Confidence: 0.5,
		Explanation: fmt.Sprintf("Bought %.0f %s item(s), emitting %.2f kg CO2e (%.2f kg each)",
			quantity, itemType, co2e, perItem),
	}

	if ft.AvoidanceShoppingTypes[itemType] {
		avoided := quantity * (ft.ShoppingCo2ePerItem - perItem)
		if avoided < 0 {
			avoided = 0
		}
		impact.SavedCo2eKg = saved(avoided)
		impact.Explanation += fmt.Sprintf(", avoiding %.2f kg CO2e versus buying new (%.2f kg/item baseline)",
			avoided, ft.ShoppingCo2ePerItem)
	}
	return impact
}

func calculateMicroAction(action string, count float64, ft *FactorTable) CalculatedImpact {
	perAction, ok := ft.MicroActionAvoidedKg[action]
	if !ok {
		return unsupported(fmt.Sprintf("Unknown micro action %q - no impact recorded", action))
	}
	totalAvoided := count * perAction
	return CalculatedImpact{
		SavedCo2eKg: saved(totalAvoided),
		Confidence:  0.6,
		Explanation: fmt.Sprintf("Did %s %.0f time(s), avoiding %.3f kg CO2e",
			action, count, totalAvoided),
	}
}
