package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func calc(t *testing.T, activityType, subtype string, quantity float64, unit string) CalculatedImpact {
	t.Helper()
	return Calculate(CalcRequest{
		ActivityType: activityType,
		Subtype:      subtype,
		Quantity:     quantity,
		Unit:         unit,
	}, DefaultFactorTable())
}

// The known-good scenarios the engine must keep reproducing exactly.
func TestCalculateKnownScenarios(t *testing.T) {
	t.Run("ac two hours", func(t *testing.T) {
		impact := calc(t, "electricity", "ac", 2, "hours")
		assert.InDelta(t, 3.0, impact.Kwh, epsilon)
		assert.InDelta(t, 2.1, impact.Co2eKg, epsilon)
	})

	t.Run("six minute shower", func(t *testing.T) {
		impact := calc(t, "water", "shower", 6, "minutes")
		assert.InDelta(t, 54.0, impact.WaterL, epsilon)
	})

	t.Run("two plastic bottles", func(t *testing.T) {
		impact := calc(t, "waste", "plastic_bottle", 2, "count")
		assert.InDelta(t, 0.04, impact.WasteKg, epsilon)
		assert.InDelta(t, 0.1, impact.Co2eKg, epsilon)
	})

	t.Run("one reusable item", func(t *testing.T) {
		impact := calc(t, "materials", "used_reusable_item", 1, "count")
		require.NotNil(t, impact.SavedCo2eKg)
		assert.InDelta(t, 0.04, *impact.SavedCo2eKg, epsilon)
	})

	t.Run("500km domestic economy flight", func(t *testing.T) {
		impact := calc(t, "flights", "domestic_economy", 500, "km")
		assert.InDelta(t, 127.5, impact.Co2eKg, epsilon)
	})

	t.Run("combined day", func(t *testing.T) {
		totals := FoldDay([]CalculatedImpact{
			calc(t, "electricity", "ac", 2, "hours"),
			calc(t, "water", "shower", 6, "minutes"),
			calc(t, "waste", "plastic_bottle", 2, "count"),
		})
		assert.InDelta(t, 3.0, totals.Kwh, epsilon)
		assert.InDelta(t, 54.0, totals.WaterLiters, epsilon)
		assert.InDelta(t, 0.04, totals.WasteKg, epsilon)
		assert.InDelta(t, 2.2, totals.Co2eKg, epsilon)
	})
}

func TestCalculateIsDeterministic(t *testing.T) {
	ft := DefaultFactorTable()
	requests := []CalcRequest{
		{ActivityType: "electricity", Subtype: "geyser", Quantity: 0.5, Unit: "hours"},
		{ActivityType: "flights", Subtype: "long_haul_first", Quantity: 8000, Unit: "km", RoundTrip: true},
		{ActivityType: "transport", Subtype: "cycle", Quantity: 12, Unit: "km"},
		{ActivityType: "food", Subtype: "vegan", Quantity: 3, Unit: "servings"},
	}
	for _, req := range requests {
		first := Calculate(req, ft)
		second := Calculate(req, ft)
		assert.Equal(t, first.Co2eKg, second.Co2eKg)
		assert.Equal(t, first.Explanation, second.Explanation)
		assert.Equal(t, first.Avoided(), second.Avoided())
	}
}

func TestCalculateNonNegativity(t *testing.T) {
	ft := DefaultFactorTable()
	quantities := []float64{0, 0.001, 1, 17.5, 10000}

	check := func(activityType string, subtypes map[string]float64) {
		for subtype := range subtypes {
			for _, q := range quantities {
				impact := Calculate(CalcRequest{ActivityType: activityType, Subtype: subtype, Quantity: q}, ft)
				label := fmt.Sprintf("%s/%s q=%v", activityType, subtype, q)
				assert.GreaterOrEqual(t, impact.Co2eKg, 0.0, label)
				assert.GreaterOrEqual(t, impact.Kwh, 0.0, label)
				assert.GreaterOrEqual(t, impact.WaterL, 0.0, label)
				assert.GreaterOrEqual(t, impact.WasteKg, 0.0, label)
				assert.GreaterOrEqual(t, impact.Avoided(), 0.0, label)
			}
		}
	}

	check("electricity", ft.DeviceWatts)
	check("water", ft.WaterLitersPerUnit)
	check("waste", ft.PlasticItemKg)
	check("waste", ft.WasteAvoidedKg)
	check("flights", ft.FlightCo2ePerKm)
	check("transport", ft.TransportCo2ePerKm)
	check("food", ft.FoodCo2ePerServing)
	check("shopping", ft.ShoppingItemCo2eKg)
	check("micro_action", ft.MicroActionAvoidedKg)
}

func TestCalculateUnknownInputsNeverFail(t *testing.T) {
	ft := DefaultFactorTable()

	unknownType := Calculate(CalcRequest{ActivityType: "teleportation", Subtype: "beam", Quantity: 1}, ft)
	assert.Zero(t, unknownType.Co2eKg)
	assert.Zero(t, unknownType.Confidence)
	assert.NotEmpty(t, unknownType.Explanation)

	for _, activityType := range []string{"electricity", "water", "waste", "materials", "flights", "transport", "food", "shopping", "micro_action"} {
		impact := Calculate(CalcRequest{ActivityType: activityType, Subtype: "does_not_exist", Quantity: 5}, ft)
		assert.Zero(t, impact.Co2eKg, activityType)
		assert.Zero(t, impact.Confidence, activityType)
		assert.Nil(t, impact.SavedCo2eKg, activityType)
		assert.Contains(t, impact.Explanation, "does_not_exist", activityType)
	}
}

func TestShowerSavings(t *testing.T) {
	short := calc(t, "water", "shower", 6, "minutes")
	assert.InDelta(t, 36.0, short.WaterSavedL, epsilon) // (10-6)*9
	assert.Contains(t, short.Explanation, "saving")

	long := calc(t, "water", "shower", 15, "minutes")
	assert.Zero(t, long.WaterSavedL)

	atBaseline := calc(t, "water", "shower", 10, "minutes")
	assert.Zero(t, atBaseline.WaterSavedL)
}

func TestWasteDiversion(t *testing.T) {
	impact := calc(t, "waste", "recycle", 4, "count")
	assert.Zero(t, impact.Co2eKg)
	require.NotNil(t, impact.SavedCo2eKg)
	assert.InDelta(t, 0.2, *impact.SavedCo2eKg, epsilon)
	assert.InDelta(t, 4.0, impact.WasteDiverted, epsilon)
}

func TestFlightRoundTripDoublesDistance(t *testing.T) {
	ft := DefaultFactorTable()
	oneWay := Calculate(CalcRequest{ActivityType: "flights", Subtype: "short_haul_economy", Quantity: 1200, Unit: "km"}, ft)
	roundTrip := Calculate(CalcRequest{ActivityType: "flights", Subtype: "short_haul_economy", Quantity: 1200, Unit: "km", RoundTrip: true}, ft)
	assert.InDelta(t, oneWay.Co2eKg*2, roundTrip.Co2eKg, epsilon)
	assert.Contains(t, roundTrip.Explanation, "round trip")
}

func TestTransportAvoidedEmissions(t *testing.T) {
	ft := DefaultFactorTable()

	// Low-carbon mode: implicit car_solo baseline
	cycle := Calculate(CalcRequest{ActivityType: "transport", Subtype: "cycle", Quantity: 10, Unit: "km"}, ft)
	assert.Zero(t, cycle.Co2eKg)
	require.NotNil(t, cycle.SavedCo2eKg)
	assert.InDelta(t, 1.92, *cycle.SavedCo2eKg, epsilon)

	// Explicit alternative mode
	bus := Calculate(CalcRequest{ActivityType: "transport", Subtype: "bus", Quantity: 10, Unit: "km", AlternativeMode: "car_shared"}, ft)
	require.NotNil(t, bus.SavedCo2eKg)
	assert.InDelta(t, 10*(96.0-82.0)/1000, *bus.SavedCo2eKg, epsilon)

	// High-carbon mode with no alternative: nothing avoided
	car := Calculate(CalcRequest{ActivityType: "transport", Subtype: "car_solo", Quantity: 10, Unit: "km"}, ft)
	assert.Nil(t, car.SavedCo2eKg)

	// Avoided emissions never go negative
	worse := Calculate(CalcRequest{ActivityType: "transport", Subtype: "car_solo", Quantity: 10, Unit: "km", AlternativeMode: "cycle"}, ft)
	require.NotNil(t, worse.SavedCo2eKg)
	assert.Zero(t, *worse.SavedCo2eKg)
}

func TestFoodBaselineAvoidance(t *testing.T) {
	ft := DefaultFactorTable()

	veg := Calculate(CalcRequest{ActivityType: "food", Subtype: "veg", Quantity: 2, Unit: "servings"}, ft)
	require.NotNil(t, veg.SavedCo2eKg)
	assert.InDelta(t, 2*(1.8-0.5), *veg.SavedCo2eKg, epsilon)

	beef := Calculate(CalcRequest{ActivityType: "food", Subtype: "beef", Quantity: 2, Unit: "servings"}, ft)
	assert.Nil(t, beef.SavedCo2eKg)
	assert.InDelta(t, 12.0, beef.Co2eKg, epsilon)
}

func TestShoppingAvoidance(t *testing.T) {
	ft := DefaultFactorTable()

	thrift := Calculate(CalcRequest{ActivityType: "shopping", Subtype: "thrift", Quantity: 3, Unit: "count"}, ft)
	require.NotNil(t, thrift.SavedCo2eKg)
	assert.InDelta(t, 3*(6.0-0.5), *thrift.SavedCo2eKg, epsilon)

	newClothing := Calculate(CalcRequest{ActivityType: "shopping", Subtype: "new_clothing", Quantity: 1, Unit: "count"}, ft)
	assert.Nil(t, newClothing.SavedCo2eKg)
}

// Explanations are surfaced as the "why" behind each number; they must quote
// the same values the numeric fields carry.
func TestExplanationMatchesComputedValues(t *testing.T) {
	cases := []struct {
		impact   CalculatedImpact
		fragment string
	}{
		{calc(t, "electricity", "ac", 2, "hours"), "3.00 kWh"},
		{calc(t, "electricity", "ac", 2, "hours"), "2.10 kg CO2e"},
		{calc(t, "water", "shower", 6, "minutes"), "54 liters"},
		{calc(t, "flights", "domestic_economy", 500, "km"), "127.5 kg CO2e"},
		{calc(t, "waste", "plastic_bottle", 2, "count"), "0.040 kg plastic"},
	}
	for _, tc := range cases {
		assert.Contains(t, tc.impact.Explanation, tc.fragment)
	}
}
