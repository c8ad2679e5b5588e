package types

// FactorTable holds every emission and consumption factor the impact
// calculators read. It is built once at startup and injected into the
// calculators; nothing mutates it afterwards, so alternate regional tables
// can be swapped in for testing without touching the engine.
type FactorTable struct {
	Version string

	// Grid carbon intensity, kg CO2e per kWh
	GridCo2ePerKwh float64

	// Nameplate power draw per electricity subtype, watts
	DeviceWatts map[string]float64

	// Liters per minute (shower, tap) or per use (bucket)
	WaterLitersPerUnit map[string]float64

	// Minutes below which a shower counts water as saved
	BaselineShowerMinutes float64

	// Mass per disposed plastic item, kg
	PlasticItemKg map[string]float64

	// Embodied-carbon proxy multiplier applied to plastic mass
	PlasticCo2eMultiplier float64

	// Avoided CO2e per diverted item (recycle, compost, reuse, donate, refuse), kg
	WasteAvoidedKg map[string]float64

	MaterialsImpactKg map[string]float64
	MaterialsSavedKg  map[string]float64

	// Per-passenger-km flight factors keyed by cabin/haul class, kg CO2e/km.
	// Radiative forcing is already included.
	FlightCo2ePerKm map[string]float64

	// Ground transport factors, grams CO2e per km
	TransportCo2ePerKm map[string]float64
	// Modes whose avoided emissions are computed against BaselineTransportMode
	LowCarbonModes map[string]bool
	// Fallback mode for avoided-emission comparisons
	BaselineTransportMode string

	FoodCo2ePerServing map[string]float64
	BaselineMealType   string

	ShoppingCo2ePerItem    float64 // fallback and avoidance baseline, kg per item
	ShoppingItemCo2eKg     map[string]float64
	AvoidanceShoppingTypes map[string]bool

	// Small everyday avoidance actions, kg CO2e each
	MicroActionAvoidedKg map[string]float64
}

// DefaultFactorTable returns the factor set the backend ships with.
// These values are regression-locked by tests; changing any of them is a
// data migration, not a code tweak.
func DefaultFactorTable() *FactorTable {
	return &FactorTable{
		Version: "in-2024.1",

		GridCo2ePerKwh: 0.7,

		DeviceWatts: map[string]float64{
			"ac":       1500,
			"fan":      60,
			"laptop":   60,
			"led_bulb": 10,
			"geyser":   2000,
		},

		WaterLitersPerUnit: map[string]float64{
			"shower": 9,  // L/min
			"bucket": 15, // L/use
			"tap":    6,  // L/min
		},
		BaselineShowerMinutes: 10,

		PlasticItemKg: map[string]float64{
			"plastic_bottle":    0.02,
			"plastic_bag":       0.005,
			"plastic_container": 0.03,
		},
		PlasticCo2eMultiplier: 2.5,

		WasteAvoidedKg: map[string]float64{
			"recycle": 0.05,
			"compost": 0.08,
			"reuse":   0.06,
			"donate":  0.5,
			"refuse":  0.012,
		},

		MaterialsImpactKg: map[string]float64{
			"used_plastic_item": 0.05,
		},
		MaterialsSavedKg: map[string]float64{
			"used_reusable_item": 0.04,
		},

		FlightCo2ePerKm: map[string]float64{
			"domestic_economy":    0.255,
			"domestic_business":   0.382,
			"short_haul_economy":  0.156,
			"short_haul_business": 0.234,
			"long_haul_economy":   0.150,
			"long_haul_business":  0.430,
			"long_haul_first":     0.600,
		},

		TransportCo2ePerKm: map[string]float64{
			"walk":          0,
			"cycle":         0,
			"metro":         30,
			"train":         41,
			"bus":           82,
			"auto_rickshaw": 65,
			"motorbike":     95,
			"car_shared":    96,
			"car_solo":      192,
			"ev_car":        53,
		},
		LowCarbonModes: map[string]bool{
			"walk":  true,
			"cycle": true,
			"metro": true,
			"bus":   true,
		},
		BaselineTransportMode: "car_solo",

		FoodCo2ePerServing: map[string]float64{
			"vegan":   0.3,
			"veg":     0.5,
			"egg":     0.9,
			"fish":    1.4,
			"chicken": 1.8,
			"mutton":  5.0,
			"beef":    6.0,
		},
		BaselineMealType: "chicken",

		ShoppingCo2ePerItem: 6.0,
		ShoppingItemCo2eKg: map[string]float64{
			"new_clothing":    6.0,
			"electronics":     25.0,
			"online_delivery": 2.5,
			"thrift":          0.5,
			"local":           1.0,
		},
		AvoidanceShoppingTypes: map[string]bool{
			"thrift": true,
			"local":  true,
		},

		MicroActionAvoidedKg: map[string]float64{
			"carried_bottle":      0.04,
			"carried_bag":         0.012,
			"refused_straw":       0.002,
			"switched_off_lights": 0.035,
			"unplugged_devices":   0.05,
		},
	}
}
