package models

import (
	"gorm.io/gorm"

	"github.com/eco-track/api-go/types"
)

// ActivityLog is one logged activity together with its calculated impact.
// Rows are immutable once created; the only mutation is (soft) deletion,
// which subtracts the stored impact from the owning day session.
type ActivityLog struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"not null;index:idx_activity_logs_user_date"`
	User   User `json:"-" gorm:"foreignKey:UserID"`

	// Text day key, same reasoning as DaySession.Date
	Date string `json:"date" gorm:"type:varchar(10);not null;index:idx_activity_logs_user_date"`

	ActivityType string  `json:"activityType" gorm:"not null;type:varchar(30)"`
	Subtype      string  `json:"subtype" gorm:"not null;type:varchar(50)"`
	Quantity     float64 `json:"quantity" gorm:"not null"`
	Unit         string  `json:"unit" gorm:"not null;type:varchar(20)"`
	RoundTrip    bool    `json:"roundTrip" gorm:"default:false"`

	// Calculated impact, flattened so day totals can be rebuilt by replay
	Co2eKg        float64  `json:"co2eKg" gorm:"not null;default:0"`
	Kwh           float64  `json:"kwh" gorm:"not null;default:0"`
	WaterL        float64  `json:"waterL" gorm:"not null;default:0"`
	WasteKg       float64  `json:"wasteKg" gorm:"not null;default:0"`
	SavedCo2eKg   *float64 `json:"savedCo2eKg"`
	WaterSavedL   float64  `json:"waterSavedL" gorm:"not null;default:0"`
	WasteDiverted float64  `json:"wasteDiverted" gorm:"not null;default:0"`
	Confidence    float64  `json:"confidence" gorm:"not null;default:0"`
	Explanation   string   `json:"explanation" gorm:"type:text"`

	Source string `json:"source" gorm:"type:varchar(30)"` // "api", "import"
}

// Impact reconstructs the calculated impact stored on the row.
func (al *ActivityLog) Impact() types.CalculatedImpact {
	return types.CalculatedImpact{
		Co2eKg:        al.Co2eKg,
		Kwh:           al.Kwh,
		WaterL:        al.WaterL,
		WasteKg:       al.WasteKg,
		SavedCo2eKg:   al.SavedCo2eKg,
		WaterSavedL:   al.WaterSavedL,
		WasteDiverted: al.WasteDiverted,
		Confidence:    al.Confidence,
		Explanation:   al.Explanation,
	}
}
