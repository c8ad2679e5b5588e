package models

import (
	"time"

	"github.com/eco-track/api-go/types"
)

// DaySession is the per-(user, date) aggregate row. The impact columns are
// additive running counters updated only through an atomic upsert
// (INSERT ... ON CONFLICT DO UPDATE SET col = col + delta), never by
// read-modify-write in application code. Sessions are append-only history
// and are never deleted.
//
// The day key is stored as text, not a SQL date: pgx scans date columns into
// time.Time, which database/sql stringifies as RFC3339 and breaks every
// YYYY-MM-DD comparison downstream (streak walk, trend dates). varchar keeps
// the key byte-identical across write and read, and YYYY-MM-DD sorts and
// range-compares correctly as text.
type DaySession struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_day_sessions_user_date" json:"userId"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_day_sessions_user_date" json:"date"`

	Co2eKg           float64 `gorm:"not null;default:0" json:"co2eKg"`
	AvoidedCo2eKg    float64 `gorm:"not null;default:0" json:"avoidedCo2eKg"`
	Kwh              float64 `gorm:"not null;default:0" json:"kwh"`
	WaterLiters      float64 `gorm:"not null;default:0" json:"waterLiters"`
	WaterSavedLiters float64 `gorm:"not null;default:0" json:"waterSavedLiters"`
	WasteKg          float64 `gorm:"not null;default:0" json:"wasteKg"`
	WasteDiverted    float64 `gorm:"not null;default:0" json:"wasteDiverted"`

	GreenPoints    int  `gorm:"not null;default:0" json:"greenPoints"`
	DailyScore     int  `gorm:"not null;default:50" json:"dailyScore"`
	StreakDays     int  `gorm:"not null;default:0" json:"streakDays"`
	DailyCloseDone bool `gorm:"not null;default:false" json:"dailyCloseDone"`

	Goals []Goal `gorm:"foreignKey:DaySessionID" json:"goals"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Totals maps the counter columns into the engine's DayTotals.
func (ds *DaySession) Totals() types.DayTotals {
	return types.DayTotals{
		Co2eKg:           ds.Co2eKg,
		AvoidedCo2eKg:    ds.AvoidedCo2eKg,
		Kwh:              ds.Kwh,
		WaterLiters:      ds.WaterLiters,
		WaterSavedLiters: ds.WaterSavedLiters,
		WasteKg:          ds.WasteKg,
		WasteDiverted:    ds.WasteDiverted,
		GreenPoints:      ds.GreenPoints,
	}
}

// Snapshot maps the session into the ledger's pure input shape.
func (ds *DaySession) Snapshot() types.SessionSnapshot {
	return types.SessionSnapshot{
		Date:       ds.Date,
		Totals:     ds.Totals(),
		DailyScore: ds.DailyScore,
	}
}
