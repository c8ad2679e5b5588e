package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ShareReport records a period summary exported to object storage so share
// links can be listed and revoked later.
type ShareReport struct {
	gorm.Model
	UserID     uint           `json:"userId" gorm:"not null;index"`
	User       User           `json:"-" gorm:"foreignKey:UserID"`
	PeriodType string         `json:"periodType" gorm:"not null;type:varchar(10)"`
	StartDate  string         `json:"startDate" gorm:"type:date;not null"`
	EndDate    string         `json:"endDate" gorm:"type:date;not null"`
	ObjectKey  string         `json:"objectKey" gorm:"not null;uniqueIndex"`
	PublicURL  string         `json:"publicUrl" gorm:"not null"`
	Highlights pq.StringArray `json:"highlights" gorm:"type:text[]"`
	SharedAt   time.Time      `json:"sharedAt"`
}
