package models

import "gorm.io/gorm"

type Goal struct {
	gorm.Model
	DaySessionID uint   `json:"daySessionId" gorm:"not null;index"`
	Text         string `json:"text" gorm:"not null;type:varchar(200)"`
	Category     string `json:"category" gorm:"type:varchar(30)"` // matches an activity type
	Completed    bool   `json:"completed" gorm:"not null;default:false"`
}
