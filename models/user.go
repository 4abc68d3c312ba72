package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ScoreVector holds the five quiz category totals keyed by category code.
type ScoreVector map[string]int

func (s ScoreVector) Value() (driver.Value, error) {
	if s == nil {
		s = ScoreVector{}
	}
	return json.Marshal(s)
}

func (s *ScoreVector) Scan(value interface{}) error {
	if value == nil {
		*s = ScoreVector{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported score vector column type")
	}
	return json.Unmarshal(raw, s)
}

type User struct {
	gorm.Model
	UserID   string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	FullName string

	// Quiz outcome. CareerInterest is the mapped category slug ("software",
	// "health", ...) that drives daily tasks and program recommendations.
	CareerInterest string
	QuizScores     ScoreVector `gorm:"type:jsonb"`

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
