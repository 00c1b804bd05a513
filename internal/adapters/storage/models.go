package storage

import "time"

// VisitModel is the GORM model for the visit history table
type VisitModel struct {
	CreatedAt  time.Time
	LastVisit  time.Time `gorm:"not null;index:idx_last_visit"`
	Path       string    `gorm:"primaryKey"`
	UpdatedAt  time.Time
	VisitCount int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (VisitModel) TableName() string { return "visits" }

// ResurrectableModel is the GORM model for killed sessions that can be
// recreated later
type ResurrectableModel struct {
	CreatedAt  time.Time
	LastSeen   time.Time `gorm:"not null"`
	Name       string    `gorm:"primaryKey"`
	UpdatedAt  time.Time
	WorkingDir string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (ResurrectableModel) TableName() string { return "resurrectable_sessions" }
