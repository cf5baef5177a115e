package models

import "time"

// Profile is the account identity behind a session.
type Profile struct {
	BaseModel
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Role         ProfileRole `gorm:"type:varchar(20);not null" json:"role"`
}

type RefreshToken struct {
	BaseModel
	ProfileID string    `gorm:"type:varchar(36);not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// OrphanedFile is a stored object whose owning record was never written.
type OrphanedFile struct {
	BaseModel
	Path      string `gorm:"not null"`
	Attempts  int    `gorm:"default:0"`
	LastError string
}

// All lists the models migrated at boot.
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&RefreshToken{},
		&Company{},
		&Job{},
		&Application{},
		&Payment{},
		&OrphanedFile{},
	}
}
