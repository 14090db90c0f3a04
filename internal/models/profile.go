package models

import "time"

// Profile holds the establishment identity and the subscription state of
// one owner.
type Profile struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:64;uniqueIndex;not null" json:"user_id"`

	EstablishmentName string     `gorm:"size:120" json:"establishment_name"`
	DisplayName       string     `gorm:"size:120" json:"display_name"`
	Phone             string     `gorm:"size:20" json:"phone"`
	Categories        StringList `gorm:"type:text" json:"categories"`
	LogoURL           string     `gorm:"size:255" json:"logo_url"`
	Timezone          string     `gorm:"size:64" json:"timezone"`

	SubscriptionPlan string     `gorm:"size:20;default:'trial'" json:"subscription_plan"`
	TrialEndsAt      *time.Time `json:"trial_ends_at"`
	SetupCompleted   bool       `json:"setup_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Profile) RecordID() string         { return p.ID }
func (p *Profile) AssignOwner(owner string) { p.UserID = owner }
