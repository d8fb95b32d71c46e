package models

import "time"

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityMornings Availability = "mornings"
	AvailabilityAllDay   Availability = "all_day"
)

var ValidAvailabilities = []Availability{
	AvailabilityWeekdays,
	AvailabilityWeekends,
	AvailabilityEvenings,
	AvailabilityMornings,
	AvailabilityAllDay,
}

type ProfileVisibility string

const (
	VisibilityPublic      ProfileVisibility = "public"
	VisibilityPrivate     ProfileVisibility = "private"
	VisibilityFriendsOnly ProfileVisibility = "friends_only"
)

var ValidVisibilities = []ProfileVisibility{
	VisibilityPublic,
	VisibilityPrivate,
	VisibilityFriendsOnly,
}

type Profile struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	UserID       string            `json:"user_id" gorm:"uniqueIndex;not null;size:191"`
	Bio          string            `json:"bio" gorm:"size:500"`
	Location     string            `json:"location" gorm:"size:100"`
	Phone        string            `json:"phone" gorm:"size:15"`
	Availability Availability      `json:"availability" gorm:"not null;default:'weekends';size:20"`
	IsPublic     bool              `json:"is_public" gorm:"not null"`
	Visibility   ProfileVisibility `json:"visibility" gorm:"not null;default:'public';size:20"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	User          User    `json:"user" gorm:"foreignKey:UserID"`
	SkillsOffered []Skill `json:"skills_offered" gorm:"many2many:profile_skills_offered"`
	SkillsWanted  []Skill `json:"skills_wanted" gorm:"many2many:profile_skills_wanted"`
}

// IsSwapEligible reports whether other users may send swap requests to
// this profile's owner.
func (p *Profile) IsSwapEligible() bool {
	return p.IsPublic && p.Visibility == VisibilityPublic
}

// OffersSkill reports whether the skill is in the loaded offered set.
// SkillsOffered must be preloaded.
func (p *Profile) OffersSkill(skillID uint) bool {
	for _, s := range p.SkillsOffered {
		if s.ID == skillID {
			return true
		}
	}
	return false
}
