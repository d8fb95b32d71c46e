package services

import (
	"strings"

	"gorm.io/gorm"

	"skillswap-api/models"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileFilter narrows a public-profile search. All matching is
// substring and case-insensitive except availability, which is exact.
type ProfileFilter struct {
	Skill        string
	Availability models.Availability
	Location     string
}

func (s *ProfileService) publicProfiles() *gorm.DB {
	return s.db.Model(&models.Profile{}).
		Preload("User").
		Preload("SkillsOffered").
		Preload("SkillsWanted").
		Where("profiles.is_public = ? AND profiles.visibility = ?", true, models.VisibilityPublic)
}

// GetPublicProfiles returns all swap-eligible profiles, newest first.
func (s *ProfileService) GetPublicProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.publicProfiles().Order("profiles.created_at DESC").Find(&profiles).Error
	return profiles, err
}

// SearchProfiles returns swap-eligible profiles matching the filter,
// newest first. The query is evaluated here; callers get a plain slice.
func (s *ProfileService) SearchProfiles(filter ProfileFilter) ([]models.Profile, error) {
	query := s.publicProfiles()

	if filter.Skill != "" {
		pattern := "%" + strings.ToLower(filter.Skill) + "%"
		query = query.
			Joins("JOIN profile_skills_offered pso ON pso.profile_id = profiles.id").
			Joins("JOIN skills ON skills.id = pso.skill_id").
			Where("LOWER(skills.name) LIKE ?", pattern).
			Distinct("profiles.*")
	}
	if filter.Availability != "" {
		query = query.Where("profiles.availability = ?", filter.Availability)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(profiles.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var profiles []models.Profile
	err := query.Order("profiles.created_at DESC").Find(&profiles).Error
	return profiles, err
}

// SearchProfilesBySkill returns public profiles offering a skill whose
// name contains the substring, case-insensitive.
func (s *ProfileService) SearchProfilesBySkill(skillName string) ([]models.Profile, error) {
	return s.SearchProfiles(ProfileFilter{Skill: skillName})
}
