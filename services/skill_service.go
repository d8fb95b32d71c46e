package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"skillswap-api/models"
)

var (
	ErrSkillNameTaken    = errors.New("a skill with this name already exists")
	ErrSkillNameTooShort = errors.New("skill name must be at least 2 characters")
	ErrSkillNotFound     = errors.New("skill not found")
)

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// GetAllSkills returns the full catalog ordered by name.
func (s *SkillService) GetAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Order("name").Find(&skills).Error
	return skills, err
}

// SearchSkills returns skills whose name or description contains the
// query, case-insensitive, ordered by name.
func (s *SkillService) SearchSkills(query string) ([]models.Skill, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var skills []models.Skill
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("name").
		Find(&skills).Error
	return skills, err
}

// GetSkillsByCategory returns skills with the exact category, ordered by
// name.
func (s *SkillService) GetSkillsByCategory(category string) ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Where("category = ?", category).Order("name").Find(&skills).Error
	return skills, err
}

// CreateSkill adds a skill to the catalog.
func (s *SkillService) CreateSkill(name, description, category string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, ErrSkillNameTooShort
	}

	skill := models.Skill{
		Name:        name,
		Description: description,
		Category:    category,
	}
	if err := s.db.Create(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSkillNameTaken
		}
		return nil, err
	}
	return &skill, nil
}

// DeleteSkill removes a skill together with every swap request and
// profile link that references it, in one transaction.
func (s *SkillService) DeleteSkill(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var skill models.Skill
		if err := tx.First(&skill, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSkillNotFound
			}
			return err
		}

		if err := tx.Where("skill_offered_id = ? OR skill_requested_id = ?", id, id).
			Delete(&models.SwapRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM profile_skills_offered WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM profile_skills_wanted WHERE skill_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&skill).Error
	})
}
