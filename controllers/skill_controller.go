package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/services"
	"skillswap-api/utils"
)

type SkillController struct {
	db           *gorm.DB
	skillService *services.SkillService
}

func NewSkillController(db *gorm.DB) *SkillController {
	return &SkillController{
		db:           db,
		skillService: services.NewSkillService(db),
	}
}

func (sc *SkillController) GetSkills(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	var skills []models.Skill
	var err error

	switch {
	case category != "":
		skills, err = sc.skillService.GetSkillsByCategory(category)
	case search != "":
		skills, err = sc.skillService.SearchSkills(search)
	default:
		skills, err = sc.skillService.GetAllSkills()
	}
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}

	utils.SendSuccess(c, "Skills retrieved successfully", skills)
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateSkill adds a catalog entry. Admin only.
func (sc *SkillController) CreateSkill(c *gin.Context) {
	if !sc.requireAdmin(c) {
		return
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidSkillName(req.Name) {
		utils.SendValidationError(c, "Skill name must be at least 2 characters")
		return
	}

	skill, err := sc.skillService.CreateSkill(req.Name, req.Description, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSkillNameTooShort):
			utils.SendValidationError(c, err.Error())
		case errors.Is(err, services.ErrSkillNameTaken):
			utils.SendError(c, http.StatusConflict, err.Error())
		default:
			utils.SendError(c, http.StatusInternalServerError, "Failed to create skill")
		}
		return
	}

	utils.SendCreated(c, "Skill created successfully", skill)
}

// DeleteSkill removes a skill and everything that depends on it. Admin
// only.
func (sc *SkillController) DeleteSkill(c *gin.Context) {
	if !sc.requireAdmin(c) {
		return
	}

	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid skill ID")
		return
	}

	if err := sc.skillService.DeleteSkill(uint(skillID)); err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			utils.SendError(c, http.StatusNotFound, "Skill not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete skill")
		return
	}

	utils.SendSuccess(c, "Skill deleted successfully", nil)
}

func (sc *SkillController) requireAdmin(c *gin.Context) bool {
	userID := c.GetString("user_id")

	var user models.User
	if err := sc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return false
	}
	if !user.IsAdmin {
		utils.SendError(c, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}
