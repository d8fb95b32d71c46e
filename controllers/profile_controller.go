package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/services"
	"skillswap-api/utils"
)

type ProfileController struct {
	db             *gorm.DB
	profileService *services.ProfileService
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		db:             db,
		profileService: services.NewProfileService(db),
	}
}

// getOrCreateProfile backfills a profile row for accounts that predate
// profile creation at registration.
func (pc *ProfileController) getOrCreateProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := pc.db.Preload("User").Preload("SkillsOffered").Preload("SkillsWanted").
		Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.Profile{UserID: userID, IsPublic: true}
	if err := pc.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	if err := pc.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := pc.getOrCreateProfile(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	profile.User.Password = ""
	utils.SendSuccess(c, "Profile retrieved successfully", profile)
}

type UpdateProfileRequest struct {
	Bio          *string                   `json:"bio"`
	Location     *string                   `json:"location"`
	Phone        *string                   `json:"phone"`
	Availability *models.Availability      `json:"availability"`
	IsPublic     *bool                     `json:"is_public"`
	Visibility   *models.ProfileVisibility `json:"visibility"`
}

func (pc *ProfileController) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.Availability != nil && !utils.IsValidAvailability(*req.Availability) {
		utils.SendValidationError(c, "Invalid availability value")
		return
	}
	if req.Visibility != nil && !utils.IsValidVisibility(*req.Visibility) {
		utils.SendValidationError(c, "Invalid visibility value")
		return
	}

	profile, err := pc.getOrCreateProfile(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}

	if len(updates) > 0 {
		if err := pc.db.Model(profile).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	utils.SendSuccess(c, "Profile updated successfully", nil)
}

type UpdateMySkillsRequest struct {
	SkillsOffered *[]uint `json:"skills_offered"`
	SkillsWanted  *[]uint `json:"skills_wanted"`
}

// UpdateMySkills replaces the caller's offered and/or wanted skill sets.
func (pc *ProfileController) UpdateMySkills(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateMySkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	profile, err := pc.getOrCreateProfile(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	replaceSet := func(assoc string, ids []uint) error {
		var skills []models.Skill
		if len(ids) > 0 {
			if err := pc.db.Find(&skills, "id IN ?", ids).Error; err != nil {
				return err
			}
			if len(skills) != len(ids) {
				return services.ErrSkillNotFound
			}
		}
		return pc.db.Model(profile).Association(assoc).Replace(skills)
	}

	if req.SkillsOffered != nil {
		if err := replaceSet("SkillsOffered", *req.SkillsOffered); err != nil {
			if errors.Is(err, services.ErrSkillNotFound) {
				utils.SendError(c, http.StatusNotFound, "One or more skill IDs do not exist")
				return
			}
			utils.SendError(c, http.StatusInternalServerError, "Failed to update offered skills")
			return
		}
	}
	if req.SkillsWanted != nil {
		if err := replaceSet("SkillsWanted", *req.SkillsWanted); err != nil {
			if errors.Is(err, services.ErrSkillNotFound) {
				utils.SendError(c, http.StatusNotFound, "One or more skill IDs do not exist")
				return
			}
			utils.SendError(c, http.StatusInternalServerError, "Failed to update wanted skills")
			return
		}
	}

	utils.SendSuccess(c, "Skills updated successfully", nil)
}

func (pc *ProfileController) GetPublicProfiles(c *gin.Context) {
	profiles, err := pc.profileService.GetPublicProfiles()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profiles")
		return
	}

	for i := range profiles {
		profiles[i].User.Password = ""
	}
	utils.SendSuccess(c, "Profiles retrieved successfully", profiles)
}

func (pc *ProfileController) SearchProfiles(c *gin.Context) {
	filter := services.ProfileFilter{
		Skill:        c.Query("skill"),
		Availability: models.Availability(c.Query("availability")),
		Location:     c.Query("location"),
	}

	if filter.Availability != "" && !utils.IsValidAvailability(filter.Availability) {
		utils.SendValidationError(c, "Invalid availability value")
		return
	}

	profiles, err := pc.profileService.SearchProfiles(filter)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to search profiles")
		return
	}

	for i := range profiles {
		profiles[i].User.Password = ""
	}
	utils.SendSuccess(c, "Profiles retrieved successfully", profiles)
}
