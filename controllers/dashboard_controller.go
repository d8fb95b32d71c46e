package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/repositories"
	"skillswap-api/services"
	"skillswap-api/utils"
)

type DashboardController struct {
	db            *gorm.DB
	swaps         *repositories.SwapRepository
	notifications *services.NotificationService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		db:            db,
		swaps:         repositories.NewSwapRepository(db),
		notifications: services.NewNotificationService(db),
	}
}

// GetStats returns per-user counters for the dashboard view.
func (dc *DashboardController) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	var profile models.Profile
	if err := dc.db.Preload("SkillsOffered").Preload("SkillsWanted").
		Where("user_id = ?", userID).First(&profile).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	counts := gin.H{}
	for _, status := range models.ValidSwapStatuses {
		count, err := dc.swaps.CountByStatusForUser(userID, status)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch swap counts")
			return
		}
		counts[string(status)] = count
	}

	recent, err := dc.notifications.GetUserNotifications(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	stats := gin.H{
		"skills_offered_count": len(profile.SkillsOffered),
		"skills_wanted_count":  len(profile.SkillsWanted),
		"swaps_by_status":      counts,
		"notification_count":   len(recent),
	}

	utils.SendSuccess(c, "Dashboard stats retrieved successfully", stats)
}
