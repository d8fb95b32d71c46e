package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/services"
	"skillswap-api/utils"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		notificationService: services.NewNotificationService(db),
	}
}

// GetNotifications returns the derived notification feed for the caller.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	notifications, err := nc.notificationService.GetUserNotifications(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	utils.SendSuccess(c, "Notifications retrieved successfully", notifications)
}
