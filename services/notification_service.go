package services

import (
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/repositories"
)

// recentSwapWindow is how many recently updated swaps feed the derived
// notification list.
const recentSwapWindow = 10

type NotificationService struct {
	swaps *repositories.SwapRepository
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{swaps: repositories.NewSwapRepository(db)}
}

// GetUserNotifications derives notifications from the user's most
// recently updated swaps. Pending swaps carry no news and are skipped.
func (s *NotificationService) GetUserNotifications(userID string) ([]models.Notification, error) {
	recent, err := s.swaps.GetRecentForUser(userID, recentSwapWindow)
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(recent))
	for i := range recent {
		if recent[i].Status == models.SwapStatusPending {
			continue
		}
		notifications = append(notifications, models.NewSwapNotification(&recent[i]))
	}
	return notifications, nil
}
