package repositories

import (
	"gorm.io/gorm"

	"skillswap-api/models"
)

type SwapRepository struct {
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// SwapFilter narrows a user's swap history. Zero values mean "no filter".
// Queries are evaluated eagerly; nothing lazy crosses this boundary.
type SwapFilter struct {
	Status    models.SwapStatus
	Direction string // "sent", "received" or "" for both
}

func (r *SwapRepository) preloaded() *gorm.DB {
	return r.db.Preload("Sender").Preload("Receiver").
		Preload("SkillOffered").Preload("SkillRequested")
}

// GetByID retrieves a swap request with all participants and skills loaded.
func (r *SwapRepository) GetByID(id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.preloaded().First(&swap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// GetUserSwapHistory returns all swaps the user participates in, newest
// first, narrowed by the filter.
func (r *SwapRepository) GetUserSwapHistory(userID string, filter SwapFilter) ([]models.SwapRequest, error) {
	query := r.preloaded()

	switch filter.Direction {
	case "sent":
		query = query.Where("sender_id = ?", userID)
	case "received":
		query = query.Where("receiver_id = ?", userID)
	default:
		query = query.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var swaps []models.SwapRequest
	if err := query.Order("created_at DESC").Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// GetPendingForUser returns the user's pending swaps, newest first.
func (r *SwapRepository) GetPendingForUser(userID string) ([]models.SwapRequest, error) {
	return r.GetUserSwapHistory(userID, SwapFilter{Status: models.SwapStatusPending})
}

// GetRecentForUser returns the user's swaps ordered by most recent update.
func (r *SwapRepository) GetRecentForUser(userID string, limit int) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.preloaded().
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

// CountByStatusForUser counts the user's swaps with the given status.
func (r *SwapRepository) CountByStatusForUser(userID string, status models.SwapStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.SwapRequest{}).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, status).
		Count(&count).Error
	return count, err
}
