package services

import (
	"errors"

	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/repositories"
)

// SwapWorkflowService is the single place where swap state transitions
// happen. Validation and the write always run inside one transaction.
type SwapWorkflowService struct {
	db    *gorm.DB
	swaps *repositories.SwapRepository
}

func NewSwapWorkflowService(db *gorm.DB) *SwapWorkflowService {
	return &SwapWorkflowService{
		db:    db,
		swaps: repositories.NewSwapRepository(db),
	}
}

// CreateSwapRequest validates and inserts a new pending swap request.
// The unique index on pending_pair_key backstops the duplicate-pending
// check: if two creations for the same pair race past validation, the
// second insert fails and surfaces as ErrConcurrencyConflict.
func (s *SwapWorkflowService) CreateSwapRequest(senderID, receiverID string, skillOfferedID, skillRequestedID uint, message string) (*models.SwapRequest, error) {
	var created models.SwapRequest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ValidateSwapCreation(tx, senderID, receiverID, skillOfferedID, skillRequestedID); err != nil {
			return err
		}

		pairKey := models.PairKey(senderID, receiverID)
		created = models.SwapRequest{
			SenderID:         senderID,
			ReceiverID:       receiverID,
			SkillOfferedID:   skillOfferedID,
			SkillRequestedID: skillRequestedID,
			Status:           models.SwapStatusPending,
			Message:          message,
			PendingPairKey:   &pairKey,
		}

		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConcurrencyConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.swaps.GetByID(created.ID)
}

// RespondToSwap applies a status transition on behalf of actingUserID.
// The update is guarded by the previously observed status, so a concurrent
// responder gets ErrConcurrencyConflict instead of silently winning twice.
func (s *SwapWorkflowService) RespondToSwap(swapID uint, actingUserID string, newStatus models.SwapStatus) (*models.SwapRequest, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var swap models.SwapRequest
		if err := tx.First(&swap, "id = ?", swapID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSwapNotFound
			}
			return err
		}

		if err := ValidateSwapResponse(&swap, actingUserID, newStatus); err != nil {
			return err
		}

		// Leaving pending releases the pair key so the pair may open a new
		// pending request later.
		result := tx.Model(&models.SwapRequest{}).
			Where("id = ? AND status = ?", swap.ID, swap.Status).
			Updates(map[string]interface{}{
				"status":           newStatus,
				"pending_pair_key": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrConcurrencyConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.swaps.GetByID(swapID)
}
