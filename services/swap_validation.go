package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skillswap-api/models"
)

// ValidateSwapCreation checks every precondition for a new swap request.
// It only reads; callers run it inside the same transaction as the insert
// so the checks and the write see one consistent snapshot.
func ValidateSwapCreation(tx *gorm.DB, senderID, receiverID string, skillOfferedID, skillRequestedID uint) error {
	if senderID == receiverID {
		return ErrSelfSwap
	}

	var receiverProfile models.Profile
	if err := tx.Preload("SkillsOffered").Where("user_id = ?", receiverID).First(&receiverProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if !receiverProfile.IsSwapEligible() {
		return ErrProfileNotPublic
	}

	var senderProfile models.Profile
	if err := tx.Preload("SkillsOffered").Where("user_id = ?", senderID).First(&senderProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if !senderProfile.OffersSkill(skillOfferedID) {
		return fmt.Errorf("%w: sender does not offer skill %d", ErrSkillNotOwned, skillOfferedID)
	}
	if !receiverProfile.OffersSkill(skillRequestedID) {
		return fmt.Errorf("%w: receiver does not offer skill %d", ErrSkillNotOwned, skillRequestedID)
	}

	var pendingCount int64
	err := tx.Model(&models.SwapRequest{}).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status = ?",
			senderID, receiverID, receiverID, senderID, models.SwapStatusPending).
		Count(&pendingCount).Error
	if err != nil {
		return err
	}
	if pendingCount > 0 {
		return ErrDuplicatePending
	}

	return nil
}

// ValidateSwapResponse checks transition legality and authorization for a
// status change. The receiver controls accepted/rejected; the sender
// controls deleted and completed.
func ValidateSwapResponse(swap *models.SwapRequest, actingUserID string, newStatus models.SwapStatus) error {
	if !swap.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, swap.Status, newStatus)
	}

	switch newStatus {
	case models.SwapStatusAccepted, models.SwapStatusRejected:
		if actingUserID != swap.ReceiverID {
			return ErrUnauthorizedAction
		}
	case models.SwapStatusDeleted, models.SwapStatusCompleted:
		if actingUserID != swap.SenderID {
			return ErrUnauthorizedAction
		}
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, swap.Status, newStatus)
	}

	return nil
}
