package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/repositories"
	"skillswap-api/services"
	"skillswap-api/utils"
)

type SwapController struct {
	db           *gorm.DB
	workflow     *services.SwapWorkflowService
	swaps        *repositories.SwapRepository
	emailService *services.EmailService
}

func NewSwapController(db *gorm.DB, emailService *services.EmailService) *SwapController {
	return &SwapController{
		db:           db,
		workflow:     services.NewSwapWorkflowService(db),
		swaps:        repositories.NewSwapRepository(db),
		emailService: emailService,
	}
}

type CreateSwapRequest struct {
	ReceiverID       string `json:"receiver_id" binding:"required"`
	SkillOfferedID   uint   `json:"skill_offered_id" binding:"required"`
	SkillRequestedID uint   `json:"skill_requested_id" binding:"required"`
	Message          string `json:"message"`
}

func (sc *SwapController) CreateSwap(c *gin.Context) {
	senderID := c.GetString("user_id")

	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var receiver models.User
	if err := sc.db.First(&receiver, "id = ?", req.ReceiverID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Receiver not found")
		return
	}

	swap, err := sc.workflow.CreateSwapRequest(senderID, req.ReceiverID, req.SkillOfferedID, req.SkillRequestedID, req.Message)
	if err != nil {
		sc.sendWorkflowError(c, err)
		return
	}

	utils.SendCreated(c, "Swap request created successfully", swap)
}

type SwapResponseRequest struct {
	Action models.SwapStatus `json:"action" binding:"required"`
}

func (sc *SwapController) RespondToSwap(c *gin.Context) {
	userID := c.GetString("user_id")

	swapID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid swap ID")
		return
	}

	var req SwapResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidSwapAction(req.Action) {
		utils.SendValidationError(c, "Invalid action")
		return
	}

	swap, err := sc.workflow.RespondToSwap(uint(swapID), userID, req.Action)
	if err != nil {
		sc.sendWorkflowError(c, err)
		return
	}

	sc.notifyPartner(swap, userID)

	utils.SendSuccess(c, "Swap request updated successfully", swap)
}

func (sc *SwapController) ListSwaps(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := repositories.SwapFilter{
		Status:    models.SwapStatus(c.Query("status")),
		Direction: c.DefaultQuery("type", "all"),
	}
	if filter.Direction == "all" {
		filter.Direction = ""
	}

	swaps, err := sc.swaps.GetUserSwapHistory(userID, filter)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch swaps")
		return
	}

	sc.scrubPasswords(swaps)
	utils.SendSuccess(c, "Swaps retrieved successfully", swaps)
}

func (sc *SwapController) GetPendingSwaps(c *gin.Context) {
	userID := c.GetString("user_id")

	swaps, err := sc.swaps.GetPendingForUser(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch pending swaps")
		return
	}

	sc.scrubPasswords(swaps)
	utils.SendSuccess(c, "Pending swaps retrieved successfully", swaps)
}

func (sc *SwapController) GetSwapDetails(c *gin.Context) {
	userID := c.GetString("user_id")

	swapID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid swap ID")
		return
	}

	swap, err := sc.swaps.GetByID(uint(swapID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Swap request not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch swap")
		return
	}

	if !swap.IsParticipant(userID) {
		utils.SendError(c, http.StatusForbidden, "You are not a participant in this swap")
		return
	}

	swap.Sender.Password = ""
	swap.Receiver.Password = ""
	utils.SendSuccess(c, "Swap details retrieved successfully", swap)
}

// sendWorkflowError maps workflow errors onto the response envelope.
func (sc *SwapController) sendWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfSwap),
		errors.Is(err, services.ErrProfileNotPublic),
		errors.Is(err, services.ErrSkillNotOwned),
		errors.Is(err, services.ErrInvalidTransition):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicatePending),
		errors.Is(err, services.ErrConcurrencyConflict):
		utils.SendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnauthorizedAction):
		utils.SendError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrSwapNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	default:
		utils.SendError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// notifyPartner emails the other participant about a status change.
// Best effort, the swap update already committed.
func (sc *SwapController) notifyPartner(swap *models.SwapRequest, actorID string) {
	if sc.emailService == nil {
		return
	}

	partner := swap.Receiver
	actor := swap.Sender
	if swap.SwapPartner(actorID) == swap.SenderID {
		partner, actor = swap.Sender, swap.Receiver
	}

	err := sc.emailService.SendSwapStatusEmail(
		partner.Email, partner.Name, actor.Name,
		swap.SkillOffered.Name, swap.SkillRequested.Name, string(swap.Status),
	)
	if err != nil {
		fmt.Printf("Failed to send swap status email for swap %d: %v\n", swap.ID, err)
	}
}

func (sc *SwapController) scrubPasswords(swaps []models.SwapRequest) {
	for i := range swaps {
		swaps[i].Sender.Password = ""
		swaps[i].Receiver.Password = ""
	}
}
