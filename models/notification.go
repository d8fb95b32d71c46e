package models

import "time"

// Notifications are derived on demand from recent swap activity and never
// persisted, so there is no table behind these types.

type Notification struct {
	ID        uint        `json:"id"`
	Action    string      `json:"action"`
	Timestamp time.Time   `json:"timestamp"`
	Swap      SwapSummary `json:"swap_request"`
}

type SwapSummary struct {
	Sender         string     `json:"sender"`
	Receiver       string     `json:"receiver"`
	SkillOffered   string     `json:"skill_offered"`
	SkillRequested string     `json:"skill_requested"`
	Status         SwapStatus `json:"status"`
}

// NewSwapNotification builds the transient notification record for a swap
// whose status changed. Sender, Receiver and both skills must be preloaded.
func NewSwapNotification(swap *SwapRequest) Notification {
	return Notification{
		ID:        swap.ID,
		Action:    "swap_" + string(swap.Status),
		Timestamp: swap.UpdatedAt,
		Swap: SwapSummary{
			Sender:         swap.Sender.Name,
			Receiver:       swap.Receiver.Name,
			SkillOffered:   swap.SkillOffered.Name,
			SkillRequested: swap.SkillRequested.Name,
			Status:         swap.Status,
		},
	}
}
