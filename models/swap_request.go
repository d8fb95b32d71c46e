package models

import "time"

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusDeleted   SwapStatus = "deleted"
)

var ValidSwapStatuses = []SwapStatus{
	SwapStatusPending,
	SwapStatusAccepted,
	SwapStatusCompleted,
	SwapStatusRejected,
	SwapStatusDeleted,
}

// SwapTransitions is the full status transition table. Statuses with an
// empty list are terminal.
var SwapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:   {SwapStatusAccepted, SwapStatusRejected, SwapStatusDeleted},
	SwapStatusAccepted:  {SwapStatusCompleted},
	SwapStatusCompleted: {},
	SwapStatusRejected:  {},
	SwapStatusDeleted:   {},
}

type SwapRequest struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	SenderID         string     `json:"sender_id" gorm:"not null;size:191;index:idx_swap_sender_status"`
	ReceiverID       string     `json:"receiver_id" gorm:"not null;size:191;index:idx_swap_receiver_status"`
	SkillOfferedID   uint       `json:"skill_offered_id" gorm:"not null"`
	SkillRequestedID uint       `json:"skill_requested_id" gorm:"not null"`
	Status           SwapStatus `json:"status" gorm:"not null;default:'pending';size:20;index:idx_swap_sender_status;index:idx_swap_receiver_status"`
	Message          string     `json:"message" gorm:"type:text"`

	// PendingPairKey holds the ordered "minUserID|maxUserID" pair while the
	// request is pending and is NULL otherwise. The unique index is what
	// actually upholds the one-pending-request-per-pair invariant under
	// concurrent inserts.
	PendingPairKey *string `json:"-" gorm:"uniqueIndex;size:384"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sender         User  `json:"sender" gorm:"foreignKey:SenderID"`
	Receiver       User  `json:"receiver" gorm:"foreignKey:ReceiverID"`
	SkillOffered   Skill `json:"skill_offered" gorm:"foreignKey:SkillOfferedID"`
	SkillRequested Skill `json:"skill_requested" gorm:"foreignKey:SkillRequestedID"`
}

// CanTransitionTo reports whether the transition table allows moving from
// the request's current status to newStatus.
func (sr *SwapRequest) CanTransitionTo(newStatus SwapStatus) bool {
	for _, s := range SwapTransitions[sr.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the request's status has no outgoing
// transitions.
func (sr *SwapRequest) IsTerminal() bool {
	return len(SwapTransitions[sr.Status]) == 0
}

// IsParticipant reports whether the user is the sender or the receiver.
func (sr *SwapRequest) IsParticipant(userID string) bool {
	return sr.SenderID == userID || sr.ReceiverID == userID
}

// SwapPartner returns the other participant's user ID, or "" for
// non-participants.
func (sr *SwapRequest) SwapPartner(userID string) string {
	switch userID {
	case sr.SenderID:
		return sr.ReceiverID
	case sr.ReceiverID:
		return sr.SenderID
	default:
		return ""
	}
}

// PairKey returns the order-independent key for a user pair, smaller ID
// first.
func PairKey(user1ID, user2ID string) string {
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}
	return user1ID + "|" + user2ID
}
