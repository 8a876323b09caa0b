package model

import (
	"time"
)

type SwapStatus string

const (
	SwapStatusQueued    SwapStatus = "queued"
	SwapStatusSent      SwapStatus = "sent"
	SwapStatusConfirmed SwapStatus = "confirmed"
	SwapStatusFailed    SwapStatus = "failed"
)

// SwapModeBackend tags every record created by this service.
const SwapModeBackend = "backend"

// statusTransitions drives the manual advance operation. failed is terminal;
// anything outside the table (confirmed included) lands on confirmed.
var statusTransitions = map[SwapStatus]SwapStatus{
	SwapStatusQueued: SwapStatusSent,
	SwapStatusSent:   SwapStatusConfirmed,
	SwapStatusFailed: SwapStatusFailed,
}

func NextStatus(current SwapStatus) SwapStatus {
	if next, ok := statusTransitions[current]; ok {
		return next
	}
	return SwapStatusConfirmed
}

func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusQueued, SwapStatusSent, SwapStatusConfirmed, SwapStatusFailed:
		return true
	}
	return false
}

type Swap struct {
	ID        string     `json:"id" gorm:"column:id;type:text;primaryKey"`
	Status    SwapStatus `json:"status" gorm:"column:status;type:varchar(20);not null"`
	Mode      string     `json:"mode" gorm:"column:mode;type:varchar(20);not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at;not null"`
	Body      SwapBody   `json:"body" gorm:"column:body;type:jsonb;not null"`
}

func (Swap) TableName() string {
	return "swaps"
}
