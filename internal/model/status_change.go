package model

import (
	"time"

	"github.com/google/uuid"
)

// ChangeReason 狀態變更來源
type ChangeReason string

const (
	ChangeReasonAuto  ChangeReason = "auto"
	ChangeReasonOwner ChangeReason = "owner"
)

// StatusChange 狀態變更訊息，經由 queue 交給 worker 寫入歷史
type StatusChange struct {
	EventID   int          `json:"event_id"`
	EventUUID uuid.UUID    `json:"event_uuid"`
	From      EventStatus  `json:"from"`
	To        EventStatus  `json:"to"`
	Reason    ChangeReason `json:"reason"`
	At        time.Time    `json:"at"`
}

// StatusHistoryEntry event_status_history 的一筆紀錄
type StatusHistoryEntry struct {
	ID         int          `json:"id" db:"id"`
	EventID    int          `json:"-" db:"event_id"`
	FromStatus EventStatus  `json:"from" db:"from_status"`
	ToStatus   EventStatus  `json:"to" db:"to_status"`
	Reason     ChangeReason `json:"reason" db:"reason"`
	ChangedAt  time.Time    `json:"changed_at" db:"changed_at"`
}
