package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ActivityResponse запись журнала действий
type ActivityResponse struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

// ActivityListResponse список записей журнала
type ActivityListResponse struct {
	Entries []ActivityResponse `json:"entries"`
}

// FromDomainActivityList конвертирует записи журнала в DTO
func FromDomainActivityList(entries []*domain.ActivityLogEntry) *ActivityListResponse {
	resp := &ActivityListResponse{
		Entries: make([]ActivityResponse, 0, len(entries)),
	}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, ActivityResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Actor:     e.Actor,
			Action:    e.Action,
			Details:   e.Details,
		})
	}

	return resp
}
