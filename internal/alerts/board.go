package alerts

import (
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Board holds the alert list of the latest evaluation
type Board struct {
	mu     sync.RWMutex
	alerts []domain.Alert
}

// NewBoard создает пустую доску алертов
func NewBoard() *Board {
	return &Board{}
}

// Replace discards the current list and stores alerts
func (b *Board) Replace(alerts []domain.Alert) {
	cp := make([]domain.Alert, len(alerts))
	copy(cp, alerts)

	b.mu.Lock()
	b.alerts = cp
	b.mu.Unlock()
}

// Current returns a copy of the latest list
func (b *Board) Current() []domain.Alert {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cp := make([]domain.Alert, len(b.alerts))
	copy(cp, b.alerts)
	return cp
}
