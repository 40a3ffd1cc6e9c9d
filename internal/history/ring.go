// Package history keeps a bounded trend of occupancy and revenue samples.
package history

import (
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Ring is a fixed-size buffer of history points, oldest evicted first
type Ring struct {
	mu     sync.RWMutex
	points []domain.HistoryPoint
	next   int
	full   bool
}

// NewRing создает буфер на size точек (минимум одна)
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{points: make([]domain.HistoryPoint, size)}
}

// Push adds a point, evicting the oldest one when the buffer is full
func (r *Ring) Push(p domain.HistoryPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.points[r.next] = p
	r.next = (r.next + 1) % len(r.points)
	if r.next == 0 {
		r.full = true
	}
}

// Points returns the stored points from oldest to newest
func (r *Ring) Points() []domain.HistoryPoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.full {
		out := make([]domain.HistoryPoint, r.next)
		copy(out, r.points[:r.next])
		return out
	}

	out := make([]domain.HistoryPoint, 0, len(r.points))
	out = append(out, r.points[r.next:]...)
	out = append(out, r.points[:r.next]...)
	return out
}

// Len returns the number of stored points
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.full {
		return len(r.points)
	}
	return r.next
}

// Cap returns the buffer size
func (r *Ring) Cap() int {
	return len(r.points)
}
