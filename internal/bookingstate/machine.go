// Package bookingstate describes the booking lifecycle as a state machine.
package bookingstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// EventCheckout completes an active booking
const EventCheckout = "checkout"

var (
	// ErrAlreadyCompleted возвращается при выезде по уже завершенному бронированию
	ErrAlreadyCompleted = errors.New("bookingstate: booking already completed")

	// ErrUnknownStatus возвращается для статуса, которого нет в жизненном цикле
	ErrUnknownStatus = errors.New("bookingstate: unknown booking status")
)

// Machine is the lifecycle of one booking: active -> completed
type Machine struct {
	fsm *fsm.FSM
}

// New builds a machine positioned at the booking's current status
func New(status domain.BookingStatus) (*Machine, error) {
	switch status {
	case domain.StatusActive, domain.StatusCompleted:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	return &Machine{
		fsm: fsm.NewFSM(
			string(status),
			fsm.Events{
				{Name: EventCheckout, Src: []string{string(domain.StatusActive)}, Dst: string(domain.StatusCompleted)},
			},
			fsm.Callbacks{},
		),
	}, nil
}

// Status returns the current status
func (m *Machine) Status() domain.BookingStatus {
	return domain.BookingStatus(m.fsm.Current())
}

// CanCheckout reports whether checkout is a valid transition
func (m *Machine) CanCheckout() bool {
	return m.fsm.Can(EventCheckout)
}

// Checkout moves the booking to completed
func (m *Machine) Checkout(ctx context.Context) error {
	if err := m.fsm.Event(ctx, EventCheckout); err != nil {
		var invalid fsm.InvalidEventError
		if errors.As(err, &invalid) {
			return ErrAlreadyCompleted
		}
		return fmt.Errorf("checkout transition: %w", err)
	}
	return nil
}
