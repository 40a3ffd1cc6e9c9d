package checkout_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/bookingstate"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

// UseCase use case выезда по бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute завершает активное бронирование и освобождает его слот
// Завершение выполняется условным UPDATE по status = 'active', поэтому повторный выезд
// ничего не меняет и возвращает ErrAlreadyCompleted.
func (uc *UseCase) Execute(ctx context.Context, bookingID string) (*Response, error) {
	uc.logger.Info("CheckoutBooking: booking id=%s", bookingID)

	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование (внутри транзакции строка блокируется)
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2. Проверяем переход active -> completed
		machine, err := bookingstate.New(booking.Status)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if err := machine.Checkout(txCtx); err != nil {
			if errors.Is(err, bookingstate.ErrAlreadyCompleted) {
				return ErrAlreadyCompleted
			}
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}

		// 3. Условное завершение
		if err := uc.bookingRepo.Complete(txCtx, booking.ID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotActive) {
				return ErrAlreadyCompleted
			}
			return fmt.Errorf("%w: failed to complete booking: %w", ErrInternal, err)
		}

		// 4. Освобождаем слот
		if err := uc.slotRepo.Release(txCtx, booking.SlotID); err != nil {
			return fmt.Errorf("%w: failed to release slot %s: %w", ErrInternal, booking.SlotID, err)
		}

		// 5. Запись в журнал
		err = uc.activityRepo.Append(txCtx, &domain.ActivityLogEntry{
			Timestamp: now,
			Actor:     domain.SystemActor,
			Action:    domain.ActionBookingCompleted,
			Details:   fmt.Sprintf("Booking %s checked out from slot %s", booking.ID, booking.SlotID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to append activity: %w", ErrInternal, err)
		}

		booking.Status = machine.Status()
		booking.CheckoutTime = &now
		result = booking
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("CheckoutBooking: booking id=%s not found", bookingID)
		uc.metrics.RecordCheckout(metrics.OutcomeNotFound)
		return nil, err
	case errors.Is(err, ErrAlreadyCompleted):
		uc.logger.Warn("CheckoutBooking: booking id=%s already completed", bookingID)
		uc.metrics.RecordCheckout(metrics.OutcomeAlreadyCompleted)
		return nil, err
	default:
		uc.logger.Error("CheckoutBooking: booking id=%s: %v", bookingID, err)
		uc.metrics.RecordCheckout(metrics.OutcomeError)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CheckoutBooking: booking id=%s completed, slot %s released", result.ID, result.SlotID)
	uc.metrics.RecordCheckout(metrics.OutcomeCompleted)

	return &Response{
		ID:            result.ID,
		Name:          result.Name,
		Phone:         result.Phone,
		Vehicle:       result.Vehicle,
		License:       result.License,
		SlotID:        result.SlotID,
		Zone:          result.Zone,
		DurationHours: result.DurationHours,
		Cost:          result.Cost,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		CheckoutTime:  *result.CheckoutTime,
	}, nil
}
