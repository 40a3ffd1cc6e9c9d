package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// maxIDAttempts сколько раз генерируется id, если сгенерированный уже занят
const maxIDAttempts = 5

// UseCase use case для бронирования места на парковке
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	idGenerator  IDGenerator
	metrics      Metrics
	timeProvider TimeProvider
	config       Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	idGenerator IDGenerator,
	metrics Metrics,
	timeProvider TimeProvider,
	config Config,
	logger Logger,
) *UseCase {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		idGenerator:  idGenerator,
		metrics:      metrics,
		timeProvider: timeProvider,
		config:       config,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования
// Слот выбирается по свежему снимку и резервируется условным UPDATE в сериализуемой транзакции.
// Если слот успел занять конкурентный запрос, попытка повторяется по новому снимку
// (не более config.MaxAttempts раз), после чего возвращается ErrNoCapacity.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	zone := ptr.Value(req.Zone)
	uc.logger.Info("CreateBooking: name=%s, license=%s, duration=%dh, zone=%q",
		req.Name, req.License, req.DurationHours, zone)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.config.MinDurationHours, uc.config.MaxDurationHours); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(metrics.OutcomeValidationError)
		return nil, err
	}

	for attempt := 1; attempt <= uc.config.MaxAttempts; attempt++ {
		// 2. Свежий снимок слотов на каждую попытку
		now := uc.timeProvider.Now()
		slots, err := uc.slotRepo.GetAll(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slots: %v", err)
			uc.metrics.RecordBooking(metrics.OutcomeError)
			return nil, fmt.Errorf("%w: failed to get slots: %w", ErrInternal, err)
		}

		// 3. Выбор слота
		slot, ok := SelectSlot(slots, zone)
		if !ok {
			uc.logger.Warn("CreateBooking: no eligible slot among %d slots", len(slots))
			uc.metrics.RecordBooking(metrics.OutcomeNoCapacity)
			return nil, ErrNoCapacity
		}

		rate := pricing.DynamicRate(now, uc.config.Pricing)
		booking := &domain.Booking{
			Name:          req.Name,
			Phone:         req.Phone,
			Vehicle:       req.Vehicle,
			License:       req.License,
			SlotID:        slot.ID,
			Zone:          slot.Zone,
			DurationHours: req.DurationHours,
			Cost:          float64(req.DurationHours) * rate,
			Status:        domain.StatusActive,
			CreatedAt:     now,
		}

		// 4. Резервирование, запись бронирования и журнала в одной транзакции
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			id, err := uc.newBookingID(txCtx)
			if err != nil {
				return err
			}
			booking.ID = id

			if err := uc.slotRepo.Reserve(txCtx, slot.ID); err != nil {
				return err
			}

			if err := uc.bookingRepo.Create(txCtx, booking); err != nil {
				return err
			}

			return uc.activityRepo.Append(txCtx, &domain.ActivityLogEntry{
				Timestamp: now,
				Actor:     req.Name,
				Action:    domain.ActionBookingCreated,
				Details:   fmt.Sprintf("Booking %s for slot %s", booking.ID, slot.ID),
			})
		})

		switch {
		case err == nil:
			uc.logger.Info("CreateBooking: created booking id=%s, slot=%s, cost=%.2f (attempt %d)",
				booking.ID, booking.SlotID, booking.Cost, attempt)
			uc.metrics.RecordBooking(metrics.OutcomeCreated)
			return toResponse(booking, rate), nil

		case errors.Is(err, slotRepo.ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: slot %s was taken concurrently (attempt %d/%d)",
				slot.ID, attempt, uc.config.MaxAttempts)
			uc.metrics.RecordBooking(metrics.OutcomeConflictRetry)

		case errors.Is(err, bookingRepo.ErrBookingIDConflict):
			uc.logger.Warn("CreateBooking: booking id collision (attempt %d/%d): %v",
				attempt, uc.config.MaxAttempts, err)
			uc.metrics.RecordBooking(metrics.OutcomeConflictRetry)

		default:
			uc.logger.Error("CreateBooking: failed to create booking on slot %s: %v", slot.ID, err)
			uc.metrics.RecordBooking(metrics.OutcomeError)
			return nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
	}

	uc.logger.Warn("CreateBooking: giving up after %d attempts", uc.config.MaxAttempts)
	uc.metrics.RecordBooking(metrics.OutcomeNoCapacity)
	return nil, ErrNoCapacity
}

// newBookingID генерирует id, которого ещё нет в хранилище
// Окончательную уникальность гарантирует первичный ключ (ErrBookingIDConflict)
func (uc *UseCase) newBookingID(ctx context.Context) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := uc.idGenerator.NewID()
		exists, err := uc.bookingRepo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
		uc.logger.Warn("CreateBooking: generated booking id %s already exists", id)
	}
	return "", fmt.Errorf("%w: no unique booking id after %d attempts", bookingRepo.ErrBookingIDConflict, maxIDAttempts)
}

func toResponse(b *domain.Booking, rate float64) *Response {
	return &Response{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		Vehicle:       b.Vehicle,
		License:       b.License,
		SlotID:        b.SlotID,
		Zone:          b.Zone,
		DurationHours: b.DurationHours,
		Rate:          rate,
		Cost:          b.Cost,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
