package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const table = "parking_slots"

var columns = []string{
	"id",
	"zone",
	"status",
	"maintenance",
	"is_reserved",
	"entry_time",
	"vehicle_type",
	"license_plate",
	"customer_id",
	"updated_at",
}

// Repository репозиторий для работы со слотами парковки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает снимок всех слотов, отсортированный по id
func (r *Repository) GetAll(ctx context.Context) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var (
			s                                     domain.Slot
			status                                string
			entryTime, updatedAt                  sql.NullTime
			vehicleType, licensePlate, customerID sql.NullString
		)

		err := rows.Scan(
			&s.ID,
			&s.Zone,
			&status,
			&s.Maintenance,
			&s.IsReserved,
			&entryTime,
			&vehicleType,
			&licensePlate,
			&customerID,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}

		s.RawStatus = domain.RawStatus(status)
		if entryTime.Valid {
			t := entryTime.Time
			s.EntryTime = &t
		}
		s.VehicleType = nullString(vehicleType)
		s.LicensePlate = nullString(licensePlate)
		s.CustomerID = nullString(customerID)
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// Reserve помечает слот зарезервированным одним условным UPDATE
// Строка меняется, только если слот свободен, не зарезервирован и не на обслуживании.
// Если условие не выполнено (слот успел занять другой запрос), возвращает ErrSlotNotAvailable.
func (r *Repository) Reserve(ctx context.Context, slotID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_reserved", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"status": domain.RawStatusAvailable}).
		Where(squirrel.Eq{"is_reserved": false}).
		Where(squirrel.Eq{"maintenance": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// Release снимает резервирование и очищает поля занятости слота
func (r *Repository) Release(ctx context.Context, slotID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_reserved", false).
		Set("status", domain.RawStatusAvailable).
		Set("entry_time", nil).
		Set("vehicle_type", nil).
		Set("license_plate", nil).
		Set("customer_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Count возвращает количество слотов
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Seed заполняет пустую таблицу слотами P001..PNNN, распределенными по зонам блоками
// Если слоты уже есть, ничего не делает и возвращает 0
func (r *Repository) Seed(ctx context.Context, capacity int, zones []string) (int, error) {
	if capacity <= 0 || len(zones) == 0 {
		return 0, fmt.Errorf("%w: capacity=%d zones=%d", ErrInvalidSeed, capacity, len(zones))
	}

	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(table).
		Columns("id", "zone", "status", "maintenance", "is_reserved")
	for _, s := range SeedLayout(capacity, zones) {
		insert = insert.Values(s.ID, s.Zone, s.RawStatus, false, false)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Seed - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: Seed - execute insert: %w", ErrExecQuery, err)
	}

	return capacity, nil
}

// SeedLayout раскладывает capacity слотов по зонам непрерывными блоками одинакового размера
func SeedLayout(capacity int, zones []string) []domain.Slot {
	if capacity <= 0 || len(zones) == 0 {
		return nil
	}

	perZone := (capacity + len(zones) - 1) / len(zones)
	slots := make([]domain.Slot, 0, capacity)
	for i := 0; i < capacity; i++ {
		zone := i / perZone
		if zone >= len(zones) {
			zone = len(zones) - 1
		}
		slots = append(slots, domain.Slot{
			ID:        SlotID(i + 1),
			Zone:      zones[zone],
			RawStatus: domain.RawStatusAvailable,
		})
	}
	return slots
}

// SlotID форматирует номер слота: 1 -> P001
func SlotID(n int) string {
	return fmt.Sprintf("P%03d", n)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
