package slot

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

func setupSlotMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetAll(t *testing.T) {
	repo, mock := setupSlotMock(t)
	entry := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 3, 14, 10, 0, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, zone, status, maintenance, is_reserved, entry_time, vehicle_type, license_plate, customer_id, updated_at FROM parking_slots ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("P001", "Zone-A", "occupied", false, false, entry, "Car", "KA01AB1234", "C-1", updated).
			AddRow("P002", "Zone-A", "available", true, false, nil, nil, nil, nil, updated))

	slots, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, domain.RawStatusOccupied, slots[0].RawStatus)
	require.NotNil(t, slots[0].EntryTime)
	assert.Equal(t, entry, *slots[0].EntryTime)
	require.NotNil(t, slots[0].LicensePlate)
	assert.Equal(t, "KA01AB1234", *slots[0].LicensePlate)

	assert.Equal(t, domain.EffectiveMaintenance, slots[1].EffectiveStatus())
	assert.Nil(t, slots[1].EntryTime)
	assert.Nil(t, slots[1].VehicleType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_QueryError(t *testing.T) {
	repo, mock := setupSlotMock(t)

	mock.ExpectQuery("SELECT (.+) FROM parking_slots").WillReturnError(sql.ErrConnDone)

	_, err := repo.GetAll(context.Background())

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestReserve(t *testing.T) {
	reserveQuery := regexp.QuoteMeta("UPDATE parking_slots SET is_reserved = $1, updated_at = NOW() WHERE id = $2")

	t.Run("reserved", func(t *testing.T) {
		repo, mock := setupSlotMock(t)

		mock.ExpectExec(reserveQuery).
			WithArgs(true, "P007", "available", false, false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Reserve(context.Background(), "P007"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost race", func(t *testing.T) {
		repo, mock := setupSlotMock(t)

		mock.ExpectExec(reserveQuery).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Reserve(context.Background(), "P007"), ErrSlotNotAvailable)
	})
}

func TestRelease(t *testing.T) {
	repo, mock := setupSlotMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_slots SET is_reserved = $1, status = $2")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_slots SET is_reserved = $1, status = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Release(context.Background(), "P001"))
	assert.ErrorIs(t, repo.Release(context.Background(), "P999"), ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed(t *testing.T) {
	t.Run("fills an empty table", func(t *testing.T) {
		repo, mock := setupSlotMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM parking_slots")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_slots (id,zone,status,maintenance,is_reserved) VALUES")).
			WillReturnResult(sqlmock.NewResult(0, 8))

		n, err := repo.Seed(context.Background(), 8, []string{"Zone-A", "Zone-B"})
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps existing inventory", func(t *testing.T) {
		repo, mock := setupSlotMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM parking_slots")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))

		n, err := repo.Seed(context.Background(), 100, domain.DefaultZones)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		repo, _ := setupSlotMock(t)

		_, err := repo.Seed(context.Background(), 10, nil)
		assert.ErrorIs(t, err, ErrInvalidSeed)
	})
}

func TestSeedLayout(t *testing.T) {
	slots := SeedLayout(100, domain.DefaultZones)

	require.Len(t, slots, 100)
	assert.Equal(t, "P001", slots[0].ID)
	assert.Equal(t, "Zone-A", slots[0].Zone)
	assert.Equal(t, "Zone-A", slots[24].Zone)
	assert.Equal(t, "Zone-B", slots[25].Zone)
	assert.Equal(t, "Zone-D", slots[99].Zone)
	assert.Equal(t, "P100", slots[99].ID)

	uneven := SeedLayout(10, []string{"North", "South", "East"})
	assert.Equal(t, "North", uneven[3].Zone)
	assert.Equal(t, "South", uneven[4].Zone)
	assert.Equal(t, "East", uneven[9].Zone)
}
