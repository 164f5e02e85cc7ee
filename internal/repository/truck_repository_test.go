package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

func newMockTruckRepository(t *testing.T) (*TruckRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewTruckRepository(gormDB), mock, mockDB
}

func TestTruckRepositoryGetByID(t *testing.T) {
	t.Run("finds existing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		truckID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "plate_number", "brand", "model", "status"}).
			AddRow(truckID, "AB123CD", "Volvo", "FH16", "available")

		mock.ExpectQuery(`SELECT \* FROM "trucks" WHERE id = \$1`).
			WithArgs(truckID, 1).
			WillReturnRows(rows)

		truck, err := repo.GetByID(context.Background(), truckID)
		require.NoError(t, err)

		assert.Equal(t, truckID, truck.ID)
		assert.Equal(t, "AB123CD", truck.PlateNumber)
		assert.Equal(t, model.VehicleStatusAvailable, truck.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		truckID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "trucks" WHERE id = \$1`).
			WithArgs(truckID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByID(context.Background(), truckID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTruckRepositorySetStatus(t *testing.T) {
	t.Run("updates status", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		truckID := uuid.New()
		mock.ExpectExec(`UPDATE "trucks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(context.Background(), truckID, model.VehicleStatusInUse)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means missing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "trucks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(context.Background(), uuid.New(), model.VehicleStatusAvailable)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTruckRepositoryAccrueTripTotals(t *testing.T) {
	t.Run("increments counters in one update", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "trucks" SET .*mileage.*\+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AccrueTripTotals(context.Background(), uuid.New(), 50, 20)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means missing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "trucks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AccrueTripTotals(context.Background(), uuid.New(), 50, 20)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTruckRepositoryDelete(t *testing.T) {
	t.Run("deletes existing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		truckID := uuid.New()
		mock.ExpectExec(`DELETE FROM "trucks" WHERE id = \$1`).
			WithArgs(truckID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), truckID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means missing truck", func(t *testing.T) {
		repo, mock, mockDB := newMockTruckRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "trucks" WHERE id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
