package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

func setupMockRepo(t *testing.T) (*ReservationGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// Misma config que db.NewDB: sin TranslateError el duplicate key del
	// driver no llega como gorm.ErrDuplicatedKey.
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewReservationGormRepository(gdb), mock
}

// El re-chequeo de conflicto bloquea filas, no agregados: Postgres rechaza
// FOR UPDATE sobre count(*).
var recheckSQL = regexp.QuoteMeta(
	`SELECT id FROM "reservations" WHERE slot_id = $1 AND reservation_date = $2 AND status IN ($3,$4,$5) FOR UPDATE`,
)

func TestCreateReservation_SQL(t *testing.T) {
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	newRes := func() *models.Reservation {
		return &models.Reservation{
			Code:            "abc-123",
			SlotID:          10,
			ClientID:        7,
			ReservationDate: date,
			Status:          string(domain.StatusPending),
			TotalPrice:      10000,
			DepositRequired: 3000,
		}
	}

	t.Run("turno libre inserta dentro de la transacción", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(recheckSQL).
			WithArgs(
				int64(10), date,
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
				string(domain.StatusFinalized),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "reservations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
		mock.ExpectCommit()

		res := newRes()
		err := repo.CreateReservation(context.Background(), res)

		assert.NoError(t, err)
		assert.Equal(t, uint(99), res.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("turno ocupado corta sin insertar", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(recheckSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
		mock.ExpectRollback()

		err := repo.CreateReservation(context.Background(), newRes())

		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("perder la carrera contra el índice único da slot_unavailable", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		// El re-chequeo pasó en vacío pero otra transacción comiteó
		// primero: el índice parcial devuelve duplicate key.
		mock.ExpectBegin()
		mock.ExpectQuery(recheckSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "reservations"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateReservation(context.Background(), newRes())

		assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMutateReservation_SQL(t *testing.T) {
	fetchSQL := regexp.QuoteMeta(`FROM "reservations" JOIN slots ON slots.id = reservations.slot_id JOIN courts ON courts.id = slots.court_id WHERE reservations.id = $1 AND courts.venue_id = $2`) +
		`.*` + regexp.QuoteMeta(`FOR UPDATE OF "reservations"`)

	t.Run("lee con lock y persiste en la misma transacción", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(fetchSQL).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "slot_id", "client_id", "status"}).
				AddRow(20, 10, 7, string(domain.StatusConfirmed)))
		mock.ExpectExec(`UPDATE "reservations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		now := time.Now()
		res, err := repo.MutateReservation(context.Background(), 20, 1,
			func(r *models.Reservation) error {
				return domain.Cancel(r, "lluvia", now)
			})

		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ErrSkipUpdate comitea sin escribir", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(fetchSQL).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "slot_id", "client_id", "status"}).
				AddRow(20, 10, 7, string(domain.StatusCancelled)))
		mock.ExpectCommit()

		res, err := repo.MutateReservation(context.Background(), 20, 1,
			func(r *models.Reservation) error {
				return domain.ErrSkipUpdate
			})

		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("el error del mutador aborta la transacción", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(fetchSQL).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "slot_id", "client_id", "status"}).
				AddRow(20, 10, 7, string(domain.StatusCancelled)))
		mock.ExpectRollback()

		res, err := repo.MutateReservation(context.Background(), 20, 1,
			func(r *models.Reservation) error {
				return domain.Finalize(r, time.Now())
			})

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reserva de otro predio es not_found", func(t *testing.T) {
		repo, mock := setupMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(fetchSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		res, err := repo.MutateReservation(context.Background(), 20, 2,
			func(r *models.Reservation) error { return nil })

		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
