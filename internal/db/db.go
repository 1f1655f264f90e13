package db

import (
	"log"
	"time"

	"github.com/TurneroApp/cancha-scheduler/internal/config"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	// TranslateError convierte el duplicate key del driver en
	// gorm.ErrDuplicatedKey, que el repositorio mapea a slot_unavailable.
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.Sport{},
		&models.Court{},
		&models.Slot{},
		&models.Rate{},
		&models.Client{},
		&models.Reservation{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Respaldo del chequeo transaccional: un (turno, fecha) solo puede tener
	// una reserva en estado vivo (los de reservation.ActiveStatuses), incluso
	// si alguien escribe por fuera del motor.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservations_slot_date_alive
        ON reservations (slot_id, reservation_date)
        WHERE status <> 'cancelada'
    `)

	db.Exec(`
        UPDATE venues
        SET timezone = 'America/Argentina/Buenos_Aires'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
