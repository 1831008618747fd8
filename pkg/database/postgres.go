package database

import (
	"time"

	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Facility{},
		&models.Workspace{},
		&models.Booking{},
	); err != nil {
		logrus.Fatalf("failed to auto-migrate: %v", err)
	}

	ApplyBookingConstraints(db)

	return db
}

// ApplyBookingConstraints adds what AutoMigrate cannot express: an exclusion
// constraint that rejects overlapping confirmed ranges per workspace even if
// a bug slipped past the row-lock in the service layer.
func ApplyBookingConstraints(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings
				ADD CONSTRAINT bookings_confirmed_no_overlap
				EXCLUDE USING gist (
					workspace_id WITH =,
					tstzrange(start_time, end_time) WITH &&
				) WHERE (status = 'confirmed');
		EXCEPTION
			WHEN duplicate_object THEN NULL;
			WHEN duplicate_table THEN NULL;
		END $$
	`)

	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_workspace_status
		ON bookings (workspace_id, status)
	`)
}
