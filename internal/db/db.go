package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/config"
	"github.com/ricascor080/Back-Barber/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Schedule{},
		&models.Service{},
		&models.Reservation{},
		&models.Payment{},
		&models.UserCard{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// El chequeo de disponibilidad en la aplicación es solo un fast-reject:
	// dos requests concurrentes pueden pasarlo antes de que alguna persista.
	// La fuente de verdad contra el doble agendamiento es esta constraint de
	// exclusión sobre (barbero, intervalo) en reservas pending/confirmed.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$
        BEGIN
            ALTER TABLE reservations
                ADD CONSTRAINT reservations_no_overlap
                EXCLUDE USING gist (
                    barber_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                )
                WHERE (
                    status IN ('pending', 'confirmed')
                    AND barber_id IS NOT NULL
                    AND start_time IS NOT NULL
                );
        EXCEPTION
            WHEN duplicate_object THEN NULL;
            WHEN duplicate_table THEN NULL;
        END $$;
    `)

	return db
}
