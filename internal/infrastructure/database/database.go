package database

import (
	"fmt"

	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/config"
	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/database/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	gormConfig := &gorm.Config{
		// Os repositórios abrem transações explícitas onde precisam;
		// a transação implícita por operação só adiciona overhead.
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// Necessário para que violações de unicidade virem
		// gorm.ErrDuplicatedKey na tradução de erros dos repositórios.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	RegisterCallbacks(db)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add indexes: %w", err)
	}
	if err := migrations.AddSamplingIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to add sampling indexes: %w", err)
	}

	return db, nil
}
