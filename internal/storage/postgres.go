package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one collection snapshot. The table only ever holds one row
// per collection name; every save overwrites it.
type Document struct {
	Name      string `gorm:"primaryKey;size:64"`
	Body      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string { return "collection_documents" }

type PostgresPersister struct {
	db *gorm.DB
}

func OpenPostgres(dsn string) (*PostgresPersister, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return NewPostgresPersister(db)
}

func NewPostgresPersister(db *gorm.DB) (*PostgresPersister, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &PostgresPersister{db: db}, nil
}

func (p *PostgresPersister) Load(ctx context.Context, name string) ([]byte, error) {
	var doc Document
	err := p.db.WithContext(ctx).First(&doc, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return doc.Body, nil
}

func (p *PostgresPersister) Save(ctx context.Context, name string, data []byte) error {
	doc := Document{Name: name, Body: data, UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (p *PostgresPersister) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
