package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vergerducoin/verger-clients/pkg/db"
)

// Document is the persisted row backing one named state document.
type Document struct {
	Name      string    `gorm:"column:name;primaryKey"`
	Data      []byte    `gorm:"column:data;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used for state documents.
func (Document) TableName() string {
	return "state_documents"
}

// SQLiteStore persists documents in the embedded state database.
type SQLiteStore struct {
	client *db.Client
}

// NewSQLiteStore migrates the schema and returns a ready store.
func NewSQLiteStore(client *db.Client) (*SQLiteStore, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if err := client.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("migrating state schema: %w", err)
	}
	return &SQLiteStore{client: client}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, name string) ([]byte, error) {
	var doc Document
	err := s.client.DB().WithContext(ctx).First(&doc, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading state document %q: %w", name, err)
	}
	return doc.Data, nil
}

func (s *SQLiteStore) Save(ctx context.Context, name string, data []byte) error {
	doc := Document{Name: name, Data: data}
	err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("saving state document %q: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	err := s.client.DB().WithContext(ctx).Delete(&Document{}, "name = ?", name).Error
	if err != nil {
		return fmt.Errorf("deleting state document %q: %w", name, err)
	}
	return nil
}
