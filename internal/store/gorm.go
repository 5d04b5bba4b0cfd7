package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JSONValue is a raw JSON document stored in a text column.
type JSONValue []byte

// Value implements the driver.Valuer interface
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return "null", nil
	}
	return string(v), nil
}

// Scan implements the sql.Scanner interface
func (v *JSONValue) Scan(value interface{}) error {
	switch t := value.(type) {
	case nil:
		*v = JSONValue("null")
	case []byte:
		*v = append(JSONValue(nil), t...)
	case string:
		*v = JSONValue(t)
	default:
		return fmt.Errorf("unsupported JSONValue source %T", value)
	}
	return nil
}

// Entry is one key-value record.
type Entry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:191"`
	Value     JSONValue `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormBackend persists entries through gorm, on SQLite or Postgres.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	err := b.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

func (b *GormBackend) Put(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: JSONValue(value), UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
