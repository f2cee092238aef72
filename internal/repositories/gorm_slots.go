package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRecord is the table backing GormSlotStore.
type SlotRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(191)"`
	Data      []byte    `gorm:"type:bytea;not null"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SlotRecord) TableName() string { return "slots" }

type gormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) SlotStore {
	return &gormSlotStore{db: db}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&SlotRecord{})
}

func (s *gormSlotStore) Get(ctx context.Context, key string) (*Slot, error) {
	var rec SlotRecord
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	return &Slot{Key: rec.Key, Data: rec.Data, Version: rec.Version}, nil
}

func (s *gormSlotStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	switch {
	case expectedVersion == AnyVersion:
		return s.overwrite(ctx, key, data)
	case expectedVersion == 0:
		rec := SlotRecord{Key: key, Data: data, Version: 1}
		result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if result.Error != nil {
			return 0, fmt.Errorf("failed to create slot %s: %w", key, result.Error)
		}
		if result.RowsAffected == 0 {
			return 0, ErrStaleWrite
		}
		return 1, nil
	}

	result := s.db.WithContext(ctx).
		Model(&SlotRecord{}).
		Where("key = ? AND version = ?", key, expectedVersion).
		Updates(map[string]interface{}{
			"data":       data,
			"version":    expectedVersion + 1,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update slot %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrStaleWrite
	}
	return expectedVersion + 1, nil
}

func (s *gormSlotStore) overwrite(ctx context.Context, key string, data []byte) (int64, error) {
	var version int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec SlotRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("key = ?", key).First(&rec).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = SlotRecord{Key: key, Data: data, Version: 1}
			version = 1
			return tx.Create(&rec).Error
		case err != nil:
			return err
		}

		version = rec.Version + 1
		return tx.Model(&SlotRecord{}).
			Where("key = ?", key).
			Updates(map[string]interface{}{
				"data":       data,
				"version":    version,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return version, nil
}

func (s *gormSlotStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&SlotRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
