package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"campus-event-catalog/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteSlotStore(t *testing.T) (SlotStore, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "slots.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// SQLite allows one writer; a single connection keeps writes ordered.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormSlotStore(db), db
}

func TestGormSlotStore(t *testing.T) {
	t.Run("versions", func(t *testing.T) {
		store, _ := newSQLiteSlotStore(t)
		testSlotStoreVersions(t, store)
	})
	t.Run("single winner", func(t *testing.T) {
		store, _ := newSQLiteSlotStore(t)
		testSlotStoreSingleWinner(t, store)
	})
	t.Run("copies data", func(t *testing.T) {
		store, _ := newSQLiteSlotStore(t)
		testSlotStoreCopiesData(t, store)
	})
}

func TestGormSlotStoreConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteSlotStore(t)

	if _, err := store.Put(ctx, "events", []byte("[]"), 0); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another writer bumps the row behind our back.
	if err := db.Model(&SlotRecord{}).Where("key = ?", "events").Update("version", 7).Error; err != nil {
		t.Fatalf("bump version: %v", err)
	}

	if _, err := store.Put(ctx, "events", []byte(`[{"id":"1"}]`), 1); !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite, got %v", err)
	}
	slot, err := store.Get(ctx, "events")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(slot.Data) != "[]" || slot.Version != 7 {
		t.Errorf("stale write must not change the row, got %q v%d", slot.Data, slot.Version)
	}

	if v, err := store.Put(ctx, "events", []byte(`[{"id":"1"}]`), 7); err != nil || v != 8 {
		t.Errorf("expected version 8, got %d (%v)", v, err)
	}
}

func TestEventRepositoryOverGorm(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteSlotStore(t)
	repo := NewEventRepository(store, seedEvents)

	if _, _, err := repo.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := repo.Append(ctx, models.Event{ID: "event-sql"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	events, version, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(events) != 7 || events[0].ID != "event-sql" || version != 2 {
		t.Errorf("unexpected catalog %v at version %d", ids(events), version)
	}
}
