//go:generate mockery --name KVRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jindam_vocab/internal/middleware"
	"jindam_vocab/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository は名前空間付きのキーバリューストア
type KVRepository interface {
	Get(ctx context.Context, db *gorm.DB, namespace, key string) (*model.KVEntry, error)
	// GetForUpdate はトランザクション内で行ロックを取って読みます (PostgreSQL のみ)
	GetForUpdate(ctx context.Context, tx *gorm.DB, namespace, key string) (*model.KVEntry, error)
	Create(ctx context.Context, tx *gorm.DB, entry *model.KVEntry) error
	Update(ctx context.Context, tx *gorm.DB, entry *model.KVEntry) error
	Delete(ctx context.Context, tx *gorm.DB, namespace, key string) error
}

type gormKVRepository struct{}

func NewGormKVRepository() KVRepository {
	return &gormKVRepository{}
}

func (r *gormKVRepository) Get(ctx context.Context, db *gorm.DB, namespace, key string) (*model.KVEntry, error) {
	return r.find(ctx, db.WithContext(ctx), namespace, key, "gormKVRepository.Get")
}

func (r *gormKVRepository) GetForUpdate(ctx context.Context, tx *gorm.DB, namespace, key string) (*model.KVEntry, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.find(ctx, q, namespace, key, "gormKVRepository.GetForUpdate")
}

func (r *gormKVRepository) find(ctx context.Context, q *gorm.DB, namespace, key, op string) (*model.KVEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.KVEntry
	result := q.Where("namespace = ? AND kv_key = ?", namespace, key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding kv entry in DB",
			"error", result.Error,
			"namespace", namespace,
			"key", key,
		)
		return nil, fmt.Errorf("%s: %w", op, result.Error)
	}
	return &entry, nil
}

func (r *gormKVRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.KVEntry) error {
	logger := middleware.GetLogger(ctx)
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if (errors.As(result.Error, &pgErr) && pgErr.Code == "23505") || errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			logger.Warn("Duplicate key error on create kv entry",
				"error", result.Error,
				"namespace", entry.Namespace,
				"key", entry.Key,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating kv entry in DB",
			"error", result.Error,
			"namespace", entry.Namespace,
			"key", entry.Key,
		)
		return fmt.Errorf("gormKVRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormKVRepository) Update(ctx context.Context, tx *gorm.DB, entry *model.KVEntry) error {
	logger := middleware.GetLogger(ctx)
	entry.UpdatedAt = time.Now().UTC()
	result := tx.WithContext(ctx).Model(&model.KVEntry{}).
		Where("namespace = ? AND kv_key = ?", entry.Namespace, entry.Key).
		Updates(map[string]interface{}{
			"value":      entry.Value,
			"updated_at": entry.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating kv entry in DB",
			"error", result.Error,
			"namespace", entry.Namespace,
			"key", entry.Key,
		)
		return fmt.Errorf("gormKVRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormKVRepository) Delete(ctx context.Context, tx *gorm.DB, namespace, key string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("namespace = ? AND kv_key = ?", namespace, key).Delete(&model.KVEntry{})
	if result.Error != nil {
		logger.Error("Error deleting kv entry in DB",
			"error", result.Error,
			"namespace", namespace,
			"key", key,
		)
		return fmt.Errorf("gormKVRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
