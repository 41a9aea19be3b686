// Package store persists generation records to a local SQLite catalog.
// The engine only knows the RecordSink interface; this package is the
// optional gorm-backed implementation behind it.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BaSui01/formflow/types"
)

// GenerationRecord is one catalog row per freshly generated piece.
type GenerationRecord struct {
	ID               string    `gorm:"primaryKey;size:36"`
	PieceType        string    `gorm:"index;size:64"`
	Culture          string    `gorm:"index;size:64"`
	Name             string    `gorm:"size:128"`
	PrimaryMaterial  string    `gorm:"size:64"`
	OverallScore     float64   `gorm:"index"`
	GenerationTimeMs int64
	PolygonCount     int
	MemoryBytes      int64
	EstimatedCost    string `gorm:"size:32"`
	CreatedAt        time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (GenerationRecord) TableName() string { return "generation_records" }

// Catalog is a SQLite-backed record sink.
type Catalog struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the catalog at path and migrates the
// schema. Use ":memory:" for an ephemeral catalog in tests.
func Open(path string, logger *zap.Logger) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}

	if err := db.AutoMigrate(&GenerationRecord{}); err != nil {
		return nil, fmt.Errorf("migrate catalog schema: %w", err)
	}

	logger.Info("generation catalog opened", zap.String("path", path))
	return &Catalog{
		db:     db,
		logger: logger.With(zap.String("component", "catalog")),
	}, nil
}

// Record implements engine.RecordSink.
func (c *Catalog) Record(ctx context.Context, result *types.GenerationResult) error {
	rec := GenerationRecord{
		ID:               result.Metadata.ID,
		PieceType:        result.Parameters.Type,
		Culture:          result.Parameters.Culture,
		Name:             result.Metadata.Name,
		PrimaryMaterial:  result.Parameters.PrimaryMaterial,
		OverallScore:     result.CulturalAuthenticity.Overall,
		GenerationTimeMs: result.PerformanceMetrics.GenerationTime.Milliseconds(),
		PolygonCount:     result.PerformanceMetrics.PolygonCount,
		MemoryBytes:      result.PerformanceMetrics.MemoryBytes,
		EstimatedCost:    result.Metadata.EstimatedCost.String(),
		CreatedAt:        time.Now(),
	}

	if err := c.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return types.NewError(types.ErrStoreUnavailable, "writing generation record failed").WithCause(err)
	}
	return nil
}

// Recent returns the most recent records, newest first.
func (c *Catalog) Recent(ctx context.Context, limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var recs []GenerationRecord
	err := c.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, types.NewError(types.ErrStoreUnavailable, "reading generation records failed").WithCause(err)
	}
	return recs, nil
}

// CountByCulture returns the number of records per culture.
func (c *Catalog) CountByCulture(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Culture string
		N       int64
	}
	var rows []row
	err := c.db.WithContext(ctx).
		Model(&GenerationRecord{}).
		Select("culture, count(*) as n").
		Group("culture").
		Scan(&rows).Error
	if err != nil {
		return nil, types.NewError(types.ErrStoreUnavailable, "aggregating generation records failed").WithCause(err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Culture] = r.N
	}
	return out, nil
}

// Close closes the underlying database handle.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
