// Package storage persists visit history and killed sessions in SQLite.
// It backs the ranked directory list when zoxide is not installed.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"salta/internal/domain"
	"salta/internal/logging"
	"salta/internal/ports"
)

// SQLiteRepository implements the frecency and resurrectable-session ports
// using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.FrecencySource     = (*SQLiteRepository)(nil)
	_ ports.VisitRecorder      = (*SQLiteRepository)(nil)
	_ ports.ResurrectableStore = (*SQLiteRepository)(nil)
)

// gormLogger wraps the salta logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SALTA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&VisitModel{}, &ResurrectableModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// Query returns all visited directories ranked by frecency. Ordering is
// delegated to the caller's index construction; entries come back in
// storage order.
func (r *SQLiteRepository) Query(ctx context.Context) ([]domain.DirectoryEntry, error) {
	var models []VisitModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load visit history: %w", err)
	}

	now := time.Now().UTC()
	entries := make([]domain.DirectoryEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, visitModelToEntry(m, now))
	}
	return entries, nil
}

// RecordVisit increments the visit count for path, creating the row on
// first visit.
func (r *SQLiteRepository) RecordVisit(ctx context.Context, path string) error {
	now := time.Now().UTC()
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "path"}},
			DoUpdates: clause.Assignments(map[string]any{
				"visit_count": gorm.Expr("visit_count + 1"),
				"last_visit":  now,
				"updated_at":  now,
			}),
		}).Create(&VisitModel{
			Path:       path,
			VisitCount: 1,
			LastVisit:  now,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to record visit for %s: %w", path, err)
		}
		return nil
	}, 3)
}

// RecordKilled stores a killed session so it can be recreated later.
func (r *SQLiteRepository) RecordKilled(ctx context.Context, rec domain.SessionRecord) error {
	model := domainToResurrectableModel(rec)
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"working_dir", "last_seen", "updated_at",
			}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to record killed session %s: %w", rec.Name, err)
		}
		return nil
	}, 3)
}

// ListResurrectable returns all stored killed sessions.
func (r *SQLiteRepository) ListResurrectable(ctx context.Context) ([]domain.SessionRecord, error) {
	var models []ResurrectableModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list resurrectable sessions: %w", err)
	}

	records := make([]domain.SessionRecord, 0, len(models))
	for _, m := range models {
		records = append(records, resurrectableModelToDomain(m))
	}
	return records, nil
}

// DeleteResurrectable removes a stored killed session. Deleting a name that
// is not stored is not an error.
func (r *SQLiteRepository) DeleteResurrectable(ctx context.Context, name string) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Delete(&ResurrectableModel{}, "name = ?", name).Error; err != nil {
			return fmt.Errorf("failed to delete resurrectable session %s: %w", name, err)
		}
		return nil
	}, 3)
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
