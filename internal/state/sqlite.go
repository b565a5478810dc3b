package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// ErrModelNotFound is returned when no stored model has the requested name.
var ErrModelNotFound = errors.New("state: model not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Open opens a connection to the SQLite database, creating the parent
// directory if needed. Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// generateID creates a new UUID.
func generateID() string {
	return uuid.New().String()
}

// SaveModel inserts or updates a named precision model.
func (s *SQLiteStore) SaveModel(name string, pm geom.PrecisionModel) (*StoredModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	now := time.Now().UTC()
	model := &StoredModel{
		Name:      name,
		ModelType: pm.ModelType().String(),
		Scale:     pm.Scale(),
		GridSize:  pm.ExplicitGridSize(),
		UpdatedAt: now,
	}

	existing, err := s.GetModel(name)
	if err != nil && !errors.Is(err, ErrModelNotFound) {
		return nil, fmt.Errorf("failed to check existing model: %w", err)
	}

	if existing != nil {
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		_, err = s.db.Exec(
			`UPDATE precision_models SET model_type = ?, scale = ?, grid_size = ?, updated_at = ? WHERE id = ?`,
			model.ModelType, model.Scale, model.GridSize, model.UpdatedAt, model.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update model: %w", err)
		}
		return model, nil
	}

	model.ID = generateID()
	model.CreatedAt = now
	_, err = s.db.Exec(
		`INSERT INTO precision_models (id, name, model_type, scale, grid_size, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		model.ID, model.Name, model.ModelType, model.Scale, model.GridSize, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert model: %w", err)
	}
	return model, nil
}

// GetModel retrieves a stored model by name.
func (s *SQLiteStore) GetModel(name string) (*StoredModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	model := &StoredModel{}
	err := s.db.QueryRow(
		`SELECT id, name, model_type, scale, grid_size, created_at, updated_at
		 FROM precision_models WHERE name = ?`,
		name,
	).Scan(&model.ID, &model.Name, &model.ModelType, &model.Scale, &model.GridSize, &model.CreatedAt, &model.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}
	return model, nil
}

// ListModels returns all stored models ordered by name.
func (s *SQLiteStore) ListModels() ([]*StoredModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, name, model_type, scale, grid_size, created_at, updated_at
		 FROM precision_models ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var models []*StoredModel
	for rows.Next() {
		model := &StoredModel{}
		if err := rows.Scan(&model.ID, &model.Name, &model.ModelType, &model.Scale, &model.GridSize, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate models: %w", err)
	}
	return models, nil
}

// DeleteModel removes a stored model by name.
func (s *SQLiteStore) DeleteModel(name string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	res, err := s.db.Exec(`DELETE FROM precision_models WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete model: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete model: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return nil
}
