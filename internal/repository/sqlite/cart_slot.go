package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// CartSlot keeps saved carts in an embedded SQLite key-value table.
type CartSlot struct {
	db     *sql.DB
	key    string
	logger *zap.Logger
}

// NewCartSlot opens (or creates) the database at path and binds the slot to key.
func NewCartSlot(path, key string, logger *zap.Logger) (*CartSlot, error) {
	if key == "" {
		return nil, fmt.Errorf("cart storage key is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	slot := &CartSlot{db: db, key: key, logger: logger}
	if err := slot.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return slot, nil
}

func (s *CartSlot) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS cart_slots (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);`)
	return err
}

// Close closes the database connection.
func (s *CartSlot) Close() error {
	return s.db.Close()
}

func (s *CartSlot) Load() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM cart_slots WHERE key = ?`, s.key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to load cart slot", zap.String("key", s.key), zap.Error(err))
		return nil, err
	}
	return payload, nil
}

func (s *CartSlot) Save(payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO cart_slots (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, s.key, payload, time.Now().UTC())
	if err != nil {
		s.logger.Error("Failed to save cart slot", zap.String("key", s.key), zap.Error(err))
		return err
	}
	return nil
}
