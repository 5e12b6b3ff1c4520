package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mirrorlake/guesswho/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		player_id TEXT,
		human_character_id TEXT,
		ai_character_id TEXT,
		current_turn TEXT NOT NULL,
		status TEXT NOT NULL,
		eliminated_json TEXT NOT NULL DEFAULT '[]',
		turn_count INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_games_player ON games(player_id, created_at);

	CREATE TABLE IF NOT EXISTS game_history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		game_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		content TEXT NOT NULL,
		response TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_game ON game_history(game_id, seq);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// CreateGame persists a new game. The history log needs no initialization
// beyond the absence of rows.
func (s *SQLiteStore) CreateGame(ctx context.Context, game *domain.Game) error {
	eliminated, err := json.Marshal(emptyIfNil(game.Eliminated))
	if err != nil {
		return fmt.Errorf("marshal eliminated set: %w", err)
	}

	query := `
	INSERT INTO games (id, player_id, human_character_id, ai_character_id,
		current_turn, status, eliminated_json, turn_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		game.ID, nullable(game.PlayerID), nullable(game.HumanCharacterID), nullable(game.AICharacterID),
		string(game.CurrentTurn), string(game.Status), string(eliminated),
		game.TurnCount, game.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// GetGame retrieves a game by ID, or (nil, nil) if absent.
func (s *SQLiteStore) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	query := `
		SELECT id, player_id, human_character_id, ai_character_id,
		       current_turn, status, eliminated_json, turn_count, created_at
		FROM games WHERE id = ?`

	return scanGame(s.db.QueryRowContext(ctx, query, id))
}

// UpdateGame merges the non-nil fields of update into the stored game.
func (s *SQLiteStore) UpdateGame(ctx context.Context, id string, update domain.GameUpdate) (*domain.Game, error) {
	var sets []string
	var args []interface{}

	if update.HumanCharacterID != nil {
		sets = append(sets, "human_character_id = ?")
		args = append(args, nullable(*update.HumanCharacterID))
	}
	if update.AICharacterID != nil {
		sets = append(sets, "ai_character_id = ?")
		args = append(args, nullable(*update.AICharacterID))
	}
	if update.CurrentTurn != nil {
		sets = append(sets, "current_turn = ?")
		args = append(args, string(*update.CurrentTurn))
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.Eliminated != nil {
		eliminated, err := json.Marshal(emptyIfNil(*update.Eliminated))
		if err != nil {
			return nil, fmt.Errorf("marshal eliminated set: %w", err)
		}
		sets = append(sets, "eliminated_json = ?")
		args = append(args, string(eliminated))
	}
	if update.TurnCount != nil {
		sets = append(sets, "turn_count = ?")
		args = append(args, *update.TurnCount)
	}

	if len(sets) > 0 {
		query := "UPDATE games SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		args = append(args, id)

		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("update game: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("get rows affected: %w", err)
		}
		if rows == 0 {
			return nil, ErrNotFound
		}
	}

	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNotFound
	}
	return game, nil
}

// AppendHistory assigns ID, Seq and CreatedAt and appends the entry.
// Retries on SQLITE_BUSY with exponential backoff.
func (s *SQLiteStore) AppendHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	var err error
	for i := 0; i < maxRetries; i++ {
		err = s.appendHistoryOnce(ctx, entry)
		if err == nil {
			return nil
		}
		if !isSQLiteBusy(err) || i == maxRetries-1 {
			break
		}
		delay := baseDelay * time.Duration(1<<i)
		slog.Debug("AppendHistory hit SQLITE_BUSY, retrying",
			"game_id", entry.GameID,
			"attempt", i+1,
			"delay", delay)
		time.Sleep(delay)
	}
	return fmt.Errorf("append history for game %s: %w", entry.GameID, err)
}

func (s *SQLiteStore) appendHistoryOnce(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
	INSERT INTO game_history (id, game_id, kind, content, response, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.GameID, string(entry.Kind), entry.Content,
		nullable(entry.Response), entry.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get entry sequence: %w", err)
	}
	entry.Seq = seq
	return nil
}

// GetHistory returns a game's history ordered by sequence number.
func (s *SQLiteStore) GetHistory(ctx context.Context, gameID string) ([]domain.HistoryEntry, error) {
	query := `
		SELECT seq, id, game_id, kind, content, response, created_at
		FROM game_history WHERE game_id = ? ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close history rows", "error", closeErr)
		}
	}()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		var kind string
		var response sql.NullString
		var createdAt int64

		if err := rows.Scan(&e.Seq, &e.ID, &e.GameID, &kind, &e.Content, &response, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Kind = domain.EntryKind(kind)
		e.Response = response.String
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// ListGamesByPlayer returns the games created by a player, newest first.
func (s *SQLiteStore) ListGamesByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error) {
	query := `
		SELECT id, player_id, human_character_id, ai_character_id,
		       current_turn, status, eliminated_json, turn_count, created_at
		FROM games WHERE player_id = ? ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("query games by player: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close games rows", "error", closeErr)
		}
	}()

	var games []*domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game rows: %w", err)
	}
	return games, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*domain.Game, error) {
	var game domain.Game
	var playerID, humanID, aiID sql.NullString
	var turn, status, eliminatedJSON string
	var createdAt int64

	err := row.Scan(
		&game.ID, &playerID, &humanID, &aiID,
		&turn, &status, &eliminatedJSON, &game.TurnCount, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan game row: %w", err)
	}

	game.PlayerID = playerID.String
	game.HumanCharacterID = humanID.String
	game.AICharacterID = aiID.String
	game.CurrentTurn = domain.Turn(turn)
	game.Status = domain.Status(status)
	game.CreatedAt = time.Unix(createdAt, 0).UTC()

	if err := json.Unmarshal([]byte(eliminatedJSON), &game.Eliminated); err != nil {
		return nil, fmt.Errorf("unmarshal eliminated set: %w", err)
	}
	return &game, nil
}

// isSQLiteBusy checks for the SQLite concurrency errors that warrant a retry.
func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
