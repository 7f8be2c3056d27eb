// Package sqlite stores pathway nodes in a local SQLite file. Details are kept
// as a JSON array in a TEXT column.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS %[1]s (
	node_id     TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	details     TEXT,
	icon        TEXT,
	position    INTEGER
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_position ON %[1]s(position);
`

const columns = "node_id, title, description, details, icon, position"

// NodeStore implements repository.NodeStore on SQLite.
type NodeStore struct {
	db     *sql.DB
	table  string
	logger *zap.Logger

	listQuery   string
	updateQuery string
	insertQuery string
}

// Open creates the database file and table if needed.
func Open(path, table string, logger *zap.Logger) (*NodeStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; SQLite serialises anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	store := New(db, table, logger)
	if err := store.initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("SQLite node store opened", zap.String("path", path), zap.String("table", table))
	return store, nil
}

// New wraps an already opened database.
func New(db *sql.DB, table string, logger *zap.Logger) *NodeStore {
	return &NodeStore{
		db:     db,
		table:  table,
		logger: logger,
		listQuery: fmt.Sprintf(
			"SELECT %s FROM %s ORDER BY position ASC", columns, table),
		updateQuery: fmt.Sprintf(
			"UPDATE %s SET title = ?, description = ?, details = ?, icon = ?, position = ? WHERE node_id = ? RETURNING %s",
			table, columns),
		insertQuery: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)", table, columns),
	}
}

func (s *NodeStore) initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(schema, s.table)); err != nil {
		return fmt.Errorf("failed to create %s table: %w", s.table, err)
	}
	return nil
}

// ListByPosition implements repository.NodeStore.
func (s *NodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	rows, err := s.db.QueryContext(ctx, s.listQuery)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list pathway nodes", err)
	}
	defer rows.Close()

	nodes := []pathway.Node{}
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, appErrors.NewDatabaseError("scan pathway node", err)
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list pathway nodes", err)
	}
	return nodes, nil
}

// UpdateByID implements repository.NodeStore.
func (s *NodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	set := repository.UpdateFromNode(node)
	details, err := json.Marshal(set.Details)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to encode details").WithCause(err)
	}

	row := s.db.QueryRowContext(ctx, s.updateQuery,
		set.Title, set.Description, string(details), set.Icon, set.Position, node.ID)
	updated, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNodeNotFound(node.ID)
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError("update pathway node", err)
	}
	return &updated, nil
}

// Seed implements repository.Seeder. Rows are only inserted into an empty table.
func (s *NodeStore) Seed(ctx context.Context, nodes []pathway.Node) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, appErrors.NewDatabaseError("begin seed", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count); err != nil {
		return 0, appErrors.NewDatabaseError("count pathway nodes", err)
	}
	if count > 0 {
		s.logger.Info("Table already populated, skipping seed", zap.Int("rows", count))
		return 0, nil
	}

	for _, node := range nodes {
		row := repository.RowFromNode(node)
		details, err := json.Marshal(row.Details)
		if err != nil {
			return 0, appErrors.NewInternalError("failed to encode details").WithCause(err)
		}
		if _, err := tx.ExecContext(ctx, s.insertQuery,
			row.NodeID, row.Title, row.Description, string(details), row.Icon, row.Position); err != nil {
			return 0, appErrors.NewDatabaseError("insert pathway node", err).WithDetail("node_id", node.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, appErrors.NewDatabaseError("commit seed", err)
	}
	return len(nodes), nil
}

// Ping implements repository.Pinger.
func (s *NodeStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements repository.Closer.
func (s *NodeStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNode(sc scanner) (pathway.Node, error) {
	var (
		row     repository.Row
		details sql.NullString
		icon    sql.NullString
		pos     sql.NullInt64
	)
	if err := sc.Scan(&row.NodeID, &row.Title, &row.Description, &details, &icon, &pos); err != nil {
		return pathway.Node{}, err
	}
	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &row.Details); err != nil {
			return pathway.Node{}, fmt.Errorf("node %s: malformed details: %w", row.NodeID, err)
		}
	}
	if icon.Valid {
		row.Icon = &icon.String
	}
	if pos.Valid {
		p := int(pos.Int64)
		row.Position = &p
	}
	return row.ToNode(), nil
}
