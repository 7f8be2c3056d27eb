// Package postgres reads and writes pathway nodes over a direct pgx connection
// pool. It issues the same two statements the hosted REST endpoint performs.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

const columns = "node_id, title, description, details, icon, position"

// Querier is the subset of *pgxpool.Pool the store uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NodeStore implements repository.NodeStore on PostgreSQL.
type NodeStore struct {
	db     Querier
	pool   *pgxpool.Pool
	table  string
	logger *zap.Logger
}

// Connect opens a pool for dsn.
func Connect(ctx context.Context, dsn string, maxConns int32, table string, logger *zap.Logger) (*NodeStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	store := New(pool, table, logger)
	store.pool = pool
	logger.Info("Postgres node store connected",
		zap.String("host", cfg.ConnConfig.Host),
		zap.String("database", cfg.ConnConfig.Database),
		zap.String("table", table))
	return store, nil
}

// New wraps an existing querier.
func New(db Querier, table string, logger *zap.Logger) *NodeStore {
	return &NodeStore{
		db:     db,
		table:  pgx.Identifier{table}.Sanitize(),
		logger: logger,
	}
}

// ListByPosition implements repository.NodeStore.
func (s *NodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY position ASC", columns, s.table)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, mapError("list pathway nodes", err)
	}
	defer rows.Close()

	nodes := []pathway.Node{}
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, mapError("scan pathway node", err)
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list pathway nodes", err)
	}
	return nodes, nil
}

// UpdateByID implements repository.NodeStore.
func (s *NodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	set := repository.UpdateFromNode(node)
	query := fmt.Sprintf(
		"UPDATE %s SET title = $1, description = $2, details = $3, icon = $4, position = $5 WHERE node_id = $6 RETURNING %s",
		s.table, columns)

	updated, err := scanNode(s.db.QueryRow(ctx, query,
		set.Title, set.Description, set.Details, set.Icon, set.Position, node.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNodeNotFound(node.ID)
	}
	if err != nil {
		return nil, mapError("update pathway node", err)
	}
	return &updated, nil
}

// Seed implements repository.Seeder. Rows are only inserted into an empty table.
func (s *NodeStore) Seed(ctx context.Context, nodes []pathway.Node) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, mapError("begin seed", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count); err != nil {
		return 0, mapError("count pathway nodes", err)
	}
	if count > 0 {
		s.logger.Info("Table already populated, skipping seed", zap.Int("rows", count))
		return 0, nil
	}

	batch := &pgx.Batch{}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)", s.table, columns)
	for _, node := range nodes {
		row := repository.RowFromNode(node)
		batch.Queue(insert, row.NodeID, row.Title, row.Description, row.Details, row.Icon, row.Position)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, mapError("insert pathway nodes", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, mapError("commit seed", err)
	}
	return len(nodes), nil
}

// Ping implements repository.Pinger.
func (s *NodeStore) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Close implements repository.Closer.
func (s *NodeStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func scanNode(row pgx.Row) (pathway.Node, error) {
	var r repository.Row
	if err := row.Scan(&r.NodeID, &r.Title, &r.Description, &r.Details, &r.Icon, &r.Position); err != nil {
		return pathway.Node{}, err
	}
	return r.ToNode(), nil
}

// mapError converts driver failures to AppErrors, keeping the SQLSTATE.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return appErrors.NewDatabaseError(op, err).
			WithCode(pgErr.Code).
			WithDetail("constraint", pgErr.ConstraintName)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return appErrors.NewDatabaseError(op, err)
}
