// Package supabase reads and writes pathway nodes through the hosted
// PostgREST endpoint of a Supabase project.
package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// noRowsCode is returned by PostgREST when a single-object request matched
// zero rows.
const noRowsCode = "PGRST116"

// RestClient is satisfied by *supabase.Client and *postgrest.Client.
type RestClient interface {
	From(table string) *postgrest.QueryBuilder
}

// NodeStore implements repository.NodeStore over PostgREST.
type NodeStore struct {
	client RestClient
	table  string
	logger *zap.Logger
}

// NewClient creates the Supabase client for url and key.
func NewClient(url, key, schema string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{Schema: schema})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return client, nil
}

// NewNodeStore creates a store on table.
func NewNodeStore(client RestClient, table string, logger *zap.Logger) *NodeStore {
	return &NodeStore{client: client, table: table, logger: logger}
}

// ListByPosition implements repository.NodeStore.
func (s *NodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []repository.Row
	_, err := s.client.From(s.table).
		Select("*", "", false).
		Order("position", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, mapError("list pathway nodes", err)
	}

	nodes := make([]pathway.Node, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, row.ToNode())
	}
	return nodes, nil
}

// UpdateByID implements repository.NodeStore.
func (s *NodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var row repository.Row
	_, err := s.client.From(s.table).
		Update(repository.UpdateFromNode(node), "representation", "").
		Eq("node_id", node.ID).
		Single().
		ExecuteTo(&row)
	if err != nil {
		if errorCode(err) == noRowsCode {
			return nil, repository.ErrNodeNotFound(node.ID)
		}
		return nil, mapError("update pathway node", err).WithDetail("node_id", node.ID)
	}

	updated := row.ToNode()
	return &updated, nil
}

// errorCode extracts CODE from postgrest-go's "(CODE) message" errors.
func errorCode(err error) string {
	msg := err.Error()
	if !strings.HasPrefix(msg, "(") {
		return ""
	}
	end := strings.Index(msg, ")")
	if end < 0 {
		return ""
	}
	return msg[1:end]
}

func mapError(op string, err error) *appErrors.AppError {
	appErr := appErrors.NewExternalError("supabase", err).WithDetail("operation", op)
	if code := errorCode(err); code != "" {
		appErr.WithCode(code)
	}
	return appErr
}
