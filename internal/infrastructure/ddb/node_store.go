// Package ddb stores pathway nodes in a DynamoDB table keyed by node_id.
package ddb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// DBClient is the subset of the DynamoDB API the store uses.
type DBClient interface {
	dynamodb.ScanAPIClient
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// NodeStore implements repository.NodeStore on DynamoDB.
type NodeStore struct {
	client DBClient
	table  string
	logger *zap.Logger
}

// NewClient builds a DynamoDB client for region. A non-empty endpoint points
// the client at DynamoDB Local.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	awsCfg, err := awsConfig.LoadDefaultConfig(loadCtx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		o.HTTPClient = &http.Client{Timeout: 15 * time.Second}
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewNodeStore creates a store on table.
func NewNodeStore(client DBClient, table string, logger *zap.Logger) *NodeStore {
	return &NodeStore{client: client, table: table, logger: logger}
}

// ListByPosition implements repository.NodeStore. DynamoDB has no ordered
// scan, so every page is read and the result is stably sorted by position.
func (s *NodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	nodes := []pathway.Node{}

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, s.mapError("scan pathway nodes", err)
		}
		for _, item := range page.Items {
			var row repository.Row
			if err := attributevalue.UnmarshalMap(item, &row); err != nil {
				s.logger.Warn("Skipping malformed pathway item", zap.Error(err))
				continue
			}
			nodes = append(nodes, row.ToNode())
		}
	}

	pathway.SortByPosition(nodes)
	return nodes, nil
}

// UpdateByID implements repository.NodeStore. The condition keeps UpdateItem
// from creating a row for an unknown id.
func (s *NodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	set := repository.UpdateFromNode(node)

	update := expression.
		Set(expression.Name("title"), expression.Value(set.Title)).
		Set(expression.Name("description"), expression.Value(set.Description)).
		Set(expression.Name("details"), expression.Value(set.Details)).
		Set(expression.Name("position"), expression.Value(set.Position))
	if set.Icon != nil {
		update = update.Set(expression.Name("icon"), expression.Value(*set.Icon))
	} else {
		update = update.Remove(expression.Name("icon"))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("node_id"))).
		Build()
	if err != nil {
		return nil, appErrors.NewInternalError("failed to build update expression").WithCause(err)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"node_id": &types.AttributeValueMemberS{Value: node.ID},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, repository.ErrNodeNotFound(node.ID)
		}
		return nil, s.mapError("update pathway node", err)
	}

	var row repository.Row
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return nil, appErrors.NewDatabaseError("decode updated pathway node", err)
	}
	updated := row.ToNode()
	return &updated, nil
}

// Ping implements repository.Pinger.
func (s *NodeStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	if err != nil {
		return s.mapError("describe table", err)
	}
	return nil
}

func (s *NodeStore) mapError(op string, err error) error {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return appErrors.NewDatabaseError(op, err)
	}

	s.logger.Warn("DynamoDB request failed",
		zap.String("operation", op),
		zap.String("error_code", ae.ErrorCode()),
		zap.String("error_message", ae.ErrorMessage()))

	switch ae.ErrorCode() {
	case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
		return appErrors.NewUnavailableError("dynamodb").WithCode(ae.ErrorCode()).WithCause(err)
	default:
		return appErrors.NewDatabaseError(op, err).WithCode(ae.ErrorCode())
	}
}
