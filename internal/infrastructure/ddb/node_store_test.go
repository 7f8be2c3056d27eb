package ddb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

type mockDBClient struct {
	mock.Mock
}

func (m *mockDBClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

func (m *mockDBClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.UpdateItemOutput), args.Error(1)
}

func (m *mockDBClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

func item(t *testing.T, n pathway.Node) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(repository.RowFromNode(n))
	require.NoError(t, err)
	return av
}

func TestListByPositionReadsAllPagesAndSorts(t *testing.T) {
	ctx := context.Background()
	client := new(mockDBClient)
	lastKey := map[string]types.AttributeValue{"node_id": &types.AttributeValueMemberS{Value: "b"}}

	client.On("Scan", ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey == nil
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			item(t, pathway.Node{ID: "c", Title: "C", Position: 3}),
			item(t, pathway.Node{ID: "b", Title: "B", Position: 2}),
		},
		LastEvaluatedKey: lastKey,
	}, nil).Once()
	client.On("Scan", ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{
			item(t, pathway.Node{ID: "a", Title: "A", Position: 1}),
		},
	}, nil).Once()

	store := NewNodeStore(client, "pathway_nodes", zap.NewNop())
	nodes, err := store.ListByPosition(ctx)
	require.NoError(t, err)

	require.Len(t, nodes, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{nodes[0].ID, nodes[1].ID, nodes[2].ID})
	client.AssertExpectations(t)
}

func TestUpdateByIDUsesConditionAndReturnsNewImage(t *testing.T) {
	ctx := context.Background()
	client := new(mockDBClient)
	node := pathway.Node{ID: "degree", Title: "New", Details: []string{"x"}, Position: 4}

	client.On("UpdateItem", ctx, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		key, ok := in.Key["node_id"].(*types.AttributeValueMemberS)
		return ok && key.Value == "degree" &&
			aws.ToString(in.ConditionExpression) != "" &&
			in.ReturnValues == types.ReturnValueAllNew
	})).Return(&dynamodb.UpdateItemOutput{Attributes: item(t, node)}, nil)

	store := NewNodeStore(client, "pathway_nodes", zap.NewNop())
	updated, err := store.UpdateByID(ctx, node)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, []string{"x"}, updated.Details)
	assert.Equal(t, 4, updated.Position)
}

func TestUpdateByIDUnknownNode(t *testing.T) {
	ctx := context.Background()
	client := new(mockDBClient)
	client.On("UpdateItem", ctx, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")})

	store := NewNodeStore(client, "pathway_nodes", zap.NewNop())
	_, err := store.UpdateByID(ctx, pathway.Node{ID: "ghost"})
	assert.True(t, appErrors.IsNotFound(err))
}

func TestThrottlingMapsToUnavailable(t *testing.T) {
	ctx := context.Background()
	client := new(mockDBClient)
	client.On("Scan", ctx, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException", Message: "slow down"})

	store := NewNodeStore(client, "pathway_nodes", zap.NewNop())
	_, err := store.ListByPosition(ctx)
	assert.True(t, appErrors.IsUnavailable(err))
}
