package repository

import (
	"context"
	"sort"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLogsTableName = "integration_logs"
	logsUserIDIndex      = "user_id-index"
	logsQuoteIDIndex     = "quote_id-index"
	logsActionIndex      = "action-index"
)

type integrationLogItem struct {
	ID          string                 `dynamodbav:"id"`
	UserID      string                 `dynamodbav:"user_id"`
	QuoteID     string                 `dynamodbav:"quote_id,omitempty"`
	Action      string                 `dynamodbav:"action"`
	Status      string                 `dynamodbav:"status"`
	Payload     map[string]interface{} `dynamodbav:"payload,omitempty"`
	PayloadRaw  string                 `dynamodbav:"payload_raw,omitempty"`
	Response    map[string]interface{} `dynamodbav:"response,omitempty"`
	ResponseRaw string                 `dynamodbav:"response_raw,omitempty"`
	CreatedAt   string                 `dynamodbav:"created_at"`
}

// IntegrationLogDynamoRepository persists IntegrationLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//   - GSI: quote_id-index (PK: quote_id, SK: created_at)
//   - GSI: action-index (PK: action, SK: created_at)
//
// Append-only: the repository intentionally exposes no update or delete. The
// created_at sort keys let all listings come back newest-first straight from
// the index.

type IntegrationLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntegrationLogRepository = (*IntegrationLogDynamoRepository)(nil)

func NewIntegrationLogDynamoRepository(ddb *dynamodb.Client) *IntegrationLogDynamoRepository {
	return &IntegrationLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOGS_TABLE", defaultLogsTableName),
	}
}

func (r *IntegrationLogDynamoRepository) Append(ctx context.Context, entry entities.IntegrationLog) (entities.IntegrationLog, error) {
	it := toIntegrationLogItem(entry)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IntegrationLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.IntegrationLog{}, err
	}
	return entry, nil
}

func (r *IntegrationLogDynamoRepository) ListAll(ctx context.Context) ([]entities.IntegrationLog, error) {
	entries := make([]entities.IntegrationLog, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		batch, err := unmarshalLogItems(out.Items)
		if err != nil {
			return nil, err
		}
		entries = append(entries, batch...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *IntegrationLogDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.IntegrationLog, error) {
	return r.queryIndex(ctx, logsUserIDIndex, "user_id", userID)
}

func (r *IntegrationLogDynamoRepository) ListByQuote(ctx context.Context, quoteID string) ([]entities.IntegrationLog, error) {
	return r.queryIndex(ctx, logsQuoteIDIndex, "quote_id", quoteID)
}

func (r *IntegrationLogDynamoRepository) ListByAction(ctx context.Context, action entities.LogAction) ([]entities.IntegrationLog, error) {
	return r.queryIndex(ctx, logsActionIndex, "action", string(action))
}

func (r *IntegrationLogDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.IntegrationLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalLogItems(out.Items)
}

func unmarshalLogItems(raw []map[string]types.AttributeValue) ([]entities.IntegrationLog, error) {
	entries := make([]entities.IntegrationLog, 0, len(raw))
	for _, item := range raw {
		var it integrationLogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromIntegrationLogItem(it))
	}
	return entries, nil
}

func toIntegrationLogItem(e entities.IntegrationLog) integrationLogItem {
	return integrationLogItem{
		ID:          e.ID,
		UserID:      e.UserID,
		QuoteID:     e.QuoteID,
		Action:      string(e.Action),
		Status:      e.Status,
		Payload:     e.Payload,
		PayloadRaw:  string(e.PayloadRaw),
		Response:    e.Response,
		ResponseRaw: string(e.ResponseRaw),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromIntegrationLogItem(it integrationLogItem) entities.IntegrationLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.IntegrationLog{
		ID:          it.ID,
		UserID:      it.UserID,
		QuoteID:     it.QuoteID,
		Action:      entities.LogAction(it.Action),
		Status:      it.Status,
		Payload:     it.Payload,
		PayloadRaw:  []byte(it.PayloadRaw),
		Response:    it.Response,
		ResponseRaw: []byte(it.ResponseRaw),
		CreatedAt:   createdAt,
	}
}
