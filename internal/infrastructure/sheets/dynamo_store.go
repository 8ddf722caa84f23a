package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const DefaultRowsTableName = "sheet_rows"

// appendAttempts bounds how many consecutive seq values Append tries when
// another row already holds the current one.
const appendAttempts = 3

// ErrSeqConflict is returned when Append could not find a free seq.
var ErrSeqConflict = errors.New("sheets: no free row sequence")

// DynamoAPI is the subset of the DynamoDB client the store uses.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type rowItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Seq   int64    `dynamodbav:"seq"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoStore keeps every tab in a single DynamoDB table.
//
// Table requirements:
//   - PK: sheet (string)
//   - SK: seq (number)
//
// seq is the insertion timestamp in nanoseconds, so a Query in key order
// yields the rows in the order they were appended. Two appends in the same
// nanosecond take consecutive seq values. The header row is not stored.
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultRowsTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName, now: time.Now}
}

// EnsureSheet is a no-op: tabs exist implicitly as partition keys.
func (s *DynamoStore) EnsureSheet(_ context.Context, sheet string, _ []string) error {
	log.Debug().Str("sheet", sheet).Str("table", s.tableName).Msg("dynamodb tab ready")
	return nil
}

func (s *DynamoStore) Rows(ctx context.Context, sheet string) ([][]string, error) {
	items, err := s.query(ctx, sheet)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = it.Cells
		if rows[i] == nil {
			rows[i] = []string{}
		}
	}
	return rows, nil
}

func (s *DynamoStore) Append(ctx context.Context, sheet string, row []string) error {
	it := rowItem{Sheet: sheet, Seq: s.now().UnixNano(), Cells: append([]string{}, row...)}
	for attempt := 0; attempt < appendAttempts; attempt++ {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#sheet)"),
			ExpressionAttributeNames: map[string]string{
				"#sheet": "sheet",
			},
		})
		if !isConditionFailed(err) {
			return err
		}
		log.Debug().Str("sheet", sheet).Int64("seq", it.Seq).Msg("row sequence taken, retrying")
		it.Seq++
	}
	return fmt.Errorf("%w: sheet %s", ErrSeqConflict, sheet)
}

func (s *DynamoStore) Update(ctx context.Context, sheet string, index int, row []string) error {
	seq, err := s.seqAt(ctx, sheet, index)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(rowItem{Sheet: sheet, Seq: seq, Cells: append([]string{}, row...)})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#sheet)"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
		},
	})
	return conditionToRange(err)
}

func (s *DynamoStore) Delete(ctx context.Context, sheet string, index int) error {
	seq, err := s.seqAt(ctx, sheet, index)
	if err != nil {
		return err
	}
	key, err := attributevalue.MarshalMap(struct {
		Sheet string `dynamodbav:"sheet"`
		Seq   int64  `dynamodbav:"seq"`
	}{sheet, seq})
	if err != nil {
		return err
	}
	_, err = s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#sheet)"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
		},
	})
	return conditionToRange(err)
}

func (s *DynamoStore) seqAt(ctx context.Context, sheet string, index int) (int64, error) {
	items, err := s.query(ctx, sheet)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(items) {
		return 0, ErrRowOutOfRange
	}
	return items[index].Seq, nil
}

func (s *DynamoStore) query(ctx context.Context, sheet string) ([]rowItem, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#sheet = :sheet"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sheet": &types.AttributeValueMemberS{Value: sheet},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})

	var items []rowItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []rowItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// conditionToRange reports a row that vanished between lookup and write as
// out of range.
func conditionToRange(err error) error {
	if isConditionFailed(err) {
		return ErrRowOutOfRange
	}
	return err
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
