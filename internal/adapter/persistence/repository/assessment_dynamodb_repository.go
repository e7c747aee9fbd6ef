package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssessmentsTableName = "opnames"
	assessmentsCustomerIndex    = "klantnummer-index"
)

type opnameItem struct {
	Key                  string `dynamodbav:"opname_key"`
	Customer             int    `dynamodbav:"klantnummer"`
	MainProjectKey       int    `dynamodbav:"hoofdproject_key"`
	MainProjectName      string `dynamodbav:"hoofdproject"`
	HighestSelectedLevel int    `dynamodbav:"hoogst_geselecteerd_projectniveau"`

	StartBookingDate string `dynamodbav:"start_boekdatum,omitempty"`
	EndBookingDate   string `dynamodbav:"einde_boekdatum,omitempty"`

	BudgetCostBasis        string `dynamodbav:"grondslag_calculatie_kosten"`
	BookedCostBasis        string `dynamodbav:"grondslag_geboekte_kosten"`
	ParagraphGroupingLevel int    `dynamodbav:"groepering_paragraafniveau"`

	Aggregates      entities.AssessmentAggregates `dynamodbav:"aggregaten"`
	AggregatesDirty bool                          `dynamodbav:"aggregaten_verouderd"`

	Status       string `dynamodbav:"autorisatie_status"`
	Saved        bool   `dynamodbav:"opgeslagen"`
	Remark       string `dynamodbav:"opmerking,omitempty"`
	AuthorizedBy string `dynamodbav:"autoriseerder,omitempty"`
	AuthorizedAt string `dynamodbav:"autorisatie_datum,omitempty"`

	CreatedAt string `dynamodbav:"aanmaakdatum"`
	CreatedBy string `dynamodbav:"aanmaker"`
	UpdatedAt string `dynamodbav:"wijzigdatum"`
	UpdatedBy string `dynamodbav:"wijziger"`
}

// AssessmentDynamoRepository persists Assessment entities in DynamoDB.
//
// Table requirements:
//   - PK: opname_key (string)
//   - GSI: klantnummer-index (PK: klantnummer)

type AssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPNAMES_TABLE", defaultAssessmentsTableName),
	}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	av, err := attributevalue.MarshalMap(toOpnameItem(a))
	if err != nil {
		return entities.Assessment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "opname_key",
		},
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByKey(ctx context.Context, customer int, key string) (entities.Assessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"opname_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assessment{}, nil
	}

	var it opnameItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assessment{}, err
	}
	// Keys are globally unique; the customer check guards against a key
	// leaking across tenants.
	if it.Customer != customer {
		return entities.Assessment{}, nil
	}
	return fromOpnameItem(it), nil
}

func (r *AssessmentDynamoRepository) ListByCustomer(ctx context.Context, customer int) ([]entities.Assessment, error) {
	return r.queryByCustomer(ctx, customer, nil)
}

func (r *AssessmentDynamoRepository) ListByMainProject(ctx context.Context, customer int, mainProjectKey int) ([]entities.Assessment, error) {
	return r.queryByCustomer(ctx, customer, aws.Int(mainProjectKey))
}

func (r *AssessmentDynamoRepository) queryByCustomer(ctx context.Context, customer int, mainProjectKey *int) ([]entities.Assessment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assessmentsCustomerIndex),
		KeyConditionExpression: aws.String("klantnummer = :klant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":klant": &types.AttributeValueMemberN{Value: strconv.Itoa(customer)},
		},
	}
	if mainProjectKey != nil {
		in.FilterExpression = aws.String("hoofdproject_key = :project")
		in.ExpressionAttributeValues[":project"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*mainProjectKey)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Assessment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it opnameItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOpnameItem(it))
	}
	return items, nil
}

func (r *AssessmentDynamoRepository) Save(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	av, err := attributevalue.MarshalMap(toOpnameItem(a))
	if err != nil {
		return entities.Assessment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "opname_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assessment{}, nil
		}
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) Delete(ctx context.Context, customer int, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"opname_key": &types.AttributeValueMemberS{Value: key},
		},
		ConditionExpression: aws.String("klantnummer = :klant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":klant": &types.AttributeValueMemberN{Value: strconv.Itoa(customer)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already gone or not this tenant's item; delete is idempotent.
			return nil
		}
		return err
	}
	return nil
}

func toOpnameItem(a entities.Assessment) opnameItem {
	return opnameItem{
		Key:                    a.Key,
		Customer:               a.Customer,
		MainProjectKey:         a.MainProjectKey,
		MainProjectName:        a.MainProjectName,
		HighestSelectedLevel:   a.HighestSelectedLevel,
		StartBookingDate:       formatDate(a.StartBookingDate),
		EndBookingDate:         formatDate(a.EndBookingDate),
		BudgetCostBasis:        string(a.BudgetCostBasis),
		BookedCostBasis:        string(a.BookedCostBasis),
		ParagraphGroupingLevel: a.ParagraphGroupingLevel,
		Aggregates:             a.Aggregates,
		AggregatesDirty:        a.AggregatesDirty,
		Status:                 string(a.Status),
		Saved:                  a.Saved,
		Remark:                 a.Remark,
		AuthorizedBy:           a.AuthorizedBy,
		AuthorizedAt:           formatTimestamp(a.AuthorizedAt),
		CreatedAt:              a.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:              a.CreatedBy,
		UpdatedAt:              a.UpdatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedBy:              a.UpdatedBy,
	}
}

func fromOpnameItem(it opnameItem) entities.Assessment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Assessment{
		Key:                    it.Key,
		Customer:               it.Customer,
		MainProjectKey:         it.MainProjectKey,
		MainProjectName:        it.MainProjectName,
		HighestSelectedLevel:   it.HighestSelectedLevel,
		StartBookingDate:       parseDate(it.StartBookingDate),
		EndBookingDate:         parseDate(it.EndBookingDate),
		BudgetCostBasis:        entities.BudgetCostBasis(it.BudgetCostBasis),
		BookedCostBasis:        entities.BookedCostBasis(it.BookedCostBasis),
		ParagraphGroupingLevel: it.ParagraphGroupingLevel,
		Aggregates:             it.Aggregates,
		AggregatesDirty:        it.AggregatesDirty,
		Status:                 entities.AssessmentStatus(it.Status),
		Saved:                  it.Saved,
		Remark:                 it.Remark,
		AuthorizedBy:           it.AuthorizedBy,
		AuthorizedAt:           parseTimestamp(it.AuthorizedAt),
		CreatedAt:              createdAt,
		CreatedBy:              it.CreatedBy,
		UpdatedAt:              updatedAt,
		UpdatedBy:              it.UpdatedBy,
	}
}
