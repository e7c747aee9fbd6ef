package repository

import (
	"context"
	"errors"
	"strconv"

	"projectvoortgang/internal/domain/entities"
	"projectvoortgang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLineItemsTableName = "opnameregels"
	lineItemsAssessmentIndex  = "opname_key-index"
)

type regelItem struct {
	Key           string `dynamodbav:"regel_key"`
	AssessmentKey string `dynamodbav:"opname_key"`
	Customer      int    `dynamodbav:"klantnummer"`

	ProjectKey   int    `dynamodbav:"project_key"`
	ProjectName  string `dynamodbav:"project,omitempty"`
	ProjectLevel int    `dynamodbav:"projectniveau"`
	ProjectPhase string `dynamodbav:"projectfase,omitempty"`

	SubProject bool `dynamodbav:"deelproject"`

	ParagraphKey   int    `dynamodbav:"bestekparagraaf_key"`
	ParagraphName  string `dynamodbav:"bestekparagraaf,omitempty"`
	ParagraphLevel int    `dynamodbav:"bestekparagraafniveau"`

	BudgetedCost  entities.CategoryAmounts `dynamodbav:"calculatie_kosten"`
	BudgetedHours entities.LaborHours      `dynamodbav:"calculatie_uren"`
	BookedCost    entities.CategoryAmounts `dynamodbav:"geboekte_kosten"`
	BookedHours   entities.LaborHours      `dynamodbav:"geboekte_uren"`

	HistoricalRequests      entities.CategoryAmounts `dynamodbav:"verzoeken"`
	HistoricalRequestsHours entities.LaborHours      `dynamodbav:"verzoeken_uren"`

	Prior      entities.PriorCompletion `dynamodbav:"laatste_pg"`
	Completion entities.Completion      `dynamodbav:"percentage_gereed"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: regel_key (string)
//   - GSI: opname_key-index (PK: opname_key)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OPNAMEREGELS_TABLE", defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) CreateBatch(ctx context.Context, items []entities.LineItem) ([]entities.LineItem, error) {
	for _, li := range items {
		av, err := attributevalue.MarshalMap(toRegelItem(li))
		if err != nil {
			return nil, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#key)"),
			ExpressionAttributeNames: map[string]string{
				"#key": "regel_key",
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *LineItemDynamoRepository) ListByAssessment(ctx context.Context, customer int, assessmentKey string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemsAssessmentIndex),
		KeyConditionExpression: aws.String("opname_key = :opname"),
		FilterExpression:       aws.String("klantnummer = :klant"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":opname": &types.AttributeValueMemberS{Value: assessmentKey},
			":klant":  &types.AttributeValueMemberN{Value: strconv.Itoa(customer)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it regelItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRegelItem(it))
	}
	return items, nil
}

// UpdateCompletion merges the supplied percentage fields into the target
// line. The condition pins the line to the assessment and tenant; a
// conditional failure reads as not-found (zero LineItem).
func (r *LineItemDynamoRepository) UpdateCompletion(ctx context.Context, customer int, assessmentKey string, u entities.PartialUpdate) (entities.LineItem, error) {
	expr := ""
	values := map[string]types.AttributeValue{
		":opname": &types.AttributeValueMemberS{Value: assessmentKey},
		":klant":  &types.AttributeValueMemberN{Value: strconv.Itoa(customer)},
	}
	names := map[string]string{
		"#pg": "percentage_gereed",
	}

	appendSet := func(attr, placeholder string, v *float64) {
		if v == nil {
			return
		}
		if expr == "" {
			expr = "SET "
		} else {
			expr += ", "
		}
		expr += "#pg.#" + placeholder + " = :" + placeholder
		names["#"+placeholder] = attr
		values[":"+placeholder] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*v, 'f', -1, 64)}
	}
	appendSet("percentage_gereed_inkoop", "ink", u.Purchasing)
	appendSet("percentage_gereed_arbeid_montage", "mon", u.AssemblyLabor)
	appendSet("percentage_gereed_arbeid_projectgebonden", "prj", u.ProjectBound)
	if expr == "" {
		return entities.LineItem{}, errors.New("partial update carries no fields")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"regel_key": &types.AttributeValueMemberS{Value: u.LineKey},
		},
		ConditionExpression:       aws.String("attribute_exists(#key) AND opname_key = :opname AND klantnummer = :klant"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#key": "regel_key"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LineItem{}, nil
		}
		return entities.LineItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LineItem{}, nil
	}

	var it regelItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromRegelItem(it), nil
}

func (r *LineItemDynamoRepository) DeleteByAssessment(ctx context.Context, customer int, assessmentKey string) error {
	items, err := r.ListByAssessment(ctx, customer, assessmentKey)
	if err != nil {
		return err
	}
	for _, li := range items {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"regel_key": &types.AttributeValueMemberS{Value: li.Key},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toRegelItem(li entities.LineItem) regelItem {
	return regelItem{
		Key:                     li.Key,
		AssessmentKey:           li.AssessmentKey,
		Customer:                li.Customer,
		ProjectKey:              li.ProjectKey,
		ProjectName:             li.ProjectName,
		ProjectLevel:            li.ProjectLevel,
		ProjectPhase:            li.ProjectPhase,
		SubProject:              li.SubProject,
		ParagraphKey:            li.ParagraphKey,
		ParagraphName:           li.ParagraphName,
		ParagraphLevel:          li.ParagraphLevel,
		BudgetedCost:            li.BudgetedCost,
		BudgetedHours:           li.BudgetedHours,
		BookedCost:              li.BookedCost,
		BookedHours:             li.BookedHours,
		HistoricalRequests:      li.HistoricalRequests,
		HistoricalRequestsHours: li.HistoricalRequestsHours,
		Prior:                   li.Prior,
		Completion:              li.Completion,
	}
}

func fromRegelItem(it regelItem) entities.LineItem {
	return entities.LineItem{
		Key:                     it.Key,
		AssessmentKey:           it.AssessmentKey,
		Customer:                it.Customer,
		ProjectKey:              it.ProjectKey,
		ProjectName:             it.ProjectName,
		ProjectLevel:            it.ProjectLevel,
		ProjectPhase:            it.ProjectPhase,
		SubProject:              it.SubProject,
		ParagraphKey:            it.ParagraphKey,
		ParagraphName:           it.ParagraphName,
		ParagraphLevel:          it.ParagraphLevel,
		BudgetedCost:            it.BudgetedCost,
		BudgetedHours:           it.BudgetedHours,
		BookedCost:              it.BookedCost,
		BookedHours:             it.BookedHours,
		HistoricalRequests:      it.HistoricalRequests,
		HistoricalRequestsHours: it.HistoricalRequestsHours,
		Prior:                   it.Prior,
		Completion:              it.Completion,
	}
}
