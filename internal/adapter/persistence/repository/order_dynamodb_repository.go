package repository

import (
	"context"
	"time"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"
	"controle_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName = "orders"
	ordersCreatedAtIndex   = "created_at-index"
	orderEntity            = "order"

	// Fixed width so that created_at sorts lexicographically.
	createdAtLayout = "2006-01-02T15:04:05.000000000Z"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type lineItemAttr struct {
	Product   string `dynamodbav:"product"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price,omitempty"`
	// Line total at write time, kept for other document readers. Never read back.
	Total string `dynamodbav:"total,omitempty"`
}

type orderItem struct {
	ID        string         `dynamodbav:"id"`
	Entity    string         `dynamodbav:"entity"`
	Customer  string         `dynamodbav:"customer,omitempty"`
	Items     []lineItemAttr `dynamodbav:"items"`
	Status    string         `dynamodbav:"status"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_at-index (PK: entity, SK: created_at)
//
// Every order shares the entity partition of the index so a single Query
// returns the whole list in creation order.

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
	newID     func() string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Create stamps id and created_at at write time.
func (r *OrderDynamoRepository) Create(ctx context.Context, rec entities.OrderRecord) (entities.Order, error) {
	o := entities.Order{
		ID:        r.newID(),
		Customer:  rec.Customer,
		Items:     rec.Items,
		Status:    rec.Status,
		CreatedAt: r.now().UTC(),
	}

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshal order")
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
		return entities.Order{}, errors.Wrap(err, "put order")
	}
	return o, nil
}

// Remove returns the deleted order, or an empty one when id does not exist.
func (r *OrderDynamoRepository) Remove(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, errors.Wrap(err, "delete order")
	}
	return decodeOrder(out.Attributes)
}

// UpdateStatus touches the status attribute only.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

// List returns all orders by created_at ascending.
func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCreatedAtIndex),
		KeyConditionExpression: aws.String("#entity = :entity"),
		ExpressionAttributeNames: map[string]string{
			"#entity": "entity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entity": &types.AttributeValueMemberS{Value: orderEntity},
		},
		ScanIndexForward: aws.Bool(true),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "query orders")
		}
		for _, raw := range page.Items {
			o, err := decodeOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, errors.Wrap(err, "update order")
	}
	return decodeOrder(out.Attributes)
}

func decodeOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	if len(raw) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshal order")
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]lineItemAttr, 0, len(o.Items))
	for _, li := range o.Items {
		attr := lineItemAttr{Product: li.Product, Quantity: li.Quantity}
		if total, ok := aggregator.ItemTotal(li); ok {
			attr.UnitPrice = li.UnitPrice.String()
			attr.Total = total.String()
		}
		items = append(items, attr)
	}
	return orderItem{
		ID:        o.ID,
		Entity:    orderEntity,
		Customer:  o.Customer,
		Items:     items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, err := time.Parse(createdAtLayout, it.CreatedAt)
	if err != nil {
		return entities.Order{}, errors.Wrapf(err, "order %s: invalid created_at", it.ID)
	}
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, attr := range it.Items {
		li := entities.LineItem{Product: attr.Product, Quantity: attr.Quantity}
		if attr.UnitPrice != "" {
			price, err := decimal.NewFromString(attr.UnitPrice)
			if err != nil {
				return entities.Order{}, errors.Wrapf(err, "order %s: invalid unit_price", it.ID)
			}
			li.UnitPrice = &price
		}
		items = append(items, li)
	}
	return entities.Order{
		ID:        it.ID,
		Customer:  it.Customer,
		Items:     items,
		Status:    entities.OrderStatus(it.Status),
		CreatedAt: createdAt,
	}, nil
}
