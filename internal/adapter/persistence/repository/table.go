package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const tableReadyTimeout = 2 * time.Minute

// EnsureTable creates the orders table and its created_at index when missing.
// It returns true when the table was created.
func (r *OrderDynamoRepository) EnsureTable(ctx context.Context) (bool, error) {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return false, nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return false, errors.Wrap(err, "describe table")
	}

	log.WithField("table", r.tableName).Info("[order][repository] creating table")
	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("entity"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(ordersCreatedAtIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("entity"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		return false, errors.Wrap(err, "create table")
	}

	waiter := dynamodb.NewTableExistsWaiter(r.ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, tableReadyTimeout); err != nil {
		return true, errors.Wrap(err, "wait for table")
	}
	return true, nil
}
