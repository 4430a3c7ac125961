package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

// Options selects the DynamoDB target. Endpoint is optional (e.g.
// http://dynamodb:8000 for DynamoDB Local).
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// ConnectDynamoDB creates a DynamoDB client from opts.
func ConnectDynamoDB(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dynamodb config")
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, opts Options) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	)
}
