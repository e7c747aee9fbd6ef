package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the shared DynamoDB client for the opname and
// regel tables. Region and credentials come from the environment; setting
// DYNAMODB_ENDPOINT points the client at a local instance instead of AWS.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := loadAWSConfig(context.Background())
	if err != nil {
		log.Fatalf("[database][dynamodb] config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	// A local DynamoDB accepts any credentials, but the SDK insists on
	// having some, so fall back to placeholders.
	creds := credentials.NewStaticCredentialsProvider(
		envOr("AWS_ACCESS_KEY_ID", "local"),
		envOr("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(envOr("AWS_REGION", "eu-west-1")),
		config.WithCredentialsProvider(creds),
	}

	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(localResolver(endpoint)))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

func localResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service != dynamodb.ServiceID {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
		return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
