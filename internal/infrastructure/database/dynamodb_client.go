package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// AWSSettings selects the region and, for local runs, a static key pair and
// a DynamoDB endpoint (e.g. http://dynamodb:8000).
type AWSSettings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	DynamoEndpoint  string
}

// NewAWSConfig loads the shared AWS config. Without a static key pair the
// default credential chain applies.
func NewAWSConfig(ctx context.Context, s AWSSettings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if s.AccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// ConnectDynamoDB creates a DynamoDB client from s.
func ConnectDynamoDB(ctx context.Context, s AWSSettings) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	endpoint := s.DynamoEndpoint
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Info().Str("region", cfg.Region).Str("endpoint", endpoint).Msg("dynamodb client ready")
	return client, nil
}
