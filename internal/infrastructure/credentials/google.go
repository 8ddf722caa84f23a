// Package credentials loads the Google service account used by the
// spreadsheet store, from a local file or from AWS Secrets Manager.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog/log"
)

var ErrNoCredentials = errors.New("no google credentials configured")

// SecretsAPI is the slice of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type serviceAccount struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadGoogle returns the service account JSON. A file path wins over a
// secret id; secrets may be nil when only the file is used.
func LoadGoogle(ctx context.Context, file, secretID string, secrets SecretsAPI) ([]byte, error) {
	var (
		raw    []byte
		source string
	)
	switch {
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("credentials: read %s: %w", file, err)
		}
		raw, source = b, "file"
	case secretID != "" && secrets != nil:
		out, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId:     aws.String(secretID),
			VersionStage: aws.String("AWSCURRENT"),
		})
		if err != nil {
			return nil, fmt.Errorf("credentials: get secret %s: %w", secretID, err)
		}
		if out.SecretString == nil {
			return nil, fmt.Errorf("credentials: secret %s has no string value", secretID)
		}
		raw, source = []byte(*out.SecretString), "secretsmanager"
	default:
		return nil, ErrNoCredentials
	}

	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("credentials: decode service account: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("credentials: service account is missing client_email or private_key")
	}
	log.Info().Str("source", source).Str("client_email", sa.ClientEmail).Msg("google credentials loaded")
	return raw, nil
}
