package routes

import (
	"context"
	"fmt"
	"time"

	"ocorrencias_logistica/internal/adapter/http/handlers"
	"ocorrencias_logistica/internal/adapter/persistence/repository"
	"ocorrencias_logistica/internal/config"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/infrastructure/cache"
	"ocorrencias_logistica/internal/infrastructure/credentials"
	"ocorrencias_logistica/internal/infrastructure/database"
	"ocorrencias_logistica/internal/infrastructure/pdf"
	"ocorrencias_logistica/internal/infrastructure/sheets"
	"ocorrencias_logistica/internal/usecase"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog/log"
)

// getDependencies opens the configured store and builds the use cases on
// top of it. The returned cleanup releases whatever was opened.
func getDependencies(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn().Err(err).Msg("close failed")
			}
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("config: TIMEZONE: %w", err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return Dependencies{}, cleanup, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	occurrenceRepo := repository.NewOccurrenceSheetRepository(store, cfg.OccurrenceTabs())
	expedicaoRepo := repository.NewExpedicaoSheetRepository(store, cfg.ExpedicaoSheet)
	stockRepo := repository.NewStockSheetRepository(store, cfg.StockSheet)
	if err := ensureTabs(ctx, occurrenceRepo, expedicaoRepo, stockRepo); err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	checks := map[string]handlers.Check{}
	var stockCache interfaces.IStockCache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			// The cache is optional; lookups go straight to the store.
			log.Warn().Err(err).Msg("redis unavailable, stock cache disabled")
		} else {
			stockCache = cache.NewStockCache(rdb, "")
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			closers = append(closers, rdb.Close)
		}
	}

	v := validation.New(now)
	deps := Dependencies{
		Occurrences:        usecase.NewOccurrenceUseCase(occurrenceRepo, v, now),
		Expedicao:          usecase.NewExpedicaoUseCase(expedicaoRepo, pdf.NewRomaneioRenderer(cfg.CompanyName, loc), v, now),
		Stock:              usecase.NewStockUseCase(stockRepo, stockCache, cfg.StockCacheTTL),
		Health:             handlers.NewHealthHandler(cfg.StoreDriver, checks),
		DeletePasswordHash: cfg.DeletePasswordHash,
		Swagger:            !cfg.IsProduction(),
		Now:                now,
	}
	return deps, cleanup, nil
}

func ensureTabs(ctx context.Context, occ *repository.OccurrenceSheetRepository, exp *repository.ExpedicaoSheetRepository, stock *repository.StockSheetRepository) error {
	if err := occ.EnsureTabs(ctx); err != nil {
		return fmt.Errorf("store: ensure occurrence tabs: %w", err)
	}
	if err := exp.EnsureTab(ctx); err != nil {
		return fmt.Errorf("store: ensure expedicao tab: %w", err)
	}
	if err := stock.EnsureTab(ctx); err != nil {
		return fmt.Errorf("store: ensure stock tab: %w", err)
	}
	return nil
}

// openStore selects the backing store by STORE_DRIVER. The closer may be nil.
func openStore(ctx context.Context, cfg *config.Config) (sheets.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverSheets:
		creds, err := googleCredentials(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		s, err := sheets.NewGoogleStore(ctx, cfg.SpreadsheetID, creds)
		if err != nil {
			return nil, nil, fmt.Errorf("store: google sheets: %w", err)
		}
		return s, nil, nil

	case config.DriverXLSX:
		wb, err := sheets.OpenWorkbook(cfg.XLSXPath)
		if err != nil {
			return nil, nil, fmt.Errorf("store: workbook %s: %w", cfg.XLSXPath, err)
		}
		return wb, wb.Close, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, awsSettings(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("store: dynamodb: %w", err)
		}
		return sheets.NewDynamoStore(ddb, cfg.SheetRowsTable), nil, nil

	case config.DriverMemory:
		log.Warn().Msg("using the in-memory store, data is lost on restart")
		return sheets.NewMemoryStore(), nil, nil

	default:
		return nil, nil, fmt.Errorf("store: unknown driver %q", cfg.StoreDriver)
	}
}

// googleCredentials reads the service account from GOOGLE_CREDENTIALS_FILE
// or, failing that, from Secrets Manager.
func googleCredentials(ctx context.Context, cfg *config.Config) ([]byte, error) {
	var secrets credentials.SecretsAPI
	if cfg.GoogleCredentialsFile == "" && cfg.GoogleCredentialsSecretID != "" {
		awsCfg, err := database.NewAWSConfig(ctx, awsSettings(cfg))
		if err != nil {
			return nil, fmt.Errorf("credentials: aws config: %w", err)
		}
		secrets = secretsmanager.NewFromConfig(awsCfg)
	}
	return credentials.LoadGoogle(ctx, cfg.GoogleCredentialsFile, cfg.GoogleCredentialsSecretID, secrets)
}

func awsSettings(cfg *config.Config) database.AWSSettings {
	return database.AWSSettings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		DynamoEndpoint:  cfg.DynamoDBEndpoint,
	}
}
