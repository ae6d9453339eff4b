// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/learnercafe/learnercafe/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// clientOptions builds the driver options for appCfg. Embedded documents
// decode as bson.M so schemaless collections serialize to plain JSON
// objects.
func clientOptions(appCfg AppConfig) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}
	if appCfg.MongoConnectTimeout > 0 {
		opts.SetConnectTimeout(appCfg.MongoConnectTimeout)
		opts.SetServerSelectionTimeout(appCfg.MongoConnectTimeout)
	}
	if appCfg.MongoUser != "" {
		opts.SetAuth(options.Credential{
			Username: appCfg.MongoUser,
			Password: appCfg.MongoPass,
		})
	}
	return opts
}

// ConnectDB opens the process-wide MongoDB client and verifies it with a
// ping. The client is released in Shutdown.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.MongoConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, appCfg.MongoConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, clientOptions(appCfg))
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize),
		zap.Bool("credentials", appCfg.MongoUser != ""))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on, including the
// unique index that makes registration reject duplicate emails.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, appCfg.LecturesCollection); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
