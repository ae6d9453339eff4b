// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/learnercafe/learnercafe/internal/app/system/category"
	"github.com/learnercafe/learnercafe/internal/app/system/timeouts"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for learnercafe.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, lecture_categories, etc.
//   - Environment variables: LEARNERCAFE_MONGO_URI, LEARNERCAFE_LECTURE_CATEGORIES, etc.
//   - Command-line flags: --mongo_uri, --lecture_categories, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "learnerCafeDB", Desc: "MongoDB database name"},
	{Name: "mongo_user", Default: "", Desc: "MongoDB username (blank to use the URI as is)"},
	{Name: "mongo_pass", Default: "", Desc: "MongoDB password"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size (default: 5)"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "Deadline for the initial MongoDB connect and ping"},

	// Lectures
	{Name: "lecture_categories", Default: strings.Join(category.Default, ","), Desc: "Comma-separated lecture categories (legacy deployments: " + strings.Join(category.Legacy, ",") + ")"},
	{Name: "lectures_collection", Default: models.DefaultLecturesCollection, Desc: "Collection holding lectures"},

	// Store call deadlines
	{Name: "timeout_short", Default: timeouts.DefaultShort.String(), Desc: "Deadline for point reads and single writes"},
	{Name: "timeout_medium", Default: timeouts.DefaultMedium.String(), Desc: "Deadline for list and search queries"},
	{Name: "timeout_long", Default: timeouts.DefaultLong.String(), Desc: "Deadline for full-collection scans"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, LEARNERCAFE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LEARNERCAFE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),
		MongoUser:           appValues.String("mongo_user"),
		MongoPass:           appValues.String("mongo_pass"),
		MongoMaxPoolSize:    uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:    uint64(appValues.Int("mongo_min_pool_size")),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),

		LectureCategories:  category.Parse(appValues.String("lecture_categories")).Tokens(),
		LecturesCollection: appValues.String("lectures_collection"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return errors.New("mongo_database must not be empty")
	}
	if (appCfg.MongoUser == "") != (appCfg.MongoPass == "") {
		return errors.New("mongo_user and mongo_pass must be set together")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if category.New(appCfg.LectureCategories...).Len() == 0 {
		return errors.New("lecture_categories must name at least one category")
	}
	if strings.TrimSpace(appCfg.LecturesCollection) == "" {
		return errors.New("lectures_collection must not be empty")
	}
	return nil
}
