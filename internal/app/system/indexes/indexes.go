// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicates reports a unique index that could not be built because the
// collection already holds duplicate keys.
var ErrDuplicates = errors.New("duplicate keys present")

/*
EnsureAll is called at startup. Each ensure* function is idempotent and
runs concurrently with the others. Errors are aggregated so any problem is
visible and startup can fail fast.

The unique index on users.email is what keeps concurrent registrations
unique. A legacy users collection that already holds duplicate emails
cannot take it; that case is logged with sample emails and startup
continues without the index. Deduplicate, then restart to build it.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, lecturesCollection string) error {
	sets := map[string]func(context.Context, *mongo.Database) error{
		models.UsersCollection: ensureUsers,
		lecturesCollection: func(ctx context.Context, db *mongo.Database) error {
			return ensureLectures(ctx, db.Collection(lecturesCollection))
		},
		models.BookmarksCollection: ensureBookmarks,
	}

	var (
		mu       sync.Mutex
		problems []string
		g        errgroup.Group
	)
	for name, ensure := range sets {
		g.Go(func() error {
			if err := ensure(ctx, db); err != nil {
				mu.Lock()
				problems = append(problems, name+": "+err.Error())
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func isUnique(b *bool) bool { return b != nil && *b }

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err) || strings.Contains(err.Error(), "E11000")
}

func existingBySig(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	existing := map[string]existingIndex{}
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		// A collection that does not exist yet has no indexes.
		return existing
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, want []mongo.IndexModel) error {
	var errs, dups []string
	existing := existingBySig(ctx, coll)

	for _, m := range want {
		var name string
		var unique bool
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			unique = isUnique(m.Options.Unique)
		}
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			if isUnique(ex.Unique) == unique {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", sig))
				continue
			}
			// Uniqueness changed: drop and recreate below.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if unique && isDuplicateKeyErr(err) {
				dups = append(dups, fmt.Sprintf("%s(%s): cannot create unique index on %s", coll.Name(), name, sig))
			} else {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			}
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", unique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(append(errs, dups...), "; "))
	}
	if len(dups) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(dups, "; "), ErrDuplicates)
	}
	return nil
}

// DuplicateValues returns up to limit values of field that occur in more
// than one document of coll, most repeated first.
func DuplicateValues(ctx context.Context, coll *mongo.Collection, field string, limit int) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$type": "string"}}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "n": bson.M{"$sum": 1}}}},
		{{Key: "$match", Value: bson.M{"n": bson.M{"$gt": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "n", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("indexes.DuplicateValues(%s.%s): %w", coll.Name(), field, err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Value string `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("indexes.DuplicateValues(%s.%s): %w", coll.Name(), field, err)
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Value)
	}
	return out, nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(models.UsersCollection)
	err := ensureIndexSet(ctx, coll, []mongo.IndexModel{
		// Email is the registration key. Only string emails participate so
		// legacy documents without an email do not collide with each other.
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_users_email").
				SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
		},
	})
	if !errors.Is(err, ErrDuplicates) {
		return err
	}

	sample, serr := DuplicateValues(ctx, coll, "email", 10)
	if serr != nil {
		zap.L().Warn("could not list duplicate emails", zap.Error(serr))
	}
	zap.L().Error("users.email holds duplicates; starting without uniq_users_email",
		zap.Strings("duplicate_emails", sample),
		zap.Error(err))
	return nil
}

func ensureLectures(ctx context.Context, c *mongo.Collection) error {
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Category listing, newest first
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("idx_lectures_category__id"),
		},
		// Owner listing
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_lectures_email"),
		},
	})
}

func ensureBookmarks(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection(models.BookmarksCollection), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_bookmarks_email"),
		},
	})
}
