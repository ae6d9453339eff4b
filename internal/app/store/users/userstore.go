// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"github.com/learnercafe/learnercafe/internal/app/system/monthly"
	"github.com/learnercafe/learnercafe/internal/app/system/patch"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned by Register when the email is already taken.
var ErrDuplicateEmail = apperr.New(apperr.Conflict, "user already exist")

type Store struct {
	docs *docstore.Store[models.User]
	now  func() time.Time
}

func New(db *mongo.Database) *Store {
	return &Store{
		docs: docstore.New[models.User](db, models.UsersCollection),
		now:  time.Now,
	}
}

// List returns every user in natural order.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	return s.docs.Find(ctx, bson.M{})
}

// GetByEmail looks up a user by exact email. Returns docstore.ErrNotFound if
// there is none.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.docs.Collection().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return u, docstore.ErrNotFound
	}
	if err != nil {
		return u, fmt.Errorf("userstore.GetByEmail: %w", err)
	}
	return u, nil
}

// Register inserts a new user. An email already on file yields
// ErrDuplicateEmail; the users.email index closes the race between
// concurrent registrations. A user sent without a registration date is
// stamped with the current UTC time.
func (s *Store) Register(ctx context.Context, u models.User) (models.WriteResult, error) {
	n, err := s.docs.Collection().CountDocuments(ctx, bson.M{"email": u.Email}, options.Count().SetLimit(1))
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("userstore.Register: %w", err)
	}
	if n > 0 {
		return models.WriteResult{}, ErrDuplicateEmail
	}

	u.ID = primitive.NewObjectID()
	if u.Date == "" {
		u.Date = s.now().UTC().Format(time.RFC3339)
	}
	res, err := s.docs.Insert(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.WriteResult{}, ErrDuplicateEmail
		}
		return models.WriteResult{}, fmt.Errorf("userstore.Register: %w", err)
	}
	return res, nil
}

// SetAdmin grants the admin role to the user with id. A missing user is not
// created; the result then reports zero matches.
func (s *Store) SetAdmin(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	return s.docs.Set(ctx, id, bson.M{"role": models.RoleAdmin}, false)
}

// IsAdmin reports whether the user with email carries the admin role. An
// unknown email is not an admin. Only the role is read, so other fields of
// legacy documents cannot fail the check.
func (s *Store) IsAdmin(ctx context.Context, email string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"role": 1, "_id": 0})
	var raw bson.Raw
	err := s.docs.Collection().FindOne(ctx, bson.M{"email": email}, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("userstore.IsAdmin: %w", err)
	}
	role, _ := raw.Lookup("role").StringValueOK()
	return role == models.RoleAdmin, nil
}

// UpdateProfile writes the whitelisted profile fields present in body,
// creating the user document when id does not exist yet.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, body map[string]any) (models.WriteResult, error) {
	set, err := patch.Profile.Project(body)
	if err != nil {
		return models.WriteResult{}, err
	}
	return s.docs.Set(ctx, id, set, true)
}

// Registrations is the monthly registration report.
type Registrations struct {
	Counts  []models.MonthlyCount
	Scanned int // users read
	Skipped int // users whose date could not be bucketed
}

// MonthlyRegistrations scans every user's registration date and counts
// registrations per calendar month.
func (s *Store) MonthlyRegistrations(ctx context.Context) (Registrations, error) {
	opts := options.Find().SetProjection(bson.M{"date": 1, "_id": 0})
	cur, err := s.docs.Collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return Registrations{}, fmt.Errorf("userstore.MonthlyRegistrations: %w", err)
	}
	defer cur.Close(ctx)

	tally := monthly.NewTally()
	scanned := 0
	for cur.Next(ctx) {
		scanned++
		tally.AddValue(cur.Current.Lookup("date"))
	}
	if err := cur.Err(); err != nil {
		return Registrations{}, fmt.Errorf("userstore.MonthlyRegistrations: %w", err)
	}

	return Registrations{
		Counts:  tally.Counts(),
		Scanned: scanned,
		Skipped: tally.Skipped(),
	}, nil
}
