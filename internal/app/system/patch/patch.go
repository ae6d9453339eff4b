// Package patch projects partial-update request bodies onto a fixed set of
// writable fields.
package patch

import (
	"fmt"
	"sort"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// Whitelist names the fields a patch may write. Every whitelisted field
// holds text, so a value must be a JSON string or null.
type Whitelist []string

// Lecture is the set of lecture fields a PATCH may change. The owner email
// is deliberately absent.
var Lecture = Whitelist{"subName", "subCode", "driveLink", "topicName", "category", "description"}

// Profile is the set of user fields the profile PATCH may change.
var Profile = Whitelist{"name", "github", "facebook", "linkedin"}

// Project returns a $set document holding the whitelisted keys present in
// body. Keys outside the whitelist are dropped, never merged. A key present
// with a null value is kept and clears the field. A whitelisted key holding
// anything other than a string or null fails the whole patch as Invalid.
func (w Whitelist) Project(body map[string]any) (bson.M, error) {
	set := bson.M{}
	var bad []string
	for _, k := range w {
		v, ok := body[k]
		if !ok {
			continue
		}
		switch v.(type) {
		case string, nil:
			set[k] = v
		default:
			bad = append(bad, k)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, apperr.New(apperr.Invalid, fmt.Sprintf("fields must be strings: %v", bad))
	}
	return set, nil
}
