// Package category holds the whitelist of lecture categories that can be
// listed through the categorized-listing routes.
//
// The whitelist is deploy-time configuration. Lectures stored with any
// other category value still exist and are returned by the unfiltered
// listing; they are just unreachable by category.
package category

import (
	"fmt"
	"strings"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// Default is the current category set.
var Default = []string{"slide", "presentation", "suggestion", "lecture", "labreport"}

// Legacy is the department-based set used by the first API revision.
var Legacy = []string{"CSE", "EEE", "MATH"}

// Filter decides category membership. Comparison is exact and
// case-sensitive.
type Filter struct {
	tokens  []string
	allowed map[string]struct{}
}

// New builds a Filter from tokens, ignoring blanks and duplicates.
func New(tokens ...string) *Filter {
	f := &Filter{allowed: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := f.allowed[t]; dup {
			continue
		}
		f.allowed[t] = struct{}{}
		f.tokens = append(f.tokens, t)
	}
	return f
}

// Parse builds a Filter from a comma-separated list such as
// "slide,presentation,lecture".
func Parse(list string) *Filter {
	return New(strings.Split(list, ",")...)
}

// Allowed reports whether token is a listable category.
func (f *Filter) Allowed(token string) bool {
	_, ok := f.allowed[token]
	return ok
}

// Tokens returns the configured categories in configuration order.
func (f *Filter) Tokens() []string {
	return append([]string(nil), f.tokens...)
}

// Len is the number of configured categories.
func (f *Filter) Len() int { return len(f.tokens) }

// Query returns the store filter selecting lectures of the given category.
// A token outside the whitelist yields a NotFound error and no filter, so
// callers never reach the store for it.
func (f *Filter) Query(token string) (bson.M, error) {
	if !f.Allowed(token) {
		return nil, apperr.New(apperr.NotFound, fmt.Sprintf("unknown category %q", token))
	}
	return bson.M{"category": token}, nil
}
