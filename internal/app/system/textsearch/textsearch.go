// Package textsearch builds case-insensitive substring filters over lecture
// text fields.
//
// Search text is treated as a literal: every regular-expression
// metacharacter is escaped before the pattern reaches the store, so "C++"
// finds "C++ Basics" and ".*" finds only titles containing ".*".
// Results come back in the store's natural order; there is no ranking.
package textsearch

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mode selects which fields a search inspects.
type Mode int

const (
	// Topic matches topicName or subName.
	Topic Mode = iota
	// Subject matches subName only.
	Subject
)

func (m Mode) String() string {
	if m == Subject {
		return "subject"
	}
	return "topic"
}

// Fields returns the document fields inspected by m.
func (m Mode) Fields() []string {
	switch m {
	case Subject:
		return []string{"subName"}
	default:
		return []string{"topicName", "subName"}
	}
}

// Pattern is the case-insensitive regex matching text anywhere in a field.
func Pattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

// Filter returns the store filter for text under mode. Empty text matches
// every document, including ones that lack the searched fields.
func Filter(mode Mode, text string) bson.M {
	if text == "" {
		return bson.M{}
	}
	re := Pattern(text)
	fields := mode.Fields()
	if len(fields) == 1 {
		return bson.M{fields[0]: re}
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}
