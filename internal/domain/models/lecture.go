// internal/domain/models/lecture.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lecture is a shared lecture material (slide deck, lab report, suggestion, ...).
//
// JSON keys mirror the BSON keys so request and response bodies keep the
// camelCase shape existing clients already send.
type Lecture struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category    string             `bson:"category" json:"category"`
	SubName     string             `bson:"subName" json:"subName"`
	SubCode     string             `bson:"subCode" json:"subCode"`
	TopicName   string             `bson:"topicName" json:"topicName"`
	DriveLink   string             `bson:"driveLink" json:"driveLink"`
	Description string             `bson:"description" json:"description"`
	Email       string             `bson:"email" json:"email"` // owner
}

// UnmarshalBSON decodes a stored lecture, reading non-string field values
// as text.
func (l *Lecture) UnmarshalBSON(data []byte) error {
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return err
	}
	*l = Lecture{
		ID:          objectIDOf(raw.Lookup("_id")),
		Category:    textOf(raw.Lookup("category")),
		SubName:     textOf(raw.Lookup("subName")),
		SubCode:     textOf(raw.Lookup("subCode")),
		TopicName:   textOf(raw.Lookup("topicName")),
		DriveLink:   textOf(raw.Lookup("driveLink")),
		Description: textOf(raw.Lookup("description")),
		Email:       textOf(raw.Lookup("email")),
	}
	return nil
}
