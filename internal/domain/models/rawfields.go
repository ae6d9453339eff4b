// internal/domain/models/rawfields.go
package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents written by earlier clients are schemaless: a subject code may
// be stored as a number, a registration date as a BSON datetime. The read
// models below decode such values into their text form instead of failing
// the whole query.

// textOf renders a stored scalar as text. Missing and null values are "".
func textOf(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		s, _ := v.StringValueOK()
		return s
	case bsontype.Int32:
		n, _ := v.Int32OK()
		return strconv.FormatInt(int64(n), 10)
	case bsontype.Int64:
		n, _ := v.Int64OK()
		return strconv.FormatInt(n, 10)
	case bsontype.Double:
		f, _ := v.DoubleOK()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case bsontype.Boolean:
		b, _ := v.BooleanOK()
		return strconv.FormatBool(b)
	case bsontype.DateTime:
		ms, _ := v.DateTimeOK()
		return formatMillis(ms)
	case bsontype.ObjectID:
		id, _ := v.ObjectIDOK()
		return id.Hex()
	case 0, bsontype.Null, bsontype.Undefined:
		return ""
	default:
		return v.String()
	}
}

// dateOf renders a stored timestamp as RFC3339 text. Datetimes and numbers
// (milliseconds since the epoch) are converted; strings are kept verbatim.
func dateOf(v bson.RawValue) string {
	switch v.Type {
	case bsontype.Int32:
		n, _ := v.Int32OK()
		return formatMillis(int64(n))
	case bsontype.Int64:
		n, _ := v.Int64OK()
		return formatMillis(n)
	case bsontype.Double:
		f, _ := v.DoubleOK()
		return formatMillis(int64(f))
	default:
		return textOf(v)
	}
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func objectIDOf(v bson.RawValue) primitive.ObjectID {
	id, _ := v.ObjectIDOK()
	return id
}
