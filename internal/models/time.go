package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// localDateTimeLayout is the wire format for entry dates: a local timestamp
// with no zone offset (e.g. 2024-05-01T09:30:00).
const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime wraps time.Time to serialize as a local timestamp without a
// zone offset over JSON, while still storing a native datetime in MongoDB.
type LocalDateTime struct {
	time.Time
}

// Now returns the current time as a LocalDateTime.
func Now() LocalDateTime {
	return LocalDateTime{Time: time.Now()}
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localDateTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts the offset-less layout; RFC 3339 timestamps are
// accepted as a fallback for clients that send an explicit zone.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(localDateTimeLayout, s, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", s, err)
		}
	}
	t.Time = parsed
	return nil
}

func (t LocalDateTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *LocalDateTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	return bson.UnmarshalValue(bt, data, &t.Time)
}
