package mongoadapter

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDGenerator issues hex ObjectIDs so documents keep Mongo-native ids.
type ObjectIDGenerator struct{}

func (ObjectIDGenerator) NewID(_ context.Context) (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
