// Package utility holds small helpers shared across domains: BSON/map
// conversion, id parsing, credential generation.
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap converts a struct (or map) to map[string]interface{} through BSON
// marshalling so bson tags decide the keys.
func ToMap(s interface{}) (map[string]interface{}, error) {
	if m, ok := s.(map[string]interface{}); ok {
		return m, nil
	}

	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value to map: %w", err)
	}

	return result, nil
}

// String2ObjectID parses a hex string into an ObjectID, returning the zero id
// on failure.
func String2ObjectID(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
