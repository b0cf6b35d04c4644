package models

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// modelLogger resolves the global logger at call time, so it sees the one
// main installs with zap.ReplaceGlobals
func modelLogger() *zap.Logger {
	return zap.L().Named("persistence.models")
}

// stringsToJSON encodes a string slice for a JSON column; nil becomes []
func stringsToJSON(in []string) datatypes.JSON {
	if in == nil {
		in = []string{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// jsonToStrings decodes a JSON array column; malformed data yields an empty slice
func jsonToStrings(raw datatypes.JSON, column string) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		modelLogger().Warn("Failed to decode JSON array column",
			zap.String("column", column),
			zap.Error(err),
		)
		return []string{}
	}
	return out
}
