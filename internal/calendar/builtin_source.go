package calendar

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
)

// BuiltinYear is the year covered by the embedded table
const BuiltinYear = 2025

//go:embed data/tr-2025.yaml
var builtinTable []byte

// BuiltinSource serves the embedded 2025 Turkish public holiday table
type BuiltinSource struct{}

func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

func (BuiltinSource) Name() string { return "builtin" }

// Load decodes the embedded table
func (BuiltinSource) Load(context.Context) (HolidayTable, error) {
	table, err := DecodeHolidayTable(bytes.NewReader(builtinTable))
	if err != nil {
		return nil, fmt.Errorf("failed to decode builtin holiday table: %w", err)
	}
	return table, nil
}
