package calendar

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// FileSource reads a holiday table from a local YAML or JSON file.
//
// Format (one entry per holiday):
//
//	"Yılbaşı": "2025-01-01"
//	"Kurban Bayramı": ["2025-06-06", "2025-06-07"]
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

func (fs *FileSource) Name() string { return "file:" + fs.filePath }

// Load loads the holiday table from file
func (fs *FileSource) Load(context.Context) (HolidayTable, error) {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	table, err := DecodeHolidayTable(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file %s: %w", fs.filePath, err)
	}

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("holidays", len(table)),
		zap.Int("days", table.Dates().Len()))

	return table, nil
}
