// Package excel reads extra vocabulary entries from Excel or CSV files so
// the built-in catalog can be extended without recompiling.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/deutschtrainer/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	LevelColumn       string // Column with the introduction level
	ArticleColumn     string // Column with the definite article
	SingularColumn    string // Column with the singular form
	PluralColumn      string // Column with the plural form
	TranslationColumn string // Column with the Italian translation
	ExplanationColumn string // Column with the explanation
	SheetName         string // Name of the sheet to import (Excel only)
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default configuration for the given file
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:          path,
		LevelColumn:       "A",
		ArticleColumn:     "B",
		SingularColumn:    "C",
		PluralColumn:      "D",
		TranslationColumn: "E",
		ExplanationColumn: "F",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportEntries reads vocabulary entries from an Excel or CSV file. Rows
// that fail to parse are skipped and reported in the result, so one bad row
// never aborts the whole import.
func ImportEntries(config ImportConfig) ([]models.VocabularyEntry, *ImportResult, error) {
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) ([]models.VocabularyEntry, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	var entries []models.VocabularyEntry
	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		result.TotalProcessed++
		entry, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}
	return entries, result, nil
}

func importFromCSV(config ImportConfig) ([]models.VocabularyEntry, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	var entries []models.VocabularyEntry
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		result.TotalProcessed++
		entry, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}
	return entries, result, nil
}

// parseRow converts one file row into a vocabulary entry
func parseRow(row []string, config ImportConfig) (models.VocabularyEntry, error) {
	levelStr := cell(row, config.LevelColumn)
	level, err := strconv.Atoi(levelStr)
	if err != nil || level < 1 {
		return models.VocabularyEntry{}, fmt.Errorf("invalid level %q", levelStr)
	}
	entry := models.VocabularyEntry{
		Level:       level,
		Article:     cell(row, config.ArticleColumn),
		Singular:    cell(row, config.SingularColumn),
		Plural:      cell(row, config.PluralColumn),
		Translation: cell(row, config.TranslationColumn),
		Explanation: cell(row, config.ExplanationColumn),
	}
	if entry.Singular == "" {
		return models.VocabularyEntry{}, fmt.Errorf("singular form cannot be empty")
	}
	if entry.Article == "" {
		return models.VocabularyEntry{}, fmt.Errorf("article cannot be empty")
	}
	if entry.Plural == "" {
		return models.VocabularyEntry{}, fmt.Errorf("plural form cannot be empty")
	}
	if entry.Translation == "" {
		return models.VocabularyEntry{}, fmt.Errorf("translation cannot be empty")
	}
	return entry, nil
}

// cell returns the trimmed value at the configured column, or an empty
// string when the row is too short
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		if column[i] < 'A' || column[i] > 'Z' {
			return -1
		}
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
