package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestImportFromCSV(t *testing.T) {
	content := strings.Join([]string{
		"Livello,Articolo,Singolare,Plurale,Traduzione,Spiegazione",
		"1,der,Kran,Kräne,gru,Il Kran solleva i carichi.",
		"2,die,Schraube,Schrauben,vite,",
		"3,das,Rohr,,tubo,manca il plurale",
		"x,der,Haken,Haken,gancio,livello non numerico",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	entries, result, err := ImportEntries(DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.TotalProcessed != 4 {
		t.Errorf("expected 4 processed rows, got %d", result.TotalProcessed)
	}
	if result.Imported != 2 || result.Skipped != 2 {
		t.Errorf("expected 2 imported and 2 skipped, got %d and %d", result.Imported, result.Skipped)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Row 4") {
		t.Errorf("expected the first error on row 4, got %q", result.Errors[0])
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Level != 1 || first.Singular != "Kran" || first.Article != "der" || first.Plural != "Kräne" || first.Translation != "gru" {
		t.Errorf("unexpected entry %+v", first)
	}
	// An empty explanation column is allowed
	if entries[1].Explanation != "" {
		t.Errorf("expected empty explanation, got %q", entries[1].Explanation)
	}
}

func TestImportFromExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Livello", "Articolo", "Singolare", "Plurale", "Traduzione", "Spiegazione"},
		{1, "der", "Kran", "Kräne", "gru", "Il Kran solleva i carichi."},
		{2, "die", "Schraube", "Schrauben", "vite", "La Schraube tiene insieme."},
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	f.Close()

	entries, result, err := ImportEntries(DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 imported and 0 skipped, got %d and %d", result.Imported, result.Skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Singular != "Schraube" || entries[1].Level != 2 {
		t.Errorf("unexpected entry %+v", entries[1])
	}
}

func TestImportMissingFile(t *testing.T) {
	for _, name := range []string{"missing.csv", "missing.xlsx"} {
		path := filepath.Join(t.TempDir(), name)
		if _, _, err := ImportEntries(DefaultImportConfig(path)); err == nil {
			t.Errorf("%s: expected error for missing file", name)
		}
	}
}

func TestParseRowValidation(t *testing.T) {
	config := DefaultImportConfig("unused.csv")
	tests := []struct {
		name string
		row  []string
	}{
		{"bad level", []string{"zero", "der", "Kran", "Kräne", "gru", ""}},
		{"negative level", []string{"-1", "der", "Kran", "Kräne", "gru", ""}},
		{"missing article", []string{"1", "", "Kran", "Kräne", "gru", ""}},
		{"missing singular", []string{"1", "der", "", "Kräne", "gru", ""}},
		{"missing plural", []string{"1", "der", "Kran", "", "gru", ""}},
		{"missing translation", []string{"1", "der", "Kran", "Kräne", "", ""}},
		{"short row", []string{"1", "der"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRow(tt.row, config); err == nil {
				t.Errorf("expected error for %v", tt.row)
			}
		})
	}

	entry, err := parseRow([]string{" 2 ", " die ", " Waage ", " Waagen ", " bilancia ", " testo "}, config)
	if err != nil {
		t.Fatalf("parse trimmed row: %v", err)
	}
	if entry.Singular != "Waage" || entry.Level != 2 {
		t.Errorf("expected trimmed fields, got %+v", entry)
	}
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"c", 2},
		{" D ", 3},
		{"", -1},
		{"1", -1},
		{"A1", -1},
	}
	for _, tt := range tests {
		if got := columnToIndex(tt.column); got != tt.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", tt.column, got, tt.want)
		}
	}
}

func TestDefaultImportConfig(t *testing.T) {
	config := DefaultImportConfig("words.xlsx")
	if config.FilePath != "words.xlsx" {
		t.Errorf("unexpected file path %q", config.FilePath)
	}
	if config.StartRow != 2 || config.SheetName != "Sheet1" {
		t.Errorf("unexpected defaults %+v", config)
	}
	order := []string{config.LevelColumn, config.ArticleColumn, config.SingularColumn, config.PluralColumn, config.TranslationColumn, config.ExplanationColumn}
	for i, column := range order {
		want, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			t.Fatalf("column name: %v", err)
		}
		if column != want {
			t.Errorf("column %d: got %s, want %s", i, column, want)
		}
	}
}
