// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetermineDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{"comma", "a,b,c\n1,2,3\n4,5,6\n", ','},
		{"tab", "a\tb\tc\n1\t2\t3\n4\t5\t6\n", '\t'},
		{"semicolon", "a;b;c\n1;2;3\n4;5;6\n", ';'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineDelimiter(strings.NewReader(tt.content))
			if got != tt.want {
				t.Errorf("DetermineDelimiter = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFileDelimitedText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plateA_run1.csv")
	content := "Program,\"xPONENT\"\n\"Location\",\"Sample\",\"AMA1\"\n\"A1\",\"Standard1\",\"999\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "plateA_run1", doc.Name)
	require.Len(t, doc.Records, 3)
	assert.Equal(t, []string{"Location", "Sample", "AMA1"}, doc.Records[1])
	assert.Equal(t, []string{"A1", "Standard1", "999"}, doc.Records[2])
}

func TestReadFileTabDelimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plateB.txt")
	content := "Location\tSample\tAMA1\nA1\tStandard1\t999\nB1\tSample 1\t500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)

	require.Len(t, doc.Records, 3)
	assert.Equal(t, []string{"A1", "Standard1", "999"}, doc.Records[1])
}

func TestReadFileRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plateC.csv")
	content := "one field\na,b,c,d\nx,y\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Records, 3)
	assert.Len(t, doc.Records[1], 4)
	assert.Len(t, doc.Records[2], 2)
}

func TestReadFileWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plateD_run1.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"DataType:", "Median"},
		{"Location", "Sample", "AMA1"},
		{"A1", "Standard1", 999},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	doc, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "plateD_run1", doc.Name)
	require.Len(t, doc.Records, 3)
	assert.Equal(t, []string{"DataType:", "Median"}, doc.Records[0])
	assert.Equal(t, []string{"A1", "Standard1", "999"}, doc.Records[2])
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
