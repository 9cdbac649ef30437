package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dataplot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTwoColumnCSV(t *testing.T) {
	path := writeFile(t, "growth.csv", "x,y\n1,3\n2,5\n3,8\n4,8\n")

	ds, err := NewCSVService(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4}, ds.X())
	assert.Equal(t, []float64{3, 5, 8, 8}, ds.Y())
	assert.Equal(t, "growth.csv", ds.Title())
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	content := "time, value\n# calibration run\n0.5, -1e3\n\n1.5,  2.25\n"

	ds, err := NewCSVService(nil).Parse(strings.NewReader(content), "run.csv")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 1.5}, ds.X())
	assert.Equal(t, []float64{-1000, 2.25}, ds.Y())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		line    int
		column  int
	}{
		{"single column", "x\n1\n2\n", 2, 0},
		{"three columns", "x,y,z\n1,2,3\n", 2, 0},
		{"non numeric", "x,y\n1,2\n3,abc\n", 3, 2},
		{"header only", "x,y\n", 0, 0},
		{"empty", "", 0, 0},
		{"bad quote", "x,y\n1,\"2\n", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := NewCSVService(nil).Parse(strings.NewReader(tc.content), "bad.csv")
			assert.Nil(t, ds)

			var parseErr *models.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			if tc.line != 0 {
				assert.Equal(t, tc.line, parseErr.Line)
			}
			if tc.column != 0 {
				assert.Equal(t, tc.column, parseErr.Column)
			}
		})
	}
}

func TestLoadFileAccessErrors(t *testing.T) {
	svc := NewCSVService(nil)

	_, err := svc.Load(filepath.Join(t.TempDir(), "missing.csv"))
	var accessErr *models.FileAccessError
	require.True(t, errors.As(err, &accessErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = svc.Load(t.TempDir())
	require.True(t, errors.As(err, &accessErr))
}
