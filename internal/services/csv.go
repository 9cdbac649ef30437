package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dataplot/internal/logger"
	"dataplot/internal/models"
)

var (
	errMissingHeader = errors.New("missing header row")
	errNoRows        = errors.New("no data rows")
	errIsDirectory   = errors.New("is a directory")
)

// CSVService reads two-column numeric CSV files into datasets.
type CSVService struct {
	logger logger.Logger
}

func NewCSVService(log logger.Logger) *CSVService {
	if log == nil {
		log = logger.Nop{}
	}
	return &CSVService{logger: log}
}

// Load opens path, skips its header row and parses the remaining rows as x,y
// pairs. The dataset is titled with the file's base name.
func (s *CSVService) Load(path string) (*models.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &models.FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &models.FileAccessError{Path: path, Err: errIsDirectory}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &models.FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	ds, err := s.Parse(file, path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("csv loaded", map[string]interface{}{
		"path": path,
		"rows": ds.Len(),
	})
	return ds, nil
}

// Parse reads CSV content from r. name is used for the dataset title and in
// error messages.
func (s *CSVService) Parse(r io.Reader, name string) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &models.ParseError{Path: name, Err: errMissingHeader}
		}
		return nil, readError(name, err)
	}

	var xs, ys []float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(name, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) != 2 {
			return nil, &models.ParseError{
				Path: name,
				Line: line,
				Err:  fmt.Errorf("expected 2 columns, found %d", len(record)),
			}
		}

		var pair [2]float64
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &models.ParseError{
					Path:   name,
					Line:   line,
					Column: i + 1,
					Err:    fmt.Errorf("not a number: %q", cell),
				}
			}
			pair[i] = v
		}
		xs = append(xs, pair[0])
		ys = append(ys, pair[1])
	}

	if len(xs) == 0 {
		return nil, &models.ParseError{Path: name, Err: errNoRows}
	}

	return models.NewDataset(xs, ys, filepath.Base(name))
}

func readError(name string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &models.ParseError{Path: name, Line: csvErr.Line, Column: csvErr.Column, Err: csvErr.Err}
	}
	return &models.FileAccessError{Path: name, Err: err}
}
