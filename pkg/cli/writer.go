package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const reportName = "traversals"

// Writer stores a report as a file in directory and returns the file path.
type Writer interface {
	Write(report *Report, directory string) (string, error)
}

func newWriter(format string) (Writer, error) {
	switch format {
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	}
	return nil, validateFormat(format)
}

type JsonWriter struct{}

func (w JsonWriter) Write(report *Report, directory string) (string, error) {
	filePath := filepath.Join(directory, reportName+".json")

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", err
	}
	return filePath, file.Close()
}

// CsvWriter writes one row per visited value: order, position, value.
type CsvWriter struct {
	isTSV bool
}

func (w CsvWriter) Write(report *Report, directory string) (string, error) {
	// prepare the file name and extension
	filePath := reportName
	separator := ','
	if w.isTSV {
		filePath += ".tsv"
		separator = '\t'
	} else {
		filePath += ".csv"
	}
	filePath = filepath.Join(directory, filePath)

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator

	if err := writer.Write([]string{"order", "position", "value"}); err != nil {
		return "", err
	}

	for _, traversal := range report.Traversals {
		for i, value := range traversal.Values {
			record := []string{traversal.Order, strconv.Itoa(i + 1), strconv.Itoa(value)}
			if err := writer.Write(record); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("can not write %s: %w", filePath, err)
	}
	return filePath, file.Close()
}
