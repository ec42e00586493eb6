package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Record map[string]any

// parseFile reads the values of the valueKey column (CSV/TSV) or field (JSON)
// in file order and hands each of them to onEachValue.
func parseFile(path string, valueKey string, onEachValue func(value int) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJson(path, valueKey, onEachValue)
	case ".csv":
		return parseCsv(path, ',', valueKey, onEachValue)
	case ".tsv":
		return parseCsv(path, '\t', valueKey, onEachValue)
	}
	return fmt.Errorf("unsupported file type %q, expected .csv, .tsv or .json", filepath.Ext(path))
}

func parseJson(path string, valueKey string, onEachValue func(value int) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a JSON Decoder
	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	// Read opening bracket of the array
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected a JSON array of records, got %v", token)
	}

	// Decode each element of the array
	for index := 0; decoder.More(); index++ {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}

		raw, found := data[valueKey]
		if !found {
			return fmt.Errorf("record %d has no %q field: %v", index, valueKey, data)
		}

		var value int
		switch v := raw.(type) {
		case json.Number:
			value, err = parseValue(v.String())
		case string:
			value, err = parseValue(v)
		default:
			err = fmt.Errorf("unexpected value %v of type %T", v, v)
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", index, err)
		}

		if err := onEachValue(value); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(path string, separator rune, valueKey string, onEachValue func(value int) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a CSV Reader
	reader := csv.NewReader(file)
	reader.Comma = separator

	// Read the header to find the value column
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("can not read header: %w", err)
	}
	column := -1
	for i, header := range headers {
		if strings.TrimSpace(header) == valueKey {
			column = i
			break
		}
	}
	if column < 0 {
		return fmt.Errorf("no %q column in header %v", valueKey, headers)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		value, err := parseValue(record[column])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := onEachValue(value); err != nil {
			return err
		}
	}
}

func parseValue(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("can not convert %q to an integer: %w", raw, err)
	}
	return value, nil
}
