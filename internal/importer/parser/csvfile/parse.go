// Package csvfile parses bank transaction CSV exports into raw rows for
// the import pipeline. Exports frequently carry metadata lines before the
// actual header and a UTF-8 byte order mark, both are handled here.
package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/balance-pilot/backend/internal/importer"
)

// headerKeywords identify the header line in an export with leading
// metadata.
var headerKeywords = []string{"transactiondate", "transaction date", "date", "amount", "description"}

// Parse reads a CSV export and returns its data rows in input order.
// Completely blank rows are dropped, rows with fewer fields than the
// header keep the fields they have.
func Parse(f io.Reader) ([]importer.RawRow, error) {
	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("could not read CSV: %w", err)
	}

	start := headerIndex(lines)
	if start >= len(lines) {
		return []importer.RawRow{}, nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	rows := make([]importer.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
		}

		row := make(importer.RawRow, len(header))
		blank := true
		for i, value := range record {
			if i >= len(header) {
				break
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			row[header[i]] = value
		}

		if blank {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func readLines(f io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// headerIndex finds the line the header starts on. Defaults to the first
// line when no header keywords are found.
func headerIndex(lines []string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, keyword := range headerKeywords {
			if strings.Contains(lower, keyword) {
				return i
			}
		}
	}

	return 0
}
