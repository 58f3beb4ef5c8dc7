package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Delimiter separates fields within a record line. It is never escaped.
const Delimiter = "|"

// ErrMalformedData is returned when the count line or a record line cannot
// be parsed.
var ErrMalformedData = errors.New("malformed data")

// Codec converts records of one entity kind to and from the line format:
//
//	<count>
//	<field1>|<field2>|...|<fieldN>
//
// with exactly count record lines following the header.
type Codec[T any] struct {
	// Kind names the entity kind in logs and errors (e.g., "plan").
	Kind string

	// Capacity caps how many records Read returns, whatever the header says.
	Capacity int

	encode func(T) string
	decode func(line string) (T, error)
}

// Read parses a header line and up to min(count, Capacity) record lines.
//
// Parsing stops at the first bad record: the records before it are returned
// together with an error wrapping ErrMalformedData. A bad header yields no
// records. A header claiming more records than the input holds is also
// reported as malformed, with every record that was present.
func (c Codec[T]) Read(r io.Reader) ([]T, error) {
	scanner := bufio.NewScanner(r)

	header, ok := nextLine(scanner)
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s count: %w", c.Kind, err)
		}
		return nil, fmt.Errorf("%w: missing %s count line", ErrMalformedData, c.Kind)
	}
	count, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s count %q", ErrMalformedData, c.Kind, header)
	}

	limit := min(count, c.Capacity)
	var records []T
	for i := 0; i < limit; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			if err := scanner.Err(); err != nil {
				return records, fmt.Errorf("failed to read %s %d: %w", c.Kind, i+1, err)
			}
			return records, fmt.Errorf("%w: %s %d missing, file ends after %d of %d records",
				ErrMalformedData, c.Kind, i+1, i, count)
		}
		rec, err := c.decode(line)
		if err != nil {
			return records, fmt.Errorf("%w: %s %d: %v", ErrMalformedData, c.Kind, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write emits the header and one line per record, in order.
func (c Codec[T]) Write(w io.Writer, records []T) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(records)); err != nil {
		return fmt.Errorf("failed to write %s count: %w", c.Kind, err)
	}
	for _, rec := range records {
		if _, err := bw.WriteString(c.encode(rec) + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Kind, err)
		}
	}
	return bw.Flush()
}

// nextLine returns the next non-blank line with any trailing CR removed.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func parseInt(field, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, field)
	}
	return n, nil
}

// parseText checks a string field the way the format requires: present and
// within its length limit.
func parseText(field, name string, max int) (string, error) {
	if field == "" {
		return "", fmt.Errorf("empty %s", name)
	}
	if len(field) > max {
		return "", fmt.Errorf("%s longer than %d bytes", name, max)
	}
	return field, nil
}

// splitFields splits a line into exactly n fields.
func splitFields(line string, n int) ([]string, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	return fields, nil
}
