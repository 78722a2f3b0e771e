package repository

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	catalogerrors "studycafe/internal/catalog/errors"
	"studycafe/pkg/model"
	"studycafe/pkg/sanitizer"
)

// readCSV opens path, skips the header line and parses every following
// record with parse. The file is closed before returning. Any unparseable
// record fails the whole read; no partial result is returned.
func readCSV[T any](ctx context.Context, path string, columns int, parse func(record []string) (T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogerrors.ErrUnavailable, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogerrors.ErrUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", catalogerrors.ErrUnavailable, path)
	}

	// The header line is discarded unparsed; its shape does not matter.
	buffered := bufio.NewReader(file)
	if _, err := buffered.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: %w", catalogerrors.ErrUnavailable, err)
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = columns
	reader.ReuseRecord = true

	items := []T{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classifyReadError(row, err)
		}

		item, err := parse(sanitizer.SanitizeRecord(record))
		if err != nil {
			return nil, catalogerrors.NewRowError(row, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// classifyReadError separates CSV syntax problems (the data is bad) from I/O
// failures (the resource is bad).
func classifyReadError(row int, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return catalogerrors.NewRowError(row, err)
	}
	return fmt.Errorf("%w: %w", catalogerrors.ErrUnavailable, err)
}

func parsePassType(value string) (model.PassType, error) {
	t, err := model.ParsePassType(value)
	if err != nil {
		return "", fmt.Errorf("column type: %w", err)
	}
	return t, nil
}

func parseInt(column, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return n, nil
}

func parseFloat(column, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return f, nil
}
