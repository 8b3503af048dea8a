// Package csv imports inventory data from CSV files, the exchange format
// spreadsheet exports typically produce.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prepware/stockpile/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Loader handles loading inventory data from CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadItems loads inventory items from a CSV file. Expiration dates use
// the 2006-01-02 layout and are interpreted in local time, matching the
// engine's local-midnight arithmetic. Optional columns may be left empty.
func (l *Loader) LoadItems(filename string) ([]entities.InventoryItem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory CSV must have header and at least one data row")
	}

	expectedHeader := []string{"id", "name", "item_type", "category", "quantity", "unit", "never_expires", "expiration_date", "marked_as_enough"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var items []entities.InventoryItem
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		item, err := parseItem(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseItem(record []string) (entities.InventoryItem, error) {
	quantity, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return entities.InventoryItem{}, fmt.Errorf("invalid quantity: %s", record[4])
	}

	item, err := entities.NewInventoryItem(
		record[0],
		record[1],
		entities.ItemTypeID(record[2]),
		entities.CategoryID(record[3]),
		entities.Quantity(quantity),
		record[5],
	)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	item.NeverExpires, err = parseBool(record[6])
	if err != nil {
		return entities.InventoryItem{}, fmt.Errorf("invalid never_expires: %s", record[6])
	}

	if record[7] != "" {
		date, err := time.ParseInLocation(dateLayout, record[7], time.Local)
		if err != nil {
			return entities.InventoryItem{}, fmt.Errorf("invalid expiration_date: %s (expected YYYY-MM-DD)", record[7])
		}
		item.ExpirationDate = &date
	}

	item.MarkedAsEnough, err = parseBool(record[8])
	if err != nil {
		return entities.InventoryItem{}, fmt.Errorf("invalid marked_as_enough: %s", record[8])
	}

	return *item, nil
}

// parseBool treats an empty cell as false; spreadsheets leave unset flags
// blank rather than writing "false".
func parseBool(s string) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
