package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptySheet = errors.New("no data found in spreadsheet")
	ErrInvalidRow = errors.New("invalid row")
)

const (
	colName = iota
	colPrice
	colDescription
	colAvailable
	colImageURL
)

// ParseRows converts sheet rows into foods for storeID. The first row is a
// header. Rows without a name are skipped; a missing availability cell
// means available.
func ParseRows(rows [][]interface{}, storeID primitive.ObjectID) ([]domain.Food, error) {
	if len(rows) <= 1 {
		return nil, ErrEmptySheet
	}

	foods := make([]domain.Food, 0, len(rows)-1)

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, colName)
		if name == "" {
			continue
		}

		food := domain.Food{
			Name:        name,
			Description: cell(row, colDescription),
			ImageURL:    cell(row, colImageURL),
			StoreID:     storeID,
			Available:   true,
		}

		priceStr := strings.TrimSpace(cell(row, colPrice))
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("%w %d: invalid price %q", ErrInvalidRow, i+1, priceStr)
		}
		food.Price = price

		if available := cell(row, colAvailable); available != "" {
			food.Available = parseBool(available)
		}

		foods = append(foods, food)
	}

	if len(foods) == 0 {
		return nil, ErrEmptySheet
	}

	return foods, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

func parseBool(s string) bool {
	switch strings.ToUpper(s) {
	case "TRUE", "YES", "Y", "1":
		return true
	}
	return false
}
