package parser

import (
	"context"
	"fmt"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// columns A to E: name, price, description, available, image url
const foodsRange = "A:E"

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseFoods(ctx context.Context, spreadsheetID string, storeID primitive.ObjectID) ([]domain.Food, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, foodsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return ParseRows(resp.Values, storeID)
}
