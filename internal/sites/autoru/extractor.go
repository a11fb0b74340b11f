package autoru

import (
	"context"
	"fmt"
	"strings"

	"autoad/internal/session"
)

const (
	// newVehicleMileage is reported for new vehicles, whose cards have no mileage row.
	newVehicleMileage = "0 км"
	// mileageLabel prefixes the mileage row text on used-vehicle cards.
	mileageLabel = "Пробег\n"
)

// Listing is the record extracted from one ad page.
type Listing struct {
	Mark    string `json:"mark"`
	Model   string `json:"model"`
	Mileage string `json:"mileage"`
	Price   string `json:"price"`
}

// Extractor reads listing fields from a page that is past its challenges.
type Extractor struct {
	session session.Session
	routes  Routes
}

// NewExtractor creates an Extractor reading through s with the given routing table.
func NewExtractor(s session.Session, routes Routes) *Extractor {
	return &Extractor{session: s, routes: routes}
}

// Extract reads mark, model, mileage and price in that order. Any missing
// element fails the whole extraction.
func (e *Extractor) Extract(ctx context.Context, u ListingURL) (*Listing, error) {
	mark, err := e.routed(ctx, FieldMark, u.Category)
	if err != nil {
		return nil, err
	}
	model, err := e.routed(ctx, FieldModel, u.Category)
	if err != nil {
		return nil, err
	}
	mileage, err := e.mileage(ctx, u.IsNew)
	if err != nil {
		return nil, err
	}
	price, err := e.read(ctx, FieldPrice, priceLocator)
	if err != nil {
		return nil, err
	}

	return &Listing{
		Mark:    mark,
		Model:   model,
		Mileage: mileage,
		Price:   price,
	}, nil
}

func (e *Extractor) routed(ctx context.Context, field Field, category Category) (string, error) {
	loc, err := e.routes.Route(field, category)
	if err != nil {
		return "", err
	}
	return e.read(ctx, field, loc)
}

func (e *Extractor) mileage(ctx context.Context, isNew bool) (string, error) {
	if isNew {
		return newVehicleMileage, nil
	}
	text, err := e.read(ctx, FieldMileage, mileageLocator)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(text, mileageLabel), nil
}

func (e *Extractor) read(ctx context.Context, field Field, loc session.Locator) (string, error) {
	el, found, err := e.session.Find(ctx, loc)
	if err != nil {
		return "", fmt.Errorf("failed to look up %s: %w", field, err)
	}
	if !found {
		return "", &ElementNotFoundError{Field: field, Locator: loc}
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field, err)
	}
	return text, nil
}
