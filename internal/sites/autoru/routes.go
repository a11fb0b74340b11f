package autoru

import "autoad/internal/session"

// Field names a value read from a listing page.
type Field string

const (
	FieldMark    Field = "mark"
	FieldModel   Field = "model"
	FieldMileage Field = "mileage"
	FieldPrice   Field = "price"
)

type routeKey struct {
	field    Field
	category Category
}

// Routes maps a routed field and a category to the locator of its element.
// The zero value routes nothing.
type Routes struct {
	table map[routeKey]session.Locator
}

// NewRoutes builds a routing table from a field -> category -> XPath description.
func NewRoutes(paths map[Field]map[Category]string) Routes {
	table := make(map[routeKey]session.Locator)
	for field, byCategory := range paths {
		for category, path := range byCategory {
			table[routeKey{field, category}] = session.ByXPath(path)
		}
	}
	return Routes{table: table}
}

// Route returns the locator for field on a page of the given category.
func (r Routes) Route(field Field, category Category) (session.Locator, error) {
	loc, ok := r.table[routeKey{field, category}]
	if !ok {
		return session.Locator{}, &UnroutedFieldError{Field: field, Category: category}
	}
	return loc, nil
}

// Card attribute rows. Light commercial vehicles and motorcycles carry one
// extra row above the mark, which shifts mark and model down by one.
const (
	cardRowsPath = `//*[@id="app"]/div/div[2]/div[3]/div/div[2]/div/div[2]/div/div[1]/div[1]/div`

	row3Link = cardRowsPath + `/div[3]/div/a`
	row4Link = cardRowsPath + `/div[4]/div/a`
	row5Link = cardRowsPath + `/div[5]/div/a`
)

// DefaultRoutes returns the routing table for the current auto.ru card layout.
func DefaultRoutes() Routes {
	return NewRoutes(map[Field]map[Category]string{
		FieldMark: {
			CategoryCars:       row3Link,
			CategoryLCV:        row4Link,
			CategoryMotorcycle: row4Link,
		},
		FieldModel: {
			CategoryCars:       row4Link,
			CategoryLCV:        row5Link,
			CategoryMotorcycle: row5Link,
		},
	})
}

// Fixed locators for fields whose position does not depend on the category.
var (
	mileageLocator = session.ByClass("CardInfoRow_kmAge")
	priceLocator   = session.ByClass("OfferPriceCaption__price")
)
