package autoru

import "strings"

// Category is the vehicle classification segment of a listing URL.
type Category string

const (
	CategoryCars       Category = "cars"
	CategoryLCV        Category = "lcv"
	CategoryMotorcycle Category = "motorcycle"
)

const (
	categorySegment  = 3
	conditionSegment = 4
	minSegments      = conditionSegment + 1

	conditionNew = "new"
)

// ListingURL holds the attributes of a listing that decide how its page is read.
type ListingURL struct {
	Category Category
	IsNew    bool
}

// ParseListingURL classifies a URL such as https://auto.ru/cars/used/sale/... .
//
// Segments are counted on the raw string split by "/", so the scheme and the
// empty segment after it occupy the first two positions. The category is not
// checked here; an unknown one surfaces as an UnroutedFieldError when routed.
func ParseListingURL(raw string) (ListingURL, error) {
	segments := strings.Split(raw, "/")
	if len(segments) < minSegments {
		return ListingURL{}, &MalformedURLError{URL: raw, Segments: len(segments)}
	}
	return ListingURL{
		Category: Category(segments[categorySegment]),
		IsNew:    segments[conditionSegment] == conditionNew,
	}, nil
}
