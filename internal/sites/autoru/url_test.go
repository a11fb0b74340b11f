package autoru

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListingURL(t *testing.T) {
	testCases := []struct {
		url      string
		expected ListingURL
	}{
		{
			url:      "https://auto.ru/cars/used/123",
			expected: ListingURL{Category: CategoryCars, IsNew: false},
		},
		{
			url:      "https://auto.ru/cars/new/123",
			expected: ListingURL{Category: CategoryCars, IsNew: true},
		},
		{
			url:      "https://auto.ru/motorcycle/used/456",
			expected: ListingURL{Category: CategoryMotorcycle, IsNew: false},
		},
		{
			url:      "https://auto.ru/lcv/new/sale/gaz/gazel_next/1125000000-abcdef/",
			expected: ListingURL{Category: CategoryLCV, IsNew: true},
		},
		{
			// Exactly five segments is enough.
			url:      "https://auto.ru/cars/used",
			expected: ListingURL{Category: CategoryCars, IsNew: false},
		},
		{
			// The category is passed through; the router decides whether it is known.
			url:      "https://auto.ru/trucks/used/1",
			expected: ListingURL{Category: "trucks", IsNew: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			got, err := ParseListingURL(tc.url)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestParseListingURLMalformed(t *testing.T) {
	for _, raw := range []string{
		"https://auto.ru/cars",
		"https://auto.ru",
		"auto.ru/cars/used",
		"",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseListingURL(raw)
			require.Error(t, err)

			var malformed *MalformedURLError
			require.True(t, errors.As(err, &malformed))
			require.Equal(t, raw, malformed.URL)
			require.Less(t, malformed.Segments, minSegments)
		})
	}
}
