package autoru

import (
	"fmt"
	"strings"

	"autoad/internal/session"
)

// MalformedURLError reports a listing URL without the category and condition segments.
type MalformedURLError struct {
	URL      string
	Segments int
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed listing URL %q: expected at least %d path segments, got %d", e.URL, minSegments, e.Segments)
}

// UnroutedFieldError reports a (field, category) pair missing from the routing table.
type UnroutedFieldError struct {
	Field    Field
	Category Category
}

func (e *UnroutedFieldError) Error() string {
	return fmt.Sprintf("no route for field %q in category %q", e.Field, e.Category)
}

// ElementNotFoundError reports a listing field whose element is absent from the page.
type ElementNotFoundError struct {
	Field   Field
	Locator session.Locator
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element for field %q not found (%s)", e.Field, e.Locator)
}

// ChallengeTimeoutError reports challenges still present after the pass limit.
type ChallengeTimeoutError struct {
	Passes  int
	Pending []string
}

func (e *ChallengeTimeoutError) Error() string {
	return fmt.Sprintf("challenges still present after %d passes: %s", e.Passes, strings.Join(e.Pending, ", "))
}
