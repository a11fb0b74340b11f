package autoru

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/jedib0t/go-pretty/v6/table"
)

const detailsHeading = "Детали объявления"

// ListingContent holds an extracted listing and implements scraper.Content.
type ListingContent struct {
	sourceURL string
	listing   Listing
}

// NewListingContent creates a new ListingContent instance.
func NewListingContent(sourceURL string, listing Listing) *ListingContent {
	return &ListingContent{sourceURL: sourceURL, listing: listing}
}

// Listing returns the extracted record.
func (c *ListingContent) Listing() Listing {
	return c.listing
}

// rows pairs each display label with its value, in print order.
func (c *ListingContent) rows() [][2]string {
	return [][2]string{
		{"Марка", c.listing.Mark},
		{"Модель", c.listing.Model},
		{"Пробег", c.listing.Mileage},
		{"Цена", c.listing.Price},
	}
}

func (c *ListingContent) ToText() (string, error) {
	var sb strings.Builder
	sb.WriteString(detailsHeading + ":\n")
	for _, r := range c.rows() {
		sb.WriteString(fmt.Sprintf("%s: %s\n", r[0], r[1]))
	}
	return sb.String(), nil
}

func (c *ListingContent) ToHTML() (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n<ul>\n", detailsHeading))
	for _, r := range c.rows() {
		sb.WriteString(fmt.Sprintf("  <li><strong>%s:</strong> %s</li>\n", r[0], html.EscapeString(r[1])))
	}
	sb.WriteString("</ul>\n")
	if c.sourceURL != "" {
		sb.WriteString(fmt.Sprintf("<p><a href=%q>%s</a></p>\n", c.sourceURL, html.EscapeString(c.sourceURL)))
	}
	return sb.String(), nil
}

func (c *ListingContent) ToMarkdown() (string, error) {
	h, err := c.ToHTML()
	if err != nil {
		return "", err
	}
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(h)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}

func (c *ListingContent) ToJSON() ([]byte, error) {
	type jsonListing struct {
		Source string `json:"source"`
		Listing
	}
	return json.MarshalIndent(jsonListing{Source: c.sourceURL, Listing: c.listing}, "", "  ")
}

func (c *ListingContent) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Mark", "Model", "Mileage", "Price", "URL"})
	_ = w.Write([]string{c.listing.Mark, c.listing.Model, c.listing.Mileage, c.listing.Price, c.sourceURL})
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}

func (c *ListingContent) ToTable() (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(detailsHeading)
	for _, r := range c.rows() {
		t.AppendRow(table.Row{r[0], r[1]})
	}
	return t.Render(), nil
}
