package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type namedScraper string

func (n namedScraper) Name() string { return string(n) }

func (n namedScraper) Scrape(ctx context.Context, target string, opts Options) (Content, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	Register(namedScraper("Zeta"))
	Register(namedScraper("alpha"))
	t.Cleanup(func() {
		delete(registry, "zeta")
		delete(registry, "alpha")
	})

	s, ok := Get("ZETA")
	require.True(t, ok)
	require.Equal(t, "Zeta", s.Name())

	_, ok = Get("missing")
	require.False(t, ok)

	require.Equal(t, []string{"alpha", "zeta"}, Names())
}
