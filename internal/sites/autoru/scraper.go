package autoru

import (
	"context"
	"fmt"
	"log/slog"

	"autoad/internal/browser"
	"autoad/internal/scraper"
	"autoad/internal/session"
)

func init() {
	scraper.Register(NewAutoruScraper(openBrowser))
}

// OpenFunc acquires the session a single scrape runs on.
type OpenFunc func(opts scraper.Options) (session.Session, error)

// AutoruScraper extracts mark, model, mileage and price from an auto.ru ad page.
type AutoruScraper struct {
	open   OpenFunc
	routes Routes
}

// NewAutoruScraper creates a scraper that obtains its session from open.
func NewAutoruScraper(open OpenFunc) *AutoruScraper {
	return &AutoruScraper{open: open, routes: DefaultRoutes()}
}

func (s *AutoruScraper) Name() string { return "autoru" }

// Scrape opens one session, passes the challenge screens and reads the listing.
// The session is closed exactly once on every return path.
func (s *AutoruScraper) Scrape(ctx context.Context, target string, opts scraper.Options) (scraper.Content, error) {
	u, err := ParseListingURL(target)
	if err != nil {
		return nil, err
	}

	sess, err := s.open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			slog.Warn("failed to close browser session", "error", err)
		}
	}()

	slog.Info("navigating", "url", target, "category", u.Category, "new", u.IsNew)
	if err := sess.Navigate(ctx, target); err != nil {
		return nil, err
	}

	resolver := NewResolver(ResolverConfig{
		Settle:    opts.ChallengeSettle,
		MaxPasses: opts.MaxChallengePasses,
	})
	if err := resolver.Resolve(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to pass bot protection: %w", err)
	}

	listing, err := NewExtractor(sess, s.routes).Extract(ctx, u)
	if err != nil {
		return nil, err
	}

	return NewListingContent(target, *listing), nil
}

func openBrowser(opts scraper.Options) (session.Session, error) {
	sess, err := browser.Open(browser.Config{
		ProxyURL:  opts.ProxyURL,
		Headless:  !opts.ShowUI,
		Bin:       opts.BrowserBin,
		NoSandbox: opts.NoSandbox,
	}, opts.Timeout)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
