package scraper

import (
	"context"
	"time"
)

type Scraper interface {
	Name() string
	Scrape(ctx context.Context, target string, opts Options) (Content, error)
}

type Content interface {
	ToHTML() (string, error)
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
}

// Tabler is implemented by content that can render itself as a text table.
type Tabler interface {
	ToTable() (string, error)
}

type Options struct {
	Timeout    time.Duration // per-navigation timeout; 0 disables it
	ShowUI     bool
	ProxyURL   string // --proxy flag or AUTOAD_PROXY env var
	BrowserBin string
	NoSandbox  bool

	ChallengeSettle    time.Duration // pause after dismissing a challenge
	MaxChallengePasses int           // 0 polls until the page is clear
}
