package autoru

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autoad/internal/session"
)

// Challenge is an interstitial screen dismissed by clicking its trigger.
type Challenge struct {
	Name    string
	Trigger session.Locator
}

// DefaultChallenges are the interstitials auto.ru shows before a listing.
var DefaultChallenges = []Challenge{
	{Name: "confirm", Trigger: session.ByXPath(`//*[@id="confirm-button"]`)},
	{Name: "captcha", Trigger: session.ByXPath(`//*[@id="js-button"]`)},
}

// DefaultSettle is the pause after each click while the page re-renders.
const DefaultSettle = 3 * time.Second

// ResolverConfig tunes a Resolver. Zero values select the defaults.
type ResolverConfig struct {
	Challenges []Challenge
	Settle     time.Duration
	// MaxPasses bounds the number of passes; 0 keeps polling until every
	// challenge is gone, however long that takes.
	MaxPasses int
}

// Resolver dismisses challenge screens until none remain on the page.
type Resolver struct {
	challenges []Challenge
	settle     time.Duration
	maxPasses  int
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewResolver creates a Resolver from cfg.
func NewResolver(cfg ResolverConfig) *Resolver {
	r := &Resolver{
		challenges: cfg.Challenges,
		settle:     cfg.Settle,
		maxPasses:  cfg.MaxPasses,
		sleep:      sleepContext,
	}
	if len(r.challenges) == 0 {
		r.challenges = DefaultChallenges
	}
	if r.settle <= 0 {
		r.settle = DefaultSettle
	}
	return r
}

// Resolve polls the page in passes. Within a pass every challenge trigger is
// looked up in order: a present trigger is clicked and followed by a settle
// pause, an absent one marks its challenge as resolved. Resolve returns after
// the first pass that finds no challenge still pending.
func (r *Resolver) Resolve(ctx context.Context, s session.Session) error {
	pending := make([]bool, len(r.challenges))
	for i := range pending {
		pending[i] = true
	}

	for pass := 1; anyPending(pending); pass++ {
		if r.maxPasses > 0 && pass > r.maxPasses {
			return &ChallengeTimeoutError{Passes: r.maxPasses, Pending: r.pendingNames(pending)}
		}
		slog.Debug("checking for challenges", "pass", pass)

		for i, c := range r.challenges {
			el, found, err := s.Find(ctx, c.Trigger)
			if err != nil {
				return fmt.Errorf("failed to look up %s challenge: %w", c.Name, err)
			}
			if !found {
				pending[i] = false
				continue
			}

			if err := el.Click(); err != nil {
				return fmt.Errorf("failed to dismiss %s challenge: %w", c.Name, err)
			}
			slog.Info("challenge dismissed", "challenge", c.Name, "pass", pass)

			if err := r.sleep(ctx, r.settle); err != nil {
				return fmt.Errorf("interrupted while waiting for %s challenge: %w", c.Name, err)
			}
		}
	}
	return nil
}

func (r *Resolver) pendingNames(pending []bool) []string {
	var names []string
	for i, p := range pending {
		if p {
			names = append(names, r.challenges[i].Name)
		}
	}
	return names
}

func anyPending(pending []bool) bool {
	for _, p := range pending {
		if p {
			return true
		}
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
