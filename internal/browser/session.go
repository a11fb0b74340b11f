package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoad/internal/session"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Session is a session.Session backed by one stealth page of a dedicated browser.
type Session struct {
	browser *Browser
	page    *rod.Page
	timeout time.Duration
	closed  bool
}

var _ session.Session = (*Session)(nil)

// Open launches a browser and opens the page the session will drive.
// navTimeout bounds each Navigate call; zero means no bound.
func Open(cfg Config, navTimeout time.Duration) (*Session, error) {
	b, err := New(cfg)
	if err != nil {
		return nil, err
	}
	page, err := b.NewPage()
	if err != nil {
		b.Close()
		return nil, err
	}
	return &Session{browser: b, page: page, timeout: navTimeout}, nil
}

// Navigate loads url and waits for the load event followed by a short network idle,
// so that client-rendered listing markup is in place before lookups start.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if s.timeout > 0 {
		page = page.Timeout(s.timeout)
	}

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to wait for page load: %w", err)
	}

	wait := page.WaitRequestIdle(
		500*time.Millisecond, nil, nil,
		[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia},
	)
	wait()
	return nil
}

// Find checks the current document once, without waiting for the element to appear.
func (s *Session) Find(ctx context.Context, loc session.Locator) (session.Element, bool, error) {
	page := s.page.Context(ctx)

	var (
		found bool
		el    *rod.Element
		err   error
	)
	switch loc.Kind {
	case session.XPath:
		found, el, err = page.HasX(loc.Value)
	case session.ClassName:
		found, el, err = page.Has("." + loc.Value)
	default:
		return nil, false, fmt.Errorf("unsupported locator kind: %s", loc.Kind)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %s: %w", loc, err)
	}
	if !found {
		return nil, false, nil
	}
	return &element{el: el}, true, nil
}

// Close releases the page and the browser process. Calling it again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close page: %w", err))
		}
	}
	if err := s.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	return errors.Join(errs...)
}

type element struct {
	el *rod.Element
}

func (e *element) Text() (string, error) {
	return e.el.Text()
}

func (e *element) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}
