// Package sessiontest provides an in-memory session.Session for tests.
package sessiontest

import (
	"context"
	"errors"
	"sync"

	"autoad/internal/session"
)

// Element is a scripted element held by a Fake.
//
// Clicking a non-persistent element removes it from the document, which is
// how a dismissed challenge behaves. A persistent element survives clicks.
type Element struct {
	Content    string
	Persistent bool
	Clicks     int
	// OnClick runs after the click has been applied.
	OnClick func()

	fake *Fake
	loc  session.Locator
}

func (e *Element) Text() (string, error) {
	return e.Content, nil
}

func (e *Element) Click() error {
	e.Clicks++
	if !e.Persistent && e.fake != nil {
		e.fake.Remove(e.loc)
	}
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

// Fake is a session.Session backed by a map of locators to elements.
type Fake struct {
	mu       sync.Mutex
	elements map[session.Locator]*Element

	// FindErr, when set, is returned by every Find call.
	FindErr error
	// NavigateErr, when set, is returned by Navigate.
	NavigateErr error

	Navigated []string
	Lookups   []session.Locator
	Closed    int
}

var _ session.Session = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{elements: map[session.Locator]*Element{}}
}

// Put places an element with the given text at loc and returns it.
func (f *Fake) Put(loc session.Locator, text string) *Element {
	f.mu.Lock()
	defer f.mu.Unlock()
	el := &Element{Content: text, fake: f, loc: loc}
	f.elements[loc] = el
	return el
}

// PutPersistent places an element that is not removed when clicked.
func (f *Fake) PutPersistent(loc session.Locator, text string) *Element {
	el := f.Put(loc, text)
	el.Persistent = true
	return el
}

// Remove deletes the element at loc, if any.
func (f *Fake) Remove(loc session.Locator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.elements, loc)
}

// LookupCount returns how many times loc was looked up.
func (f *Fake) LookupCount(loc session.Locator) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.Lookups {
		if l == loc {
			n++
		}
	}
	return n
}

func (f *Fake) Navigate(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Closed > 0 {
		return errors.New("session closed")
	}
	f.Navigated = append(f.Navigated, url)
	return f.NavigateErr
}

func (f *Fake) Find(ctx context.Context, loc session.Locator) (session.Element, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Lookups = append(f.Lookups, loc)
	if f.FindErr != nil {
		return nil, false, f.FindErr
	}
	el, ok := f.elements[loc]
	if !ok {
		return nil, false, nil
	}
	return el, true, nil
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed++
	return nil
}
