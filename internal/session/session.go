package session

import (
	"context"
	"fmt"
)

// Kind selects how a Locator value is interpreted.
type Kind int

const (
	XPath     Kind = iota // structural path expression
	ClassName             // single CSS class identifier, without the leading dot
)

func (k Kind) String() string {
	switch k {
	case XPath:
		return "xpath"
	case ClassName:
		return "class"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Locator describes how to find one element in the current document.
type Locator struct {
	Kind  Kind
	Value string
}

func (l Locator) String() string {
	return l.Kind.String() + ":" + l.Value
}

// ByXPath returns an XPath locator.
func ByXPath(path string) Locator {
	return Locator{Kind: XPath, Value: path}
}

// ByClass returns a class-name locator.
func ByClass(name string) Locator {
	return Locator{Kind: ClassName, Value: name}
}

// Element is a handle to a located element.
type Element interface {
	Text() (string, error)
	Click() error
}

// Session owns a live browser page for the duration of one invocation.
//
// Find reports absence through its boolean result rather than an error, so
// each caller decides whether a missing element is success or failure. The
// error result is reserved for transport failures.
type Session interface {
	Navigate(ctx context.Context, url string) error
	Find(ctx context.Context, loc Locator) (Element, bool, error)
	Close() error
}
