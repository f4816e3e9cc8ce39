// Package history keeps the most recent YouTube audits so a user can revisit
// them without paying for another remote call. It sits beside the gateway:
// the HTTP adapter saves a result after a successful audit, and the gateway
// core never sees it.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxItems is how many audits are kept when no limit is configured.
const DefaultMaxItems = 5

// ErrDisabled is returned by the disabled store.
var ErrDisabled = errors.New("history is disabled")

// Item is one saved audit.
type Item struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Store persists audit history.
type Store interface {
	// Save records data for url as the newest item. An older item for the
	// same URL is replaced and the oldest items beyond the limit are dropped.
	Save(ctx context.Context, url string, data json.RawMessage) (Item, error)

	// List returns the saved items, newest first.
	List(ctx context.Context) ([]Item, error)

	// Clear removes every item.
	Clear(ctx context.Context) error
}

// NewItem stamps a new history item. IDs are "<unix millis>-<uuid>".
func NewItem(url string, data json.RawMessage, now time.Time) Item {
	return Item{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.New()),
		URL:       strings.TrimSpace(url),
		Data:      data,
		Timestamp: now.UTC(),
	}
}

// sameURL compares channel URLs the way a user would type them.
func sameURL(a, b string) bool {
	return strings.EqualFold(strings.TrimRight(strings.TrimSpace(a), "/"), strings.TrimRight(strings.TrimSpace(b), "/"))
}

// Disabled is the Store used when no backend is configured.
type Disabled struct{}

func (Disabled) Save(context.Context, string, json.RawMessage) (Item, error) { return Item{}, ErrDisabled }
func (Disabled) List(context.Context) ([]Item, error)                        { return nil, ErrDisabled }
func (Disabled) Clear(context.Context) error                                 { return ErrDisabled }
