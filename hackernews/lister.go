// Package hackernews lists trending stories from the Hacker News front
// page, either by scraping the HTML directly or through the hnrss feed.
package hackernews

import (
	"context"
	"errors"
	"fmt"

	"hncast/types"
)

// ErrFetch indicates the listing endpoint was unreachable or returned a
// non-success status. A listing failure is fatal to the whole run.
var ErrFetch = errors.New("story listing failed")

// Lister returns up to limit stories in the aggregator's own ranking order.
type Lister interface {
	List(ctx context.Context, limit int) ([]types.Story, error)
	Name() string
}

// ItemURL returns the Hacker News discussion URL for a story id.
func ItemURL(id string) string {
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%s", id)
}
