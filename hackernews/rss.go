package hackernews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"hncast/config"
	"hncast/types"
)

// DefaultFeedURL is the hnrss mirror of the Hacker News front page.
const DefaultFeedURL = "https://hnrss.org/frontpage"

// RSS lists stories through an RSS/Atom mirror of the front page. It is
// an alternative to the HTML scraper for when the markup shifts.
type RSS struct {
	feedURL string
	parser  *gofeed.Parser
}

// NewRSS creates an RSS lister. An empty feedURL selects hnrss.
func NewRSS(feedURL string) *RSS {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: config.FetchTimeout}
	return &RSS{
		feedURL: feedURL,
		parser:  parser,
	}
}

func (r *RSS) Name() string {
	return "rss"
}

// List fetches and parses the feed, returning up to limit stories in
// feed order.
func (r *RSS) List(ctx context.Context, limit int) ([]types.Story, error) {
	feed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	count := len(feed.Items)
	if limit > 0 && limit < count {
		count = limit
	}

	stories := make([]types.Story, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		// hnrss puts the discussion link in the comments field and the
		// item id in the GUID.
		discussion := item.GUID
		if discussion == "" {
			discussion = item.Link
		}
		id := itemID(discussion)
		if id == "" {
			continue
		}

		stories = append(stories, types.Story{
			ID:            id,
			Rank:          len(stories) + 1,
			Title:         strings.TrimSpace(item.Title),
			URL:           item.Link,
			HackerNewsURL: ItemURL(id),
		})
	}

	return stories, nil
}

// itemID pulls the numeric story id out of a discussion URL such as
// https://news.ycombinator.com/item?id=41000000.
func itemID(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Query().Get("id")
}
