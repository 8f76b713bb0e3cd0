package hackernews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hncast/config"
	"hncast/types"
)

const (
	// DefaultFrontPageURL is the Hacker News front page.
	DefaultFrontPageURL = "https://news.ycombinator.com"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36"
)

// FrontPage lists stories by scraping the Hacker News front page HTML.
type FrontPage struct {
	baseURL string
	client  *http.Client
}

// NewFrontPage creates a front-page lister for the given base URL.
// An empty baseURL selects the live site.
func NewFrontPage(baseURL string) *FrontPage {
	if baseURL == "" {
		baseURL = DefaultFrontPageURL
	}
	return &FrontPage{
		baseURL: baseURL,
		client:  &http.Client{Timeout: config.FetchTimeout},
	}
}

func (f *FrontPage) Name() string {
	return "frontpage"
}

// List fetches the front page and returns up to limit stories in page
// order. A limit <= 0 returns every story on the page.
func (f *FrontPage) List(ctx context.Context, limit int) ([]types.Story, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrFetch, resp.StatusCode, f.baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse front page: %v", ErrFetch, err)
	}

	base, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var stories []types.Story
	doc.Find("tr.athing").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if limit > 0 && len(stories) >= limit {
			return false
		}

		id, ok := row.Attr("id")
		if !ok {
			return true
		}

		title := row.Find(".titleline > a").First()
		href, ok := title.Attr("href")
		if !ok {
			return true
		}

		story := types.Story{
			ID:            id,
			Rank:          len(stories) + 1,
			Title:         strings.TrimSpace(title.Text()),
			URL:           resolveURL(base, href),
			HackerNewsURL: ItemURL(id),
		}

		// Points and comment count live in the subtext row below the item.
		subtext := row.Next()
		story.Points = parseCount(subtext.Find(".score").First().Text())
		subtext.Find(`a[href^="item?id="]`).Each(func(_ int, a *goquery.Selection) {
			if strings.Contains(a.Text(), "comment") {
				story.CommentCount = parseCount(a.Text())
			}
		})

		stories = append(stories, story)
		return true
	})

	return stories, nil
}

// resolveURL makes item-page links like "item?id=123" absolute.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// parseCount extracts the leading integer from strings such as
// "123 points" or "45 comments". Returns 0 when absent.
func parseCount(s string) int {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
