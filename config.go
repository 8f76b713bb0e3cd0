package main

import (
	"fmt"

	"hncast/hackernews"
)

// DefaultSource is the listing source used when none is given.
const DefaultSource = "frontpage"

// NewLister resolves a listing source name to a Lister.
func NewLister(source string) (hackernews.Lister, error) {
	switch source {
	case "frontpage":
		return hackernews.NewFrontPage(""), nil
	case "rss":
		return hackernews.NewRSS(""), nil
	default:
		return nil, fmt.Errorf("unknown listing source %q (want frontpage or rss)", source)
	}
}
