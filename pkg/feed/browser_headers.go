package feed

import (
	"math/rand"

	"github.com/go-resty/resty/v2"
)

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,zh-CN;q=0.8",
	"zh-CN,zh;q=0.9,en;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching
// feeds are often fetched by browsers too, so we want to look legitimate
func addBrowserHeaders(req *resty.Request) {
	// accept header for feeds - include both RSS and HTML
	req.SetHeader("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	req.SetHeader("Cache-Control", "no-cache")

	// randomized language
	req.SetHeader("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
}
