package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"context"

	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"

	"golang.org/x/net/html"
)

// PageLookup resolves a bookmark URL to a page title and thumbnail URL. It is
// allowed to fail for any reason; callers must degrade to the hostname and a
// favicon URL instead of surfacing the failure.
type PageLookup interface {
	Lookup(ctx context.Context, pageURL string) (repositories.PageInfo, error)
}

type HTTPPageLookup struct {
	client *http.Client
}

func NewHTTPPageLookup(timeout time.Duration) *HTTPPageLookup {
	return &HTTPPageLookup{client: &http.Client{Timeout: timeout}}
}

func (l *HTTPPageLookup) Lookup(ctx context.Context, pageURL string) (repositories.PageInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return repositories.PageInfo{}, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := l.client.Do(req)
	if err != nil {
		return repositories.PageInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return repositories.PageInfo{}, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return repositories.PageInfo{}, err
	}

	info := extractPageInfo(doc)
	if info.Title == "" && info.ImageURL == "" {
		return repositories.PageInfo{}, errors.New("page has no title or preview image")
	}
	return info, nil
}

func extractPageInfo(doc *html.Node) repositories.PageInfo {
	var info repositories.PageInfo

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if info.Title == "" && n.FirstChild != nil {
					info.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var property, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "property", "name":
						property = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if info.ImageURL == "" && (property == "og:image" || property == "twitter:image") {
					info.ImageURL = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return info
}
