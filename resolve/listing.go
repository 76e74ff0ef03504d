package resolve

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/sonnes/gallery/core"
	"golang.org/x/net/html"
)

// ListingSource scrapes an HTML directory index (as produced by servers with
// directory browsing enabled) for links to image files.
type ListingSource struct {
	URL string
	// Dir prefixes the Src of every entry, e.g. "images".
	Dir    string
	Client *http.Client
}

// Name identifies the source in logs.
func (s *ListingSource) Name() string { return "listing" }

// Images fetches the index page and returns an entry for every linked image
// file that lives directly in the listed directory.
func (s *ListingSource) Images(ctx context.Context) ([]core.ImageEntry, error) {
	base, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("parse listing url: %w", err)
	}
	body, err := fetch(ctx, s.Client, s.URL)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	var images []core.ImageEntry
	for _, href := range findHrefs(doc) {
		name, ok := listingFileName(base, href)
		if !ok || !core.IsImageFile(name) {
			continue
		}
		images = append(images, core.NewImageEntry(s.Dir, name))
	}
	return images, nil
}

// findHrefs collects the href attribute of every anchor in document order.
func findHrefs(doc *html.Node) []string {
	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key == "href" {
					hrefs = append(hrefs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs
}

// listingFileName resolves href against the listing URL and returns the
// unescaped file name when the target sits directly inside the listed
// directory. Links to other hosts, sort links (query only), fragments and
// links into parent, sibling or nested directories are rejected.
func listingFileName(listing *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	if ref.Path == "" && ref.Opaque == "" {
		return "", false
	}
	u := listing.ResolveReference(ref)
	if u.Scheme != listing.Scheme || u.Host != listing.Host {
		return "", false
	}
	if strings.HasSuffix(u.Path, "/") {
		return "", false
	}
	if listingDir(u.Path) != listingDir(listing.Path) {
		return "", false
	}
	return path.Base(u.Path), true
}

// listingDir returns the directory of p with a trailing slash. A path that
// already ends in a slash is its own directory.
func listingDir(p string) string {
	if p == "" {
		return "/"
	}
	if strings.HasSuffix(p, "/") {
		return p
	}
	return strings.TrimSuffix(path.Dir(p), "/") + "/"
}
