// Package webtest drives the server-rendered pages the way a browser
// would: it fetches them over a real HTTP server, locates elements by
// data-testid, and submits their forms. Page objects wrap the raw
// document queries so specs read as user actions.
package webtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/config"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/testutil"
)

// Harness runs the full router under httptest and fetches pages from it.
type Harness struct {
	t      *testing.T
	Server *httptest.Server
	client *http.Client
}

// NewHarness wires a fresh state over an in-memory store and starts the
// server. The client follows redirects, so page fetches land on the final
// document.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	db := testutil.SetupTestDB(t)
	state := testutil.NewTestStateServiceWithStore(t, testutil.NewTestStore(t))
	dashboard := service.NewDashboardService(state)
	guard := testutil.NewTestClearGuard(t, time.Minute)
	systemService := service.NewSystemService(db)

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"*"}

	router, err := api.NewRouter(systemService, state, dashboard, guard, cfg)
	if err != nil {
		t.Fatalf("Failed to build router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &Harness{
		t:      t,
		Server: server,
		client: server.Client(),
	}
}

// Document is a fetched page: the parsed HTML plus the URL it ended up at
// after redirects.
type Document struct {
	t    *testing.T
	URL  *url.URL
	root *html.Node
}

// Get fetches a path and parses the final document.
func (h *Harness) Get(path string) *Document {
	h.t.Helper()

	resp, err := h.client.Get(h.Server.URL + path)
	if err != nil {
		h.t.Fatalf("Failed to fetch %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.t.Fatalf("Expected 200 for %s, got %d", path, resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		h.t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return &Document{t: h.t, URL: resp.Request.URL, root: root}
}

// PostForm submits form values to a path and parses the document the
// redirect lands on.
func (h *Harness) PostForm(path string, values url.Values) *Document {
	h.t.Helper()

	resp, err := h.client.PostForm(h.Server.URL+path, values)
	if err != nil {
		h.t.Fatalf("Failed to post %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		h.t.Fatalf("Expected 200 after posting %s, got %d: %s", path, resp.StatusCode, body)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		h.t.Fatalf("Failed to parse response of %s: %v", path, err)
	}
	return &Document{t: h.t, URL: resp.Request.URL, root: root}
}

// FinalPath fetches a path without asserting the document and returns
// where the server sent the client, for redirect specs.
func (h *Harness) FinalPath(path string) string {
	h.t.Helper()

	resp, err := h.client.Get(h.Server.URL + path)
	if err != nil {
		h.t.Fatalf("Failed to fetch %s: %v", path, err)
	}
	defer resp.Body.Close()
	//nolint:errcheck // Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	return resp.Request.URL.Path
}

// Element is a located node.
type Element struct {
	t    *testing.T
	node *html.Node
}

// ByTestID returns the first element carrying the data-testid, failing
// the test when absent.
func (d *Document) ByTestID(id string) *Element {
	d.t.Helper()

	el := findTestID(d.root, id)
	if el == nil {
		d.t.Fatalf("Element with data-testid=%q not found on %s", id, d.URL.Path)
	}
	return &Element{t: d.t, node: el}
}

// HasTestID reports whether any element carries the data-testid.
func (d *Document) HasTestID(id string) bool {
	return findTestID(d.root, id) != nil
}

// AllByTestID returns every element carrying the data-testid.
func (d *Document) AllByTestID(id string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if attr(n, "data-testid") == id {
			out = append(out, &Element{t: d.t, node: n})
		}
	})
	return out
}

// ByTestID scopes the search to the element's subtree.
func (e *Element) ByTestID(id string) *Element {
	e.t.Helper()

	el := findTestID(e.node, id)
	if el == nil {
		e.t.Fatalf("Element with data-testid=%q not found in subtree", id)
	}
	return &Element{t: e.t, node: el}
}

// AllByTestID returns every matching element inside this one.
func (e *Element) AllByTestID(id string) []*Element {
	var out []*Element
	walk(e.node, func(n *html.Node) {
		if n != e.node && attr(n, "data-testid") == id {
			out = append(out, &Element{t: e.t, node: n})
		}
	})
	return out
}

// Attr returns an attribute value, empty when absent.
func (e *Element) Attr(name string) string {
	return attr(e.node, name)
}

// Text returns the element's concatenated text content, whitespace
// collapsed.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// FormValue returns the value of a named input inside the element's
// nearest form, for reading hidden fields off rendered rows.
func (e *Element) FormValue(name string) string {
	var value string
	walk(e.node, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" && attr(n, "name") == name {
			value = attr(n, "value")
		}
	})
	return value
}

func findTestID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && attr(n, "data-testid") == id {
			found = n
		}
	})
	return found
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, name string) string {
	if n.Type != html.ElementNode {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
