package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// parseHTML parses a page body.
func parseHTML(body []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return doc, nil
}

// attr returns the value of key on n, or "".
func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// classes returns the class list of n.
func classes(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// findAll walks the tree under n depth first and collects the element nodes matching match.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var crawler func(*html.Node)
	crawler = func(c *html.Node) {
		if c.Type == html.ElementNode && match(c) {
			found = append(found, c)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			crawler(child)
		}
	}
	if n != nil {
		crawler(n)
	}
	return found
}

// findFirst is findAll that stops at the first match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}

func byTagClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return (tag == "" || n.Data == tag) && hasClass(n, class)
	}
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return attr(n, "id") == id
	}
}

func byAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return attr(n, key) == val
	}
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// text returns the concatenated text under n with whitespace collapsed.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
