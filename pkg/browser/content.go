package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PageContent is cleaned page content with metadata.
type PageContent struct {
	Title       string
	Description string
	Text        string
	Truncated   bool
}

// Markdown renders the cleaned content as a markdown document.
func (c *PageContent) Markdown() string {
	var b strings.Builder
	if c.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", c.Title)
	}
	if c.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", c.Description)
	}
	b.WriteString(c.Text)
	if c.Truncated {
		b.WriteString("\n\n[Content truncated]")
	}
	return b.String()
}

// cleanHTML parses raw HTML and extracts readable text, dropping scripts,
// styles, and other noise while keeping heading and link structure.
func cleanHTML(rawHTML string, maxLength int) (*PageContent, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	result := &PageContent{
		Title:       findTitle(doc),
		Description: findMetaDescription(doc),
	}

	var builder strings.Builder
	var currentLength int
	result.Truncated = renderNode(doc, &builder, &currentLength, maxLength)
	result.Text = strings.TrimSpace(builder.String())

	return result, nil
}

// renderNode walks the HTML tree appending readable text. Returns true
// once maxLength is reached.
func renderNode(n *html.Node, builder *strings.Builder, currentLength *int, maxLength int) bool {
	if *currentLength >= maxLength {
		return true
	}

	switch n.Type {
	case html.CommentNode:
		return false

	case html.TextNode:
		return renderText(n.Data, builder, currentLength, maxLength)

	case html.ElementNode:
		tagName := strings.ToLower(n.Data)
		if isSkippedElement(tagName) {
			return false
		}

		if prefix := headingPrefix(tagName); prefix != "" {
			builder.WriteString("\n\n")
			builder.WriteString(prefix)
		} else if isBlockElement(tagName) {
			builder.WriteString("\n\n")
		}

		if tagName == "a" {
			return renderLink(n, builder, currentLength, maxLength)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if renderNode(c, builder, currentLength, maxLength) {
			return true
		}
	}
	return false
}

// renderText appends trimmed text with truncation accounting.
func renderText(data string, builder *strings.Builder, currentLength *int, maxLength int) bool {
	text := strings.TrimSpace(data)
	if text == "" {
		return false
	}

	if *currentLength+len(text) > maxLength {
		remaining := maxLength - *currentLength
		builder.WriteString(text[:remaining])
		*currentLength = maxLength
		return true
	}

	builder.WriteString(text)
	builder.WriteString(" ")
	*currentLength += len(text) + 1
	return false
}

// renderLink renders an anchor as markdown, keeping the href visible so
// extracted content stays navigable.
func renderLink(n *html.Node, builder *strings.Builder, currentLength *int, maxLength int) bool {
	var href string
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == "href" {
			href = attr.Val
			break
		}
	}

	var textBuilder strings.Builder
	var textLength int
	truncated := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if renderNode(c, &textBuilder, &textLength, maxLength-*currentLength) {
			truncated = true
			break
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" && href == "" {
		return truncated
	}

	if href != "" {
		fmt.Fprintf(builder, "[%s](%s) ", text, href)
	} else {
		builder.WriteString(text)
		builder.WriteString(" ")
	}
	*currentLength += len(text) + 1
	return truncated || *currentLength >= maxLength
}

// headingPrefix returns the markdown prefix for heading tags.
func headingPrefix(tagName string) string {
	switch tagName {
	case "h1":
		return "# "
	case "h2":
		return "## "
	case "h3":
		return "### "
	case "h4", "h5", "h6":
		return "#### "
	}
	return ""
}

// isSkippedElement returns true for elements that carry no readable content.
func isSkippedElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "iframe", "embed", "object", "svg", "head":
		return true
	}
	return false
}

// isBlockElement returns true for block-level elements (paragraph breaks).
func isBlockElement(tagName string) bool {
	switch tagName {
	case "div", "p", "section", "article", "header", "footer", "nav",
		"main", "aside", "ul", "ol", "li", "table", "tr", "form",
		"fieldset", "blockquote", "pre", "br":
		return true
	}
	return false
}

// findTitle extracts the page title from the document.
func findTitle(doc *html.Node) string {
	var title string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
			if title != "" {
				return
			}
		}
	}
	traverse(doc)
	return title
}

// findMetaDescription extracts the meta description from the document.
func findMetaDescription(doc *html.Node) string {
	var description string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var isDescription bool
			var content string
			for _, attr := range n.Attr {
				if attr.Key == "name" && attr.Val == "description" {
					isDescription = true
				}
				if attr.Key == "content" {
					content = attr.Val
				}
			}
			if isDescription && content != "" {
				description = strings.TrimSpace(content)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
			if description != "" {
				return
			}
		}
	}
	traverse(doc)
	return description
}
