// Package htmlutil holds the HTML helpers shared by the scrapers:
// text extraction, anchor scraping, comment unwrapping for tables the
// site ships inside HTML comments, and player id link parsing.
package htmlutil

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("brstats.lib.htmlutil")

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name string
	Href string
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	ctx, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}

		link, err := url.Parse(href)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "got error while parsing url")
			continue
		}

		name := GetText(n)
		name = removeNonPrintable(name)
		name = strings.Trim(name, " \t\n")
		name = innerWhitespace.ReplaceAllString(name, " ")

		linkStr := link.String()
		anchors = append(anchors, Anchor{
			Name: name,
			Href: linkStr,
		})
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("name", name),
			attribute.String("url", linkStr),
		))
	}

	return anchors
}

// UnwrapComments re-parses the contents of every HTML comment node
// under the selection and returns the wrapped fragments as documents.
// Stats tables below the fold ship comment-wrapped to defer rendering,
// so a plain selector pass never sees them.
func UnwrapComments(sel *goquery.Selection) []*goquery.Document {
	var docs []*goquery.Document
	for _, n := range sel.Nodes {
		for _, c := range commentNodes(n) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.Data))
			if err != nil {
				continue
			}
			docs = append(docs, doc)
		}
	}
	return docs
}

func commentNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	if n.Type == html.CommentNode {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, commentNodes(c)...)
	}
	return out
}

var playerHref = regexp.MustCompile(`^/players/[a-z0-9]/([a-z0-9'.]+?)\.shtml$`)

// PlayerID extracts the player id from a roster link href, or "" when
// the href does not point at a player page.
func PlayerID(href string) string {
	m := playerHref.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}

// PlayerIDs collects, in document order, the player id of every player
// page link under the selection. Duplicates are kept.
func PlayerIDs(sel *goquery.Selection) []string {
	var ids []string
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if id := PlayerID(href); id != "" {
			ids = append(ids, id)
		}
	})
	return ids
}
