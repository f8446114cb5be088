package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/aidharvest"
	"golang.org/x/net/html"
)

// Markup conventions of the aggregation service's finding aid pages.
// Nesting is encoded only by heading class markers (c01, c02, …); the
// digitisation marker and thumbnail pid sit on the heading's structural
// parent.
const (
	digitisedClass    = "digitised"
	thumbnailSelector = "img.thumbnail"
	pidAttr           = "data-pid"
)

var levelClassRe = regexp.MustCompile(`^c(\d{2,})$`)

// headingLevel returns the nesting level encoded in a class attribute
// (c01 → 1, c12 → 12, …), or 0 if no level marker is present.
func headingLevel(classAttr string) int {
	for _, token := range strings.Fields(classAttr) {
		m := levelClassRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		level, err := strconv.Atoi(m[1])
		if err != nil || level == 0 {
			continue
		}
		return level
	}
	return 0
}

// heading pairs a level-marked element with its built node and the
// structural parent that bounds its subtree.
type heading struct {
	level  int
	el     *html.Node
	parent *html.Node
	node   *aidharvest.FindingAidNode
}

// extractItems collects the level-marked headings in document order and
// rebuilds the series tree in a single stack pass: each heading attaches
// to the nearest open heading exactly one level shallower whose
// structural parent contains it. This is equivalent to recursively
// searching each parent's subtree for level+1 headings, without the
// repeated rescanning.
func extractItems(doc *goquery.Document) ([]*aidharvest.FindingAidNode, error) {
	var headings []heading
	var buildErr error

	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		level := headingLevel(sel.AttrOr("class", ""))
		if level == 0 {
			return true
		}
		node, err := buildNode(sel)
		if err != nil {
			buildErr = err
			return false
		}
		headings = append(headings, heading{
			level:  level,
			el:     sel.Nodes[0],
			parent: sel.Nodes[0].Parent,
			node:   node,
		})
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}

	items := []*aidharvest.FindingAidNode{}
	var stack []heading
	for _, h := range headings {
		for len(stack) > 0 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}
		switch {
		case h.level == 1:
			items = append(items, h.node)
			stack = append(stack, h)
		case len(stack) > 0 && stack[len(stack)-1].level == h.level-1 && containsNode(stack[len(stack)-1].parent, h.el):
			parent := stack[len(stack)-1]
			parent.node.Children = append(parent.node.Children, h.node)
			stack = append(stack, h)
		default:
			// The heading skips a level or sits outside its would-be
			// parent's subtree. A direct-children search would never
			// visit it, so it is not attached anywhere.
		}
	}

	return items, nil
}

// buildNode derives a node's fields from its heading element and the
// heading's structural parent.
func buildNode(sel *goquery.Selection) (*aidharvest.FindingAidNode, error) {
	title := strings.TrimSpace(sel.Text())

	id, ok := sel.Attr("id")
	if !ok || id == "" {
		return nil, aidharvest.Errorf(aidharvest.EMISSINGID, "heading %q has no id attribute", title)
	}

	parent := sel.Parent()

	node := &aidharvest.FindingAidNode{
		ID:          id,
		Title:       title,
		Description: description(parent),
		Digitised:   parent.HasClass(digitisedClass),
		Children:    []*aidharvest.FindingAidNode{},
	}

	if node.Digitised {
		// A digitised node without a thumbnail pid is not an error; the
		// field just stays unset.
		if pid, ok := parent.Find(thumbnailSelector).First().Attr(pidAttr); ok {
			node.FirstPage = pid
		}
	}

	return node, nil
}

// description collects the free text associated with a heading: trimmed
// non-empty text fragments and <p> children that are direct children of
// the heading's structural parent. Text inside nested headings lives
// under a different structural parent and is excluded by construction.
func description(parent *goquery.Selection) string {
	var fragments []string
	parent.Contents().Each(func(_ int, c *goquery.Selection) {
		n := c.Nodes[0]
		switch {
		case n.Type == html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				fragments = append(fragments, t)
			}
		case n.Type == html.ElementNode && n.Data == "p" && headingLevel(c.AttrOr("class", "")) == 0:
			if t := strings.TrimSpace(c.Text()); t != "" {
				fragments = append(fragments, t)
			}
		}
	})
	return strings.Join(fragments, "\n")
}

// containsNode reports whether n is equal to ancestor or a descendant of it.
func containsNode(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
