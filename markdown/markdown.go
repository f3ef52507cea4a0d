// Package markdown seeds a block sequence from markdown source, so a
// document body can be authored as plain markdown and then edited
// block-by-block. Only the block-level constructs the document model
// knows about are mapped: headings, paragraphs, lists, and blockquotes.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/suratkit/suratkit/model"
)

// Blocks parses source and returns the corresponding block sequence.
func Blocks(source []byte) (*model.Sequence, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	blocks, err := walk(root, source)
	if err != nil {
		return nil, err
	}
	return model.NewSequence(blocks...), nil
}

func walk(root ast.Node, source []byte) ([]model.Block, error) {
	var blocks []model.Block

	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			blocks = append(blocks, model.Block{
				Type:    model.Heading,
				Content: nodeText(n, source),
				Level:   clampLevel(n.Level),
			})

		case *ast.Paragraph:
			blocks = append(blocks, model.Block{
				Type:    model.Paragraph,
				Content: nodeText(n, source),
			})

		case *ast.List:
			items := listItems(n, source)
			if len(items) == 0 {
				items = []string{""}
			}
			blocks = append(blocks, model.Block{
				Type:  model.List,
				Items: items,
			})

		case *ast.Blockquote:
			blocks = append(blocks, model.Block{
				Type:    model.Quote,
				Content: quoteText(n, source),
			})

		case *ast.ThematicBreak, *ast.HTMLBlock:
			// No counterpart in the block model.

		default:
			if child.Type() == ast.TypeBlock {
				// Code blocks and anything else block-level degrade to a
				// plain paragraph rather than being dropped.
				if txt := nodeText(child, source); txt != "" {
					blocks = append(blocks, model.Block{Type: model.Paragraph, Content: txt})
				}
			} else {
				return nil, fmt.Errorf("unexpected inline node %s at document level", child.Kind())
			}
		}
	}
	return blocks, nil
}

// listItems flattens a list's items to their text content.
func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		items = append(items, nodeText(item, source))
	}
	return items
}

// quoteText joins a blockquote's paragraphs with blank lines.
func quoteText(quote *ast.Blockquote, source []byte) string {
	var parts []string
	for child := quote.FirstChild(); child != nil; child = child.NextSibling() {
		if txt := nodeText(child, source); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, "\n\n")
}

// nodeText extracts the plain text of a node's inline content, joining
// soft-wrapped lines with spaces.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				sb.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					sb.WriteByte(' ')
				}
			case *ast.String:
				sb.Write(t.Value)
			default:
				visit(c)
			}
		}
	}
	if node.Type() == ast.TypeBlock && node.ChildCount() == 0 {
		// Leaf blocks such as code blocks keep their lines directly.
		var lines []string
		segs := node.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
		}
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}
	visit(node)
	return strings.TrimSpace(sb.String())
}

// clampLevel maps markdown's six heading levels onto the model's three.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
