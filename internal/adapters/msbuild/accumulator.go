package msbuild

import (
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/zerr"
)

// accumulator collects allow-listed settings while the import graph is
// walked. Group elements are created lazily so an empty result stays empty
// instead of serializing as a bare tag.
type accumulator struct {
	items   *etree.Element
	props   *etree.Element
	visited map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{visited: make(map[string]struct{})}
}

// seen marks the canonical path as visited and reports whether it had been
// visited before.
func (a *accumulator) seen(canonical string) bool {
	if _, ok := a.visited[canonical]; ok {
		return true
	}
	a.visited[canonical] = struct{}{}
	return false
}

// add appends a copied setting to the group of the given kind, preserving
// encounter order.
func (a *accumulator) add(kind string, setting *etree.Element) {
	switch kind {
	case itemGroupTag:
		if a.items == nil {
			a.items = etree.NewElement(itemGroupTag)
		}
		a.items.AddChild(setting)
	case propertyGroupTag:
		if a.props == nil {
			a.props = etree.NewElement(propertyGroupTag)
		}
		a.props.AddChild(setting)
	}
}

// render serializes the populated groups, item block first, joined by a
// blank line. Returns the empty string when nothing was copied.
func (a *accumulator) render() (string, error) {
	var blocks []string
	for _, group := range []*etree.Element{a.items, a.props} {
		if group == nil {
			continue
		}
		doc := etree.NewDocument()
		doc.SetRoot(group)
		doc.Indent(2)
		text, err := doc.WriteToString()
		if err != nil {
			return "", zerr.Wrap(err, "failed to serialize copied settings")
		}
		blocks = append(blocks, strings.TrimRight(text, "\n"))
	}
	return strings.Join(blocks, "\n\n"), nil
}
