// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine renders AI-generated template markup. Elements marked with
// data-editable="key" are filled from a page's text fields and the element
// marked data-creator-name receives the author line. Markup is parsed once
// per template version and kept in memory.
package engine

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/google/uuid"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

const (
	// EditableAttr marks an element whose text is a text field.
	EditableAttr = "data-editable"
	// CreatorAttr marks the element that shows who prepared the page.
	CreatorAttr = "data-creator-name"

	creatorPrefix = "Hazırlayan: "

	slotOpen  = "\uE000"
	slotClose = "\uE001"
)

// slot is one fillable region of compiled markup.
type slot struct {
	key     string
	def     string
	creator bool
}

// compiled is markup split into static HTML and slots: segs[i] is followed
// by slots[i] for every i < len(slots).
type compiled struct {
	segs  []string
	slots []slot
}

// Engine renders stored AI templates.
type Engine struct {
	cache *compiledCache
}

// New creates an Engine with an empty cache.
func New() *Engine {
	return &Engine{cache: newCompiledCache()}
}

// Render fills t's markup with values. Missing or empty values keep the
// text the markup was generated with.
func (e *Engine) Render(t *models.AITemplate, values fields.Map, creator string) (template.HTML, error) {
	cm := e.cache.get(t.ID, t.Version)
	if cm == nil {
		var err error
		if cm, err = compile(t.HTMLContent); err != nil {
			return "", fmt.Errorf("compile ai template %s: %w", t.ID, err)
		}
		e.cache.put(t.ID, t.Version, cm)
	}
	return cm.execute(values, creator), nil
}

// Invalidate drops the cached markup of a template.
func (e *Engine) Invalidate(id uuid.UUID) {
	e.cache.invalidate(id)
}

// Fill renders markup without caching. Used for previews of unsaved
// generations.
func Fill(markup string, values fields.Map, creator string) (template.HTML, error) {
	cm, err := compile(markup)
	if err != nil {
		return "", err
	}
	return cm.execute(values, creator), nil
}

func (cm *compiled) execute(values fields.Map, creator string) template.HTML {
	var b strings.Builder
	for i, seg := range cm.segs {
		b.WriteString(seg)
		if i >= len(cm.slots) {
			continue
		}
		s := cm.slots[i]
		v := s.def
		switch {
		case s.creator && creator != "":
			v = creatorPrefix + creator
		case !s.creator && values.Get(s.key) != "":
			v = values.Get(s.key)
		}
		b.WriteString(html.EscapeString(v))
	}
	return template.HTML(b.String())
}

// parse parses markup as a fragment of a <div>.
func parse(markup string) ([]*xhtml.Node, error) {
	ctx := &xhtml.Node{Type: xhtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return nodes, nil
}

func compile(markup string) (*compiled, error) {
	markup = strings.NewReplacer(slotOpen, "", slotClose, "").Replace(markup)
	nodes, err := parse(markup)
	if err != nil {
		return nil, err
	}

	var slots []slot
	for _, n := range nodes {
		walk(n, func(el *xhtml.Node) {
			key, editable := attr(el, EditableAttr)
			_, creator := attr(el, CreatorAttr)
			if (!editable || key == "") && !creator {
				return
			}
			if !textOnly(el) {
				return
			}
			slots = append(slots, slot{key: key, def: textContent(el), creator: creator})
			for c := el.FirstChild; c != nil; {
				next := c.NextSibling
				el.RemoveChild(c)
				c = next
			}
			el.AppendChild(&xhtml.Node{
				Type: xhtml.TextNode,
				Data: slotOpen + strconv.Itoa(len(slots)-1) + slotClose,
			})
		})
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := xhtml.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("render markup: %w", err)
		}
	}

	cm := &compiled{slots: slots}
	rest := buf.String()
	for range slots {
		open := strings.Index(rest, slotOpen)
		end := strings.Index(rest, slotClose)
		cm.segs = append(cm.segs, rest[:open])
		rest = rest[end+len(slotClose):]
	}
	cm.segs = append(cm.segs, rest)
	return cm, nil
}

// Editable lists the data-editable keys of markup in document order, with
// the text each region was generated with. Repeated keys keep the first text.
func Editable(markup string) (fields.Map, []string, error) {
	nodes, err := parse(markup)
	if err != nil {
		return nil, nil, err
	}

	values := fields.Map{}
	var order []string
	for _, n := range nodes {
		walk(n, func(el *xhtml.Node) {
			key, ok := attr(el, EditableAttr)
			if !ok || key == "" {
				return
			}
			if _, seen := values[key]; seen {
				return
			}
			values[key] = textContent(el)
			order = append(order, key)
		})
	}
	return values, order, nil
}

func walk(n *xhtml.Node, visit func(*xhtml.Node)) {
	if n.Type == xhtml.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *xhtml.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// textOnly reports whether n has no element children. Regions wrapping
// other elements are left untouched.
func textOnly(n *xhtml.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode {
			return false
		}
	}
	return true
}

func textContent(n *xhtml.Node) string {
	var b strings.Builder
	var rec func(*xhtml.Node)
	rec = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
