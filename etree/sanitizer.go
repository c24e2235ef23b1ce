// Package etree provides an XML-based sanitizer for inline SVG logos.
// Inline SVG candidates are trusted by construction and skip reachability
// validation, so active content must be stripped before the markup is
// encoded into a data reference.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/brandsight"
)

// Elements that can carry executable or embedded foreign content.
var disallowedElements = map[string]struct{}{
	"script":        {},
	"foreignobject": {},
	"iframe":        {},
	"embed":         {},
	"object":        {},
}

// Ensure Sanitizer implements brandsight.Sanitizer at compile time.
var _ brandsight.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips active content from SVG markup.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize parses the SVG markup, removes script-capable elements, event
// handler attributes, and javascript: references, and re-serializes the
// result. Markup that is not a well-formed SVG element is rejected.
func (s *Sanitizer) Sanitize(svg string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svg); err != nil {
		return "", brandsight.Errorf(brandsight.EINVALID, "parsing svg: %v", err)
	}

	root := doc.Root()
	if root == nil || !strings.EqualFold(root.Tag, "svg") {
		return "", brandsight.Errorf(brandsight.EINVALID, "markup is not an svg element")
	}

	scrub(root)

	out, err := doc.WriteToString()
	if err != nil {
		return "", brandsight.Errorf(brandsight.EINTERNAL, "serializing svg: %v", err)
	}
	return strings.TrimSpace(out), nil
}

func scrub(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if _, bad := disallowedElements[strings.ToLower(child.Tag)]; bad {
			el.RemoveChild(child)
			continue
		}
		scrub(child)
	}

	var drop []string
	for _, attr := range el.Attr {
		key := strings.ToLower(attr.Key)
		full := attr.Key
		if attr.Space != "" {
			full = attr.Space + ":" + attr.Key
		}
		if strings.HasPrefix(key, "on") {
			drop = append(drop, full)
			continue
		}
		value := strings.ToLower(strings.TrimSpace(attr.Value))
		if strings.HasPrefix(value, "javascript:") {
			drop = append(drop, full)
		}
	}
	for _, key := range drop {
		el.RemoveAttr(key)
	}
}
