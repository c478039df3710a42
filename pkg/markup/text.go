// Package markup edits the text nodes of XML-like documents such as SVG.
package markup

import "bytes"

// anchor wraps text in the delimiters that surround a text node, so that
// attribute values holding the same string are never matched.
func anchor(text string) []byte {
	return []byte(">" + text + "<")
}

// ReplaceText replaces every text node equal to old with new. new is
// inserted verbatim and must already be escaped for the document. When old
// is empty or absent, doc is returned unchanged.
func ReplaceText(doc []byte, old, new string) []byte {
	if old == "" {
		return doc
	}
	from := anchor(old)
	if !bytes.Contains(doc, from) {
		return doc
	}
	return bytes.ReplaceAll(doc, from, anchor(new))
}

// ContainsText reports whether doc has a text node equal to text.
func ContainsText(doc []byte, text string) bool {
	return bytes.Contains(doc, anchor(text))
}
