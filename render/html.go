package render

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/errors"
)

// HTML writes the documentation tree as an HTML fragment: the markdown dump
// converted with goldmark. Display filters apply as for Markdown.
func HTML(w io.Writer, tree *witdoc.Tree, opts Options) error {
	var md bytes.Buffer
	if err := Markdown(&md, tree, opts); err != nil {
		return err
	}
	if err := goldmark.New().Convert(md.Bytes(), w); err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindEncoding, err, "convert markdown to HTML")
	}
	return nil
}
