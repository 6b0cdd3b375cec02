package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/errors"
)

// JSON writes the documentation tree as indented JSON, an unmodified
// pass-through of the stored structure. A tree with no documentation
// (including nil) renders as an explicit empty worlds mapping, never null.
func JSON(w io.Writer, tree *witdoc.Tree) error {
	if tree.Empty() {
		tree = &witdoc.Tree{Worlds: map[string]*witdoc.WorldDocs{}}
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindEncoding, err, "marshal documentation tree")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
