package section

import (
	"encoding/json"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/errors"
	"github.com/wippyai/witdoc/internal/binary"
)

const (
	// Name is the custom section this tool owns inside a component binary.
	// Shared by the encoder and every decoder; nothing else about the
	// component is interpreted.
	Name = "package-docs"

	// docsVersion is the payload version byte. Skipped on decode.
	docsVersion byte = 0x01
)

// headerSize is the fixed component/module preamble: 4 magic bytes plus a
// 4-byte version/layer field.
const headerSize = 8

// EncodeDocs serializes a documentation tree into the section payload:
// one version byte followed by UTF-8 JSON.
func EncodeDocs(tree *witdoc.Tree) ([]byte, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, errors.Encoding(err)
	}
	payload := make([]byte, 0, len(data)+1)
	payload = append(payload, docsVersion)
	payload = append(payload, data...)
	return payload, nil
}

// DecodeDocs parses a section payload back into a documentation tree. The
// leading version byte is discarded. A payload of length <= 1 carries no
// documentation and yields a nil tree with no error; callers distinguish
// "section absent" from "section present but empty" by section presence,
// not by decode failure.
func DecodeDocs(payload []byte) (*witdoc.Tree, error) {
	if len(payload) <= 1 {
		return nil, nil
	}
	var tree witdoc.Tree
	if err := json.Unmarshal(payload[1:], &tree); err != nil {
		return nil, errors.ParseFailed("package-docs payload", err)
	}
	return &tree, nil
}

// Find scans the custom sections of a component binary in stored order and
// returns the payload of the first one named name. Later duplicates are
// tolerated and ignored, never merged. ok is false when no such section
// exists; err is set only when the binary's outer structure is invalid.
func Find(module []byte, name string) (data []byte, ok bool, err error) {
	if len(module) < headerSize {
		return nil, false, errors.InvalidData(errors.PhaseParse, "truncated module header")
	}
	if module[0] != 0x00 || module[1] != 0x61 || module[2] != 0x73 || module[3] != 0x6D {
		return nil, false, errors.InvalidData(errors.PhaseParse, "invalid wasm magic number")
	}

	r := binary.NewReader(module[headerSize:])
	for r.Len() > 0 {
		sectionID, err := r.ReadByte()
		if err != nil {
			return nil, false, errors.ParseFailed("section header", err)
		}
		size, err := r.ReadU32()
		if err != nil {
			return nil, false, errors.ParseFailed("section size", err)
		}
		body, err := r.ReadBytes(int(size))
		if err != nil {
			return nil, false, errors.ParseFailed("section data", err)
		}

		if sectionID != 0 {
			continue
		}
		sr := binary.NewReader(body)
		sectionName, err := sr.ReadName()
		if err != nil {
			return nil, false, errors.ParseFailed("custom section name", err)
		}
		if sectionName == name {
			return sr.ReadRemaining(), true, nil
		}
	}
	return nil, false, nil
}

// Extract is the viewer-side convenience: locate the managed section in a
// component binary and decode its tree. ok mirrors Find's section presence.
func Extract(module []byte) (tree *witdoc.Tree, ok bool, err error) {
	payload, ok, err := Find(module, Name)
	if err != nil || !ok {
		return nil, ok, err
	}
	tree, err = DecodeDocs(payload)
	return tree, true, err
}
