package rewrite

import (
	"github.com/wippyai/witdoc/errors"
	"github.com/wippyai/witdoc/internal/binary"

	"go.uber.org/zap"
)

// headerSize is the component/module preamble: magic plus version/layer.
const headerSize = 8

// Rewrite produces a new component binary that reproduces every section of
// original bit-for-bit and carries exactly one custom section named name
// with the given payload, appended last.
//
// The input is parsed structurally only: section id, LEB128 size, opaque
// body. Untouched sections are copied as raw slices of the input, so even
// non-canonical size encodings survive. Custom sections already carrying
// name are dropped before the append, which makes repeated injection
// replace the payload instead of accumulating duplicates.
//
// A structurally invalid input is fatal; there is no best-effort mode.
func Rewrite(original []byte, name string, payload []byte) ([]byte, error) {
	if len(original) < headerSize {
		return nil, errors.InvalidData(errors.PhaseRewrite, "truncated module header")
	}
	if original[0] != 0x00 || original[1] != 0x61 || original[2] != 0x73 || original[3] != 0x6D {
		return nil, errors.InvalidData(errors.PhaseRewrite, "invalid wasm magic number")
	}

	w := binary.NewWriter()
	w.WriteBytes(original[:headerSize])

	r := binary.NewReader(original[headerSize:])
	replaced := 0
	for r.Len() > 0 {
		start := r.Position()

		sectionID, err := r.ReadByte()
		if err != nil {
			return nil, errors.ParseFailed("section header", r.WrapError("section header", err))
		}
		size, err := r.ReadU32()
		if err != nil {
			return nil, errors.ParseFailed("section size", r.WrapError("section size", err))
		}
		body, err := r.ReadBytes(int(size))
		if err != nil {
			return nil, errors.ParseFailed("section data", r.WrapError("section data", err))
		}

		if sectionID == 0 {
			sr := binary.NewReader(body)
			sectionName, err := sr.ReadName()
			if err != nil {
				return nil, errors.ParseFailed("custom section name", err)
			}
			if sectionName == name {
				replaced++
				continue
			}
		}

		// Raw slice of the input, original size encoding included.
		w.WriteBytes(original[headerSize+start : headerSize+r.Position()])
	}

	appendCustom(w, name, payload)

	Logger().Debug("rewrote component",
		zap.String("section", name),
		zap.Int("replaced", replaced),
		zap.Int("in_bytes", len(original)),
		zap.Int("out_bytes", w.Len()),
	)
	return w.Bytes(), nil
}

func appendCustom(w *binary.Writer, name string, payload []byte) {
	body := binary.NewWriter()
	body.WriteName(name)
	body.WriteBytes(payload)

	w.Byte(0)
	w.WriteU32(uint32(body.Len()))
	w.WriteBytes(body.Bytes())
}
