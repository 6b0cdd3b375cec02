package section_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/wippyai/witdoc"
	"github.com/wippyai/witdoc/internal/binary"
	"github.com/wippyai/witdoc/section"
)

var componentHeader = []byte{0x00, 0x61, 0x73, 0x6D, 0x0D, 0x00, 0x01, 0x00}

func customSection(name string, data []byte) []byte {
	body := binary.NewWriter()
	body.WriteName(name)
	body.WriteBytes(data)

	sec := binary.NewWriter()
	sec.Byte(0)
	sec.WriteU32(uint32(body.Len()))
	sec.WriteBytes(body.Bytes())
	return sec.Bytes()
}

func rawSection(id byte, data []byte) []byte {
	sec := binary.NewWriter()
	sec.Byte(id)
	sec.WriteU32(uint32(len(data)))
	sec.WriteBytes(data)
	return sec.Bytes()
}

func buildComponent(sections ...[]byte) []byte {
	out := append([]byte{}, componentHeader...)
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

func s(v string) *string { return &v }

func sampleTree() *witdoc.Tree {
	return &witdoc.Tree{
		Worlds: map[string]*witdoc.WorldDocs{
			"app": {
				Docs: s("Top level."),
				FuncExports: map[string]*witdoc.FuncDocs{
					"run": {Docs: s("Runs it.")},
				},
				FuncImports: map[string]*witdoc.FuncDocs{
					"log": {Docs: s("Host logger.")},
				},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tree := sampleTree()

	payload, err := section.EncodeDocs(tree)
	if err != nil {
		t.Fatalf("EncodeDocs: %v", err)
	}
	if len(payload) < 2 {
		t.Fatalf("payload too short: %d bytes", len(payload))
	}

	got, err := section.DecodeDocs(payload)
	if err != nil {
		t.Fatalf("DecodeDocs: %v", err)
	}
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, tree)
	}
}

func TestDecodeSkipsVersionByte(t *testing.T) {
	payload := append([]byte{0xFF}, []byte(`{"worlds":{"w":{}}}`)...)

	tree, err := section.DecodeDocs(payload)
	if err != nil {
		t.Fatalf("DecodeDocs: %v", err)
	}
	if _, ok := tree.Worlds["w"]; !ok {
		t.Error("world lost while skipping version byte")
	}
}

func TestDecodeShortPayload(t *testing.T) {
	for _, payload := range [][]byte{nil, {}, {0x01}} {
		tree, err := section.DecodeDocs(payload)
		if err != nil {
			t.Errorf("payload %v: unexpected error %v", payload, err)
		}
		if tree != nil {
			t.Errorf("payload %v: expected nil tree, got %+v", payload, tree)
		}
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := section.DecodeDocs([]byte{0x01, '{', 'x'}); err == nil {
		t.Error("expected decode error for invalid JSON")
	}
}

func TestDecodeToleratesUnknownFields(t *testing.T) {
	payload := append([]byte{0x01},
		[]byte(`{"worlds":{"w":{"docs":"D","func_exports":{"f":{"docs":"F","stability":"stable"}},"extra":1}}}`)...)

	tree, err := section.DecodeDocs(payload)
	if err != nil {
		t.Fatalf("DecodeDocs: %v", err)
	}
	f, ok := tree.Worlds["w"].Function("f")
	if !ok || f.Docs == nil || *f.Docs != "F" {
		t.Errorf("function docs lost: %+v", f)
	}
}

func TestDecodeAliasField(t *testing.T) {
	payload := append([]byte{0x01},
		[]byte(`{"worlds":{"w":{"functions":{"run":{"docs":"Runs it."}}}}}`)...)

	tree, err := section.DecodeDocs(payload)
	if err != nil {
		t.Fatalf("DecodeDocs: %v", err)
	}
	f, ok := tree.Worlds["w"].Function("run")
	if !ok || f.Docs == nil || *f.Docs != "Runs it." {
		t.Errorf("alias field not accepted: %+v", f)
	}
}

func TestDocsAbsentVsEmpty(t *testing.T) {
	payload := append([]byte{0x01},
		[]byte(`{"worlds":{"a":{"docs":""},"b":{}}}`)...)

	tree, err := section.DecodeDocs(payload)
	if err != nil {
		t.Fatalf("DecodeDocs: %v", err)
	}
	if tree.Worlds["a"].Docs == nil || *tree.Worlds["a"].Docs != "" {
		t.Error("empty docs string must survive as empty, not absent")
	}
	if tree.Worlds["b"].Docs != nil {
		t.Error("absent docs must decode as nil")
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	module := buildComponent(
		rawSection(1, []byte{0x01, 0x60, 0x00, 0x00}),
		customSection("package-docs", []byte("first")),
		customSection("other", []byte("noise")),
		customSection("package-docs", []byte("second")),
	)

	data, ok, err := section.Find(module, "package-docs")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("section not found")
	}
	if !bytes.Equal(data, []byte("first")) {
		t.Errorf("duplicate resolution: got %q, want %q", data, "first")
	}
}

func TestFindAbsent(t *testing.T) {
	module := buildComponent(customSection("other", []byte("x")))

	_, ok, err := section.Find(module, "package-docs")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Error("found a section that does not exist")
	}
}

func TestFindBadMagic(t *testing.T) {
	if _, _, err := section.Find([]byte("not a wasm file"), "package-docs"); err == nil {
		t.Error("expected error for invalid magic")
	}
}

func TestFindTruncated(t *testing.T) {
	module := buildComponent(rawSection(1, []byte{0x01, 0x02}))
	// Chop the last byte off the final section.
	if _, _, err := section.Find(module[:len(module)-1], "package-docs"); err == nil {
		t.Error("expected error for truncated section")
	}
}

func TestExtract(t *testing.T) {
	payload, err := section.EncodeDocs(sampleTree())
	if err != nil {
		t.Fatalf("EncodeDocs: %v", err)
	}
	module := buildComponent(customSection(section.Name, payload))

	tree, ok, err := section.Extract(module)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !ok {
		t.Fatal("section not found")
	}
	if !reflect.DeepEqual(tree, sampleTree()) {
		t.Errorf("extract mismatch: %+v", tree)
	}
}

func TestExtractEmptySectionPresent(t *testing.T) {
	module := buildComponent(customSection(section.Name, []byte{0x01}))

	tree, ok, err := section.Extract(module)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !ok {
		t.Error("section presence lost for empty payload")
	}
	if tree != nil {
		t.Errorf("expected nil tree for empty payload, got %+v", tree)
	}
}
