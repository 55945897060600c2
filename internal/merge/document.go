package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Kind discriminates the parsed shape of a file's content.
type Kind int

const (
	// KindOpaque means the bytes did not parse as JSON.
	KindOpaque Kind = iota
	// KindArray is a top-level JSON array.
	KindArray
	// KindObject is a top-level JSON object.
	KindObject
	// KindScalar is any other JSON value (string, number, bool, null).
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindScalar:
		return "scalar"
	default:
		return "opaque"
	}
}

// Document is the parsed content of one archive file. Exactly one of
// Array/Object/Scalar is meaningful depending on Kind; Raw always holds
// the original bytes so opaque content can be copied through untouched.
type Document struct {
	Kind   Kind
	Array  []any
	Object map[string]any
	Scalar any
	Raw    []byte
}

// ParseDocument decodes raw bytes into a Document. Invalid JSON, and
// valid JSON followed by trailing garbage, both yield KindOpaque.
func ParseDocument(raw []byte) Document {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{Kind: KindOpaque, Raw: raw}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Document{Kind: KindOpaque, Raw: raw}
	}

	switch t := v.(type) {
	case []any:
		return Document{Kind: KindArray, Array: t, Raw: raw}
	case map[string]any:
		return Document{Kind: KindObject, Object: t, Raw: raw}
	default:
		return Document{Kind: KindScalar, Scalar: t, Raw: raw}
	}
}

// Value returns the decoded JSON value, or nil for opaque documents.
func (d Document) Value() any {
	switch d.Kind {
	case KindArray:
		return d.Array
	case KindObject:
		return d.Object
	case KindScalar:
		return d.Scalar
	default:
		return nil
	}
}
