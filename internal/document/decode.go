package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .json is read as YAML, which also accepts JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// DecodeError reports input that is not a valid document.
type DecodeError struct {
	// Path locates the offending value, e.g. "$[2].age".
	Path    string
	Message string
	Line    int
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Value, error) {
	if format == FormatJSON {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// DecodeJSON parses a single JSON value. Floats are rejected.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Message: err.Error()}
	}
	if dec.More() {
		return nil, &DecodeError{Message: "trailing data after JSON value"}
	}
	return fromJSON(raw, "$")
}

func fromJSON(v any, path string) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		s := string(val)
		if strings.ContainsAny(s, ".eE") {
			return nil, &DecodeError{Path: path, Message: "floats are not supported: " + s}
		}
		n, err := val.Int64()
		if err != nil {
			return nil, &DecodeError{Path: path, Message: "number out of int64 range: " + s}
		}
		return Int(n), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			dv, err := fromJSON(elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr[i] = dv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			dv, err := fromJSON(elem, keyPath(path, k))
			if err != nil {
				return nil, err
			}
			obj[k] = dv
		}
		return obj, nil
	default:
		return nil, &DecodeError{Path: path, Message: fmt.Sprintf("unsupported JSON type %T", v)}
	}
}

// DecodeYAML parses a single YAML document. Floats and non-string mapping
// keys are rejected; aliases are expanded.
func DecodeYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Message: err.Error()}
	}
	if root.Kind == 0 {
		return nil, &DecodeError{Message: "empty document"}
	}
	d := &yamlDecoder{anchored: make(map[*yaml.Node]bool)}
	return d.node(&root, "$")
}

// yamlDecoder expands aliases while guarding against anchors that contain
// themselves and against exponential alias fan-out.
type yamlDecoder struct {
	anchored   map[*yaml.Node]bool
	aliasDepth int
	decoded    int
	expanded   int
}

// allowedAliasRatio follows yaml.v3: small documents may consist mostly of
// alias expansions, large ones may not.
func allowedAliasRatio(decoded int) float64 {
	switch {
	case decoded <= 400_000:
		return 0.99
	case decoded >= 4_000_000:
		return 0.10
	default:
		return 0.10 + 0.89*(1-float64(decoded-400_000)/3_600_000)
	}
}

func (d *yamlDecoder) node(n *yaml.Node, path string) (Value, error) {
	d.decoded++
	if d.aliasDepth > 0 {
		d.expanded++
		if d.decoded > 1000 && float64(d.expanded)/float64(d.decoded) > allowedAliasRatio(d.decoded) {
			return nil, &DecodeError{Path: path, Line: n.Line, Message: "document contains excessive aliasing"}
		}
	}
	if n.Anchor != "" {
		d.anchored[n] = true
		defer delete(d.anchored, n)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return d.node(n.Content[0], path)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, &DecodeError{Path: path, Line: n.Line, Message: "unknown anchor " + n.Value}
		}
		if d.anchored[n.Alias] {
			return nil, &DecodeError{Path: path, Line: n.Line, Message: "alias *" + n.Value + " refers to an enclosing anchor"}
		}
		d.aliasDepth++
		defer func() { d.aliasDepth-- }()
		return d.node(n.Alias, path)
	case yaml.SequenceNode:
		arr := make(Array, len(n.Content))
		for i, child := range n.Content {
			dv, err := d.node(child, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr[i] = dv
		}
		return arr, nil
	case yaml.MappingNode:
		obj := make(Object, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.ShortTag() != "!!str" {
				return nil, &DecodeError{Path: path, Line: key.Line, Message: "mapping keys must be strings, got " + key.ShortTag()}
			}
			dv, err := d.node(val, keyPath(path, key.Value))
			if err != nil {
				return nil, err
			}
			obj[key.Value] = dv
		}
		return obj, nil
	case yaml.ScalarNode:
		return scalar(n, path)
	default:
		return nil, &DecodeError{Path: path, Line: n.Line, Message: "unsupported YAML node"}
	}
}

func scalar(n *yaml.Node, path string) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!str":
		return String(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &DecodeError{Path: path, Line: n.Line, Message: err.Error()}
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, &DecodeError{Path: path, Line: n.Line, Message: "number out of int64 range: " + n.Value}
		}
		return Int(i), nil
	case "!!float":
		return nil, &DecodeError{Path: path, Line: n.Line, Message: "floats are not supported: " + n.Value}
	default:
		return nil, &DecodeError{Path: path, Line: n.Line, Message: "unsupported scalar tag " + n.ShortTag()}
	}
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
