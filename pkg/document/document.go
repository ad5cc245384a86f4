// Package document holds schemaless records as msgpack payloads and
// evaluates JSONata expressions against them. Matcher turns an expression
// into a predicate usable with sequence.Split, Filter and Where.
package document

import (
	"encoding/json"

	jsonata "github.com/blues/jsonata-go"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack"
)

var ErrNotBoolean = errors.New("expression did not evaluate to a boolean")

// Document keeps its payload encoded and decodes it at most once, on first
// evaluation.
type Document struct {
	bin   []byte
	cache map[string]any
}

func FromJSON(str string) (*Document, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(str), &fields); err != nil {
		return nil, err
	}
	return FromMap(fields)
}

func FromMap(fields map[string]any) (*Document, error) {
	bin, err := msgpack.Marshal(fields)
	if err != nil {
		return nil, err
	}

	return &Document{
		bin:   bin,
		cache: fields,
	}, nil
}

func FromBytes(bin []byte) *Document {
	return &Document{bin: bin}
}

func (d *Document) Bytes() []byte {
	return d.bin
}

// Eval runs a JSONata expression against the document.
func (d *Document) Eval(expr string) (any, error) {
	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, err
	}

	fields, err := d.fields()
	if err != nil {
		return nil, err
	}
	return e.Eval(fields)
}

func (d *Document) fields() (map[string]any, error) {
	if d.cache == nil {
		if err := msgpack.Unmarshal(d.bin, &d.cache); err != nil {
			return nil, err
		}
	}
	return d.cache, nil
}

// Matcher compiles expr once and returns a predicate over documents. The
// expression must evaluate to a boolean; an undefined result counts as
// false, anything else is an error.
func Matcher(expr string) (func(*Document) (bool, error), error) {
	e, err := jsonata.Compile(expr)
	if err != nil {
		return nil, err
	}

	return func(d *Document) (bool, error) {
		fields, err := d.fields()
		if err != nil {
			return false, err
		}

		res, err := e.Eval(fields)
		if err != nil {
			if errors.Is(err, jsonata.ErrUndefined) {
				return false, nil
			}
			return false, err
		}

		b, ok := res.(bool)
		if !ok {
			return false, errors.Wrapf(ErrNotBoolean, "%q returned %T", expr, res)
		}
		return b, nil
	}, nil
}
