package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/TraverseKit/pkg/document"
	"github.com/johnjamespj/TraverseKit/pkg/sequence"
)

func TestEval(t *testing.T) {
	doc, err := document.FromJSON(`{"user": {"name": "ada", "age": 36}}`)
	require.NoError(t, err)

	name, err := doc.Eval("user.name")
	require.NoError(t, err)
	assert.Equal(t, "ada", name)
}

func TestFromBytesDecodesLazily(t *testing.T) {
	original, err := document.FromMap(map[string]any{"kind": "record"})
	require.NoError(t, err)

	doc := document.FromBytes(original.Bytes())
	kind, err := doc.Eval("kind")
	require.NoError(t, err)
	assert.Equal(t, "record", kind)
}

func TestMatcher(t *testing.T) {
	match, err := document.Matcher(`kind = "marker"`)
	require.NoError(t, err)

	marker, err := document.FromMap(map[string]any{"kind": "marker"})
	require.NoError(t, err)
	record, err := document.FromMap(map[string]any{"kind": "record"})
	require.NoError(t, err)

	ok, err := match(marker)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = match(record)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatcherUndefinedIsFalse(t *testing.T) {
	match, err := document.Matcher("missing")
	require.NoError(t, err)

	doc, err := document.FromMap(map[string]any{"kind": "record"})
	require.NoError(t, err)

	ok, err := match(doc)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatcherRejectsNonBoolean(t *testing.T) {
	match, err := document.Matcher("kind")
	require.NoError(t, err)

	doc, err := document.FromMap(map[string]any{"kind": "record"})
	require.NoError(t, err)

	_, err = match(doc)
	assert.ErrorIs(t, err, document.ErrNotBoolean)
}

func TestMatcherRejectsBadExpression(t *testing.T) {
	_, err := document.Matcher("kind =")
	assert.Error(t, err)
}

// Splitting a document stream on marker documents, the way a log shipper
// would cut batches.
func TestSplitStreamOnMarkers(t *testing.T) {
	match, err := document.Matcher(`kind = "marker"`)
	require.NoError(t, err)

	docs := make([]*document.Document, 0, 5)
	for _, fields := range []map[string]any{
		{"kind": "record", "n": 1.0},
		{"kind": "record", "n": 2.0},
		{"kind": "marker"},
		{"kind": "record", "n": 3.0},
	} {
		doc, err := document.FromMap(fields)
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	segments, err := sequence.Split(sequence.FromSlice(docs), sequence.NoLimit, true, match)
	require.NoError(t, err)

	require.Len(t, segments, 2)
	assert.Len(t, segments[0], 2)
	assert.Len(t, segments[1], 1)

	n, err := segments[1][0].Eval("n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, n)
}
