package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	data, err := Encode(map[string]any{"foo": "bar"}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"foo":"bar"}`, string(data))
}

func TestEncodePretty(t *testing.T) {
	t.Parallel()
	data, err := EncodeString(map[string]any{"foo": "bar"}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"foo\": \"bar\"\n}", data)
}

func TestDecode(t *testing.T) {
	t.Parallel()
	var target map[string]any
	require.NoError(t, DecodeString(`{"foo":"bar"}`, &target))
	assert.Equal(t, map[string]any{"foo": "bar"}, target)
}

func TestMustEncodeString_Panic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		MustEncodeString(make(chan int), false)
	})
}
