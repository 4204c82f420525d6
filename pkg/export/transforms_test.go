package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	value, err := AsString("id")(ctx, MapRecord{"id": int64(123)})
	require.NoError(t, err)
	assert.Equal(t, "123", value)

	value, err = AsString("id")(ctx, MapRecord{"id": nil})
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = AsString("missing")(ctx, MapRecord{})
	require.Error(t, err)
	assert.Equal(t, `record has no field "missing"`, err.Error())
}

func TestAsInt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	value, err := AsInt("count")(ctx, MapRecord{"count": "42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	_, err = AsInt("count")(ctx, MapRecord{"count": "not a number"})
	require.Error(t, err)
}

func TestAsBool(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	value, err := AsBool("active")(ctx, MapRecord{"active": int64(1)})
	require.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = AsBool("active")(ctx, MapRecord{"active": int64(0)})
	require.NoError(t, err)
	assert.Equal(t, false, value)
}

func TestConstant(t *testing.T) {
	t.Parallel()

	value, err := Constant("crm")(context.Background(), MapRecord{})
	require.NoError(t, err)
	assert.Equal(t, "crm", value)
}
