package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct1 struct {
	Field1      string        `json:"field1" validate:"required"`
	Field2      string        `validate:"required"`
	Nested      []testStruct2 `json:"nested" validate:"dive"`
	testStruct2               // anonymous
}

type testStruct2 struct {
	Field3 string `json:"field3" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()
	err := New().Validate(context.Background(), testStruct1{Nested: []testStruct2{{}, {}}})
	expected := `
- "field1" is a required field
- "Field2" is a required field
- "nested[0].field3" is a required field
- "nested[1].field3" is a required field
- "field3" is a required field
`
	require.Error(t, err)
	assert.Equal(t, strings.TrimSpace(expected), err.Error())
}

func TestValidateStructWithNamespace(t *testing.T) {
	t.Parallel()
	err := New().ValidateCtx(context.Background(), testStruct2{}, "dive", "my.value")
	require.Error(t, err)
	assert.Equal(t, `"my.value.field3" is a required field`, err.Error())
}

func TestValidateValue(t *testing.T) {
	t.Parallel()
	err := New().ValidateValue("", "required")
	require.Error(t, err)
	assert.Equal(t, `is a required field`, err.Error())
}

func TestValidateValueWithNamespace(t *testing.T) {
	t.Parallel()
	err := New().ValidateCtx(context.Background(), "", "required", "my.value")
	require.Error(t, err)
	assert.Equal(t, `"my.value" is a required field`, err.Error())
}

func TestValidateCustomRule(t *testing.T) {
	t.Parallel()
	rule := Rule{
		Tag: "my_rule",
		Func: func(fl validator.FieldLevel) bool {
			return fl.Field().String() == "expected"
		},
		ErrorMsgFunc: func(fe validator.FieldError) string {
			return "must be the expected value"
		},
	}

	err := New(rule).ValidateCtx(context.Background(), "expected", "my_rule", "my.value")
	require.NoError(t, err)

	err = New(rule).ValidateCtx(context.Background(), "other", "my_rule", "my.value")
	require.Error(t, err)
	assert.Equal(t, `"my.value" must be the expected value`, err.Error())
}

func TestValidateValid(t *testing.T) {
	t.Parallel()
	value := testStruct1{
		Field1:      "foo",
		Field2:      "bar",
		Nested:      []testStruct2{{Field3: "baz"}},
		testStruct2: testStruct2{Field3: "baz"},
	}
	assert.NoError(t, New().Validate(context.Background(), value))
}
