package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

var personSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string", "minLength": 2.0},
		"email": map[string]any{"format": "email"},
		"age":   map[string]any{"minimum": 0.0, "maximum": 150.0},
	},
	"required": []any{"name"},
}

func TestNew(t *testing.T) {
	v, err := New(jsf.Draft2020_12)
	require.NoError(t, err)
	assert.Equal(t, jsf.Draft2020_12, v.Draft())

	_, err = New(jsf.Draft("http://example.com/bogus"))
	assert.Error(t, err)
}

func TestValidator_Validate(t *testing.T) {
	v, err := New(jsf.Draft2020_12)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid instance", func(t *testing.T) {
		report, err := v.Validate(ctx, personSchema, map[string]any{
			"name":  "alice",
			"email": "alice@example.com",
			"age":   30.0,
		})
		require.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("invalid instance", func(t *testing.T) {
		report, err := v.Validate(ctx, personSchema, map[string]any{
			"name": "a",
			"age":  -5.0,
		})
		require.NoError(t, err)
		require.NotNil(t, report)
	})

	t.Run("missing required member", func(t *testing.T) {
		report, err := v.Validate(ctx, personSchema, map[string]any{"age": 30.0})
		require.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("schema error surfaces", func(t *testing.T) {
		_, err := v.Validate(ctx, map[string]any{"pattern": "("}, "x")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := v.Validate(cancelled, personSchema, map[string]any{"name": "alice"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidator_ValidateControl(t *testing.T) {
	v, err := New(jsf.Draft2020_12)
	require.NoError(t, err)

	group := jsf.NewGroup(map[string]*jsf.FormControl{
		"name": jsf.NewControl(jsf.String("a")),
	})
	report, err := v.ValidateControl(context.Background(), personSchema, group)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, report, group.Errors())

	// A passing validation clears the error slot.
	group.Child("name").(*jsf.FormControl).SetValue(jsf.String("alice"))
	report, err = v.ValidateControl(context.Background(), personSchema, group)
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.Nil(t, group.Errors())
}

func TestValidator_ValidateBatch(t *testing.T) {
	v, err := New(jsf.Draft2020_12, jsf.WithWorkerCount(2))
	require.NoError(t, err)

	instances := []any{
		map[string]any{"name": "alice"},
		map[string]any{"name": "b"},
		map[string]any{"name": "carol", "age": 200.0},
		map[string]any{"name": "dave", "email": "dave@example.com"},
	}
	reports, err := v.ValidateBatch(context.Background(), personSchema, instances)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Nil(t, reports[0])
	assert.NotNil(t, reports[1], "short name should fail")
	assert.NotNil(t, reports[2], "age over maximum should fail")
	assert.Nil(t, reports[3])
}

func TestValidator_ValidateBatch_LargerThanPoolBuffers(t *testing.T) {
	v, err := New(jsf.Draft2020_12, jsf.WithWorkerCount(2))
	require.NoError(t, err)

	instances := make([]any, 64)
	for i := range instances {
		if i%2 == 0 {
			instances[i] = map[string]any{"name": "alice"}
		} else {
			instances[i] = map[string]any{}
		}
	}

	reports, err := v.ValidateBatch(context.Background(), personSchema, instances)
	require.NoError(t, err)
	require.Len(t, reports, 64)
	for i, report := range reports {
		if i%2 == 0 {
			assert.Nil(t, report, "instance %d", i)
		} else {
			assert.NotNil(t, report, "instance %d", i)
		}
	}
}

func TestValidator_Metrics(t *testing.T) {
	v, err := New(jsf.Draft2020_12)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = v.Validate(ctx, personSchema, map[string]any{"name": "alice"})
	require.NoError(t, err)
	_, err = v.Validate(ctx, personSchema, map[string]any{"name": "b"})
	require.NoError(t, err)

	m := v.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, uint64(2), m.ValidationsTotal())
	assert.Equal(t, uint64(1), m.ValidationsValid())
	// The second call reused the compiled schema.
	assert.Equal(t, uint64(1), m.CacheHits())
}

func TestValidator_MetricsDisabled(t *testing.T) {
	v, err := New(jsf.Draft2020_12, jsf.WithMetrics(false))
	require.NoError(t, err)
	assert.Nil(t, v.Metrics())

	_, err = v.Validate(context.Background(), personSchema, map[string]any{"name": "alice"})
	assert.NoError(t, err)
}

func TestValidator_ComposeAsync(t *testing.T) {
	v, err := New(jsf.Draft2020_12, jsf.WithParallelAsync(true))
	require.NoError(t, err)

	checker, err := v.Compile(map[string]any{"minLength": 3.0})
	require.NoError(t, err)
	composed := v.ComposeAsync(jsf.Async(checker))

	report, err := composed.Check(context.Background(), jsf.NewControl(jsf.String("ab")), false)
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestValidator_StrictWholeStringPattern(t *testing.T) {
	schema := map[string]any{"pattern": "bc"}
	ctx := context.Background()

	relaxed, err := New(jsf.Draft2020_12)
	require.NoError(t, err)
	report, err := relaxed.Validate(ctx, schema, "abcd")
	require.NoError(t, err)
	assert.Nil(t, report, "partial match is the default")

	strict, err := New(jsf.Draft2020_12, jsf.StrictOptions()...)
	require.NoError(t, err)
	report, err = strict.Validate(ctx, schema, "abcd")
	require.NoError(t, err)
	assert.NotNil(t, report, "whole-string mode rejects partial matches")
}
