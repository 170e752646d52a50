package mvc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAfter(t *testing.T) {
	t.Parallel()

	newWriter := func() *responseWriter {
		return &responseWriter{ResponseWriter: httptest.NewRecorder()}
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	t.Run("runs_in_order_then_final", func(t *testing.T) {
		t.Parallel()

		var order []string
		step := func(name string) AfterFunc {
			return func(_ *http.Request, _ ResponseWriter, next func()) {
				order = append(order, name)
				next()
			}
		}

		runAfter([]AfterFunc{step("a"), step("b")}, req, newWriter(), func() {
			order = append(order, "final")
		})
		assert.Equal(t, []string{"a", "b", "final"}, order)
	})

	t.Run("empty_chain_calls_final", func(t *testing.T) {
		t.Parallel()

		called := 0
		runAfter(nil, req, newWriter(), func() { called++ })
		assert.Equal(t, 1, called)
	})

	t.Run("stops_without_next", func(t *testing.T) {
		t.Parallel()

		called := 0
		stop := func(*http.Request, ResponseWriter, func()) {}
		runAfter([]AfterFunc{stop}, req, newWriter(), func() { called++ })
		assert.Zero(t, called)
	})

	t.Run("repeated_next_ignored", func(t *testing.T) {
		t.Parallel()

		called := 0
		twice := func(_ *http.Request, _ ResponseWriter, next func()) {
			next()
			next()
		}
		runAfter([]AfterFunc{twice, twice}, req, newWriter(), func() { called++ })
		assert.Equal(t, 1, called)
	})

	t.Run("earlier_effects_visible_later", func(t *testing.T) {
		t.Parallel()

		w := newWriter()
		var seen string
		set := func(_ *http.Request, w ResponseWriter, next func()) {
			w.Set("X-A", "1")
			next()
		}
		read := func(_ *http.Request, w ResponseWriter, next func()) {
			seen = w.Header().Get("X-A")
			next()
		}
		runAfter([]AfterFunc{set, read}, req, w, func() {})
		assert.Equal(t, "1", seen)
	})
}

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	desc := &Descriptor{Method: "Show"}

	site, err := resolveTarget(desc)
	require.NoError(t, err)
	assert.Equal(t, MethodTarget, site.Kind)
	assert.Same(t, desc, site.Descriptor)

	site, err = resolveTarget(2)
	require.NoError(t, err)
	assert.Equal(t, ParameterTarget, site.Kind)
	assert.Equal(t, 2, site.ParameterIndex)
	assert.Nil(t, site.Descriptor)

	_, err = resolveTarget(nil)
	assert.ErrorIs(t, err, ErrUnsupportedDescriptor)

	_, err = resolveTarget(int64(2))
	assert.ErrorIs(t, err, ErrUnsupportedDescriptor)

	assert.Equal(t, "method", MethodTarget.String())
	assert.Equal(t, "parameter", ParameterTarget.String())
	assert.Equal(t, "TargetKind(9)", TargetKind(9).String())
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, statusOf(NewExpressionError("QueryParamsFilter", "id")))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, statusOf(&panicError{value: "boom"}))
}
