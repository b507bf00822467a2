package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/logger"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	settings := flash.DefaultSettings()
	var managers []*flash.Manager

	handler := flash.Middleware(settings, nil, flash.WithLogger(logger.Discard()))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := flash.MustFromContext(r.Context())
			managers = append(managers, m)

			assert.Zero(t, m.Count(), "messages must not leak between requests")
			m.AddSuccess("Saved")

			out, err := m.RenderAll(r.Context())
			require.NoError(t, err)
			_, _ = w.Write([]byte(out))
		}),
	)

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, `<p class="default success">Saved</p>`, rec.Body.String())
	}

	require.Len(t, managers, 2)
	assert.NotSame(t, managers[0], managers[1])
	assert.Same(t, settings, managers[0].Settings())
	assert.Same(t, managers[0].Settings(), managers[1].Settings())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := flash.FromContext(t.Context())
	assert.False(t, ok)
	assert.PanicsWithValue(t, flash.ErrNoManager, func() {
		flash.MustFromContext(t.Context())
	})

	m := newManager(nil, nil)
	ctx := flash.WithManager(t.Context(), m)
	got, ok := flash.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, m, got)
	assert.Same(t, m, flash.MustFromContext(ctx))

	_, ok = flash.FromContext(flash.WithManager(t.Context(), nil))
	assert.False(t, ok)
}
