package flash_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/printf"
)

func TestManager_Render(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty store renders nothing", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		for _, where := range []string{"", "default.ALL", "msg", "billing.error", "missing.ALL"} {
			out, err := m.Render(ctx, where)
			require.NoError(t, err)
			assert.Empty(t, out, where)
		}
	})

	t.Run("default template per message", func(t *testing.T) {
		t.Parallel()
		m := newManager(newSettings(func(c *flash.Config) {
			c.DefaultTemplate = "<p>%s</p>"
		}), nil)
		m.Add("error", "Bad input")
		m.Add("error", "Try again")

		out, err := m.Render(ctx, "error")
		require.NoError(t, err)
		assert.Equal(t, "<p>Bad input</p><p>Try again</p>", out)
	})

	t.Run("built-in template receives bag and type", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("billing.unpaid", "Invoice overdue")

		out, err := m.Render(ctx, "billing.unpaid")
		require.NoError(t, err)
		assert.Equal(t, `<p class="billing unpaid">Invoice overdue</p>`, out)
	})

	t.Run("formatted message", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("billing.sprintf:Hello %s", "World")

		out, err := m.Render(ctx, "billing.sprintf")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", out)
	})

	t.Run("formatted message with positional arguments", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("sprintf:%2$s, %1$s!", []string{"World", "Hello"})

		out, err := m.Render(ctx, "sprintf")
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", out)
	})

	t.Run("formatted message with typed slice arguments", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("sprintf:%d and %d", []int{1, 2})
		m.Add("sprintf:%.1f%%", [1]float64{99.5})

		out, err := m.Render(ctx, "sprintf")
		require.NoError(t, err)
		assert.Equal(t, "1 and 299.5%", out)
	})

	t.Run("plain message under a reserved type name stays plain", func(t *testing.T) {
		t.Parallel()
		m := newManager(newSettings(func(c *flash.Config) {
			c.DefaultTemplate = "%s"
		}), nil)
		m.Add("sprintf", "100%")

		out, err := m.Render(ctx, "sprintf")
		require.NoError(t, err)
		assert.Equal(t, "100%", out)
	})

	t.Run("all types joined with block splitter", func(t *testing.T) {
		t.Parallel()
		m := newManager(newSettings(func(c *flash.Config) {
			c.DefaultTemplate = "<p>%s</p>"
			c.BlockSplitter = "\n"
		}), nil)
		m.Add("error", "a")
		m.Add("error", "b")
		m.Add("info", "c")

		out, err := m.RenderAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<p>a</p>\n<p>b</p>\n<p>c</p>", out)

		same, err := m.Render(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, out, same)
	})

	t.Run("other bags are not rendered by default", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("billing.error", "x")

		out, err := m.RenderAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, out)

		out, err = m.Render(ctx, "billing.ALL")
		require.NoError(t, err)
		assert.Equal(t, `<p class="billing error">x</p>`, out)
	})

	t.Run("malformed format is returned as error", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("sprintf:%s %s", "only one")

		out, err := m.Render(ctx, "sprintf")
		require.Error(t, err)
		assert.ErrorIs(t, err, printf.ErrTooFewArguments)
		assert.Empty(t, out)
	})
}

func TestManager_RenderViews(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registered bag.type view renders the whole list once", func(t *testing.T) {
		t.Parallel()
		engine := &MockEngine{}
		m := newManager(nil, engine)

		engine.On("Exists", "default.error").Return(true)
		engine.On("Render", mock.Anything, "default.error", mock.MatchedBy(func(data map[string]any) bool {
			items, ok := data["notifications"].([]string)
			return ok && assert.ObjectsAreEqual([]string{"a", "b"}, items) && data["messages"] == m
		})).Return("<ul><li>a</li><li>b</li></ul>", nil).Once()

		m.Add("error", "a")
		m.Add("error", "b")

		out, err := m.Render(ctx, "error")
		require.NoError(t, err)
		assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", out)
		engine.AssertExpectations(t)
	})

	t.Run("type override applies to every bag", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("alerts.danger", listView("danger"))
		settings := newSettings(nil)
		settings.SetTemplate("error", "alerts.danger")
		m := newManager(settings, engine)

		m.Add("billing.error", "x")
		m.Add("error", "y")

		out, err := m.Render(ctx, "billing.error")
		require.NoError(t, err)
		assert.Equal(t, `<ul class="danger"><li>x</li></ul>`, out)

		out, err = m.Render(ctx, "error")
		require.NoError(t, err)
		assert.Equal(t, `<ul class="danger"><li>y</li></ul>`, out)
	})

	t.Run("registered view beats override", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().
			with("alerts.danger", listView("danger")).
			with("default.error", listView("own"))
		settings := newSettings(nil)
		settings.SetTemplate("error", "alerts.danger")
		m := newManager(settings, engine)
		m.Add("error", "x")

		out, err := m.Render(ctx, "error")
		require.NoError(t, err)
		assert.Equal(t, `<ul class="own"><li>x</li></ul>`, out)
	})

	t.Run("unregistered override falls back to default template", func(t *testing.T) {
		t.Parallel()
		settings := newSettings(func(c *flash.Config) {
			c.Views = map[string]string{"error": "missing.view"}
			c.DefaultTemplate = "<p>%s</p>"
		})
		m := newManager(settings, newStubEngine())
		m.Add("error", "x")

		out, err := m.Render(ctx, "error")
		require.NoError(t, err)
		assert.Equal(t, "<p>x</p>", out)
	})

	t.Run("custom message variable", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("default.info", func(data map[string]any) (string, error) {
			return fmt.Sprint(data["items"]), nil
		})
		m := newManager(newSettings(func(c *flash.Config) {
			c.MsgVariable = "items"
		}), engine)
		m.Add("info", "a")

		out, err := m.Render(ctx, "info")
		require.NoError(t, err)
		assert.Equal(t, "[a]", out)
	})

	t.Run("view message renders with its data and the manager", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("alerts.promo", func(data map[string]any) (string, error) {
			return fmt.Sprintf("code=%v", data["code"]), nil
		})
		m := newManager(nil, engine)
		m.Add("view:alerts.promo", map[string]any{"code": "SPRING"})
		m.Add("view:alerts.promo", map[string]any{"code": "SUMMER"})

		out, err := m.Render(ctx, "view")
		require.NoError(t, err)
		assert.Equal(t, "code=SPRINGcode=SUMMER", out)

		require.Len(t, engine.calls, 2)
		assert.Same(t, m, engine.calls[0].data["messages"])
	})

	t.Run("view data wins over the shared manager key", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("v", func(data map[string]any) (string, error) {
			return fmt.Sprint(data["messages"]), nil
		})
		m := newManager(nil, engine)
		m.Add("view:v", map[string]any{"messages": "mine"})

		out, err := m.Render(ctx, "view")
		require.NoError(t, err)
		assert.Equal(t, "mine", out)
	})

	t.Run("empty view share passes no manager", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("v", func(map[string]any) (string, error) { return "ok", nil })
		m := newManager(newSettings(func(c *flash.Config) {
			c.ViewShare = ""
		}), engine)
		m.Add("view:v", nil)

		_, err := m.Render(ctx, "view")
		require.NoError(t, err)
		require.Len(t, engine.calls, 1)
		assert.Empty(t, engine.calls[0].data)
	})

	t.Run("view error is returned", func(t *testing.T) {
		t.Parallel()
		errBoom := errors.New("boom")
		engine := newStubEngine().with("v", func(map[string]any) (string, error) { return "", errBoom })
		m := newManager(nil, engine)
		m.Add("view:v", nil)

		out, err := m.Render(ctx, "view")
		require.ErrorIs(t, err, errBoom)
		assert.Empty(t, out)
	})

	t.Run("view message without engine", func(t *testing.T) {
		t.Parallel()
		m := newManager(nil, nil)
		m.Add("view:v", nil)

		_, err := m.Render(ctx, "view")
		assert.ErrorIs(t, err, flash.ErrNoViewEngine)
	})
}

func TestManager_RenderMessages(t *testing.T) {
	t.Parallel()

	m := newManager(newSettings(func(c *flash.Config) {
		c.DefaultTemplate = "[%3$s:%1$s]"
		c.BlockSplitter = " "
	}), nil)

	out, err := m.RenderMessages(context.Background(), nil, "default", "msg")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = m.RenderMessages(context.Background(), []flash.Message{
		flash.Plain("a"),
		flash.Formatted("n=%d", 2),
	}, "default", "mixed")
	require.NoError(t, err)
	assert.Equal(t, "[mixed:a] n=2", out)
}

func TestManager_ViewFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		views map[string]string
		bag   string
		typ   string
		want  string
	}{
		{
			name:  "generic msg override",
			views: map[string]string{"msg": "generic.view"},
			bag:   "custom", typ: "msg",
			want: "generic.view",
		},
		{
			name:  "exact key first",
			views: map[string]string{"billing.error": "b", "error": "e", "default.error": "d", "msg": "m", "default.msg": "dm"},
			bag:   "billing", typ: "error",
			want: "b",
		},
		{
			name:  "bare type before default bag",
			views: map[string]string{"billing.error": "b", "error": "e", "default.error": "d"},
			bag:   "shop", typ: "error",
			want: "e",
		},
		{
			name:  "default bag type",
			views: map[string]string{"default.error": "d", "msg": "m"},
			bag:   "shop", typ: "error",
			want: "d",
		},
		{
			name:  "msg before default.msg",
			views: map[string]string{"msg": "m", "default.msg": "dm"},
			bag:   "shop", typ: "info",
			want: "m",
		},
		{
			name:  "default.msg last",
			views: map[string]string{"default.msg": "dm"},
			bag:   "shop", typ: "info",
			want: "dm",
		},
		{
			name:  "present empty value wins",
			views: map[string]string{"error": "", "msg": "m"},
			bag:   "shop", typ: "error",
			want: "",
		},
		{
			name:  "no overrides",
			views: map[string]string{},
			bag:   "shop", typ: "info",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newManager(newSettings(func(c *flash.Config) {
				c.Views = tt.views
			}), nil)
			assert.Equal(t, tt.want, m.ViewFor(tt.bag, tt.typ))
		})
	}

	t.Run("registered view named bag.type", func(t *testing.T) {
		t.Parallel()
		engine := newStubEngine().with("shop.info", listView("x"))
		m := newManager(newSettings(func(c *flash.Config) {
			c.Views = map[string]string{"info": "other"}
		}), engine)
		assert.Equal(t, "shop.info", m.ViewFor("shop", "info"))
	})
}
