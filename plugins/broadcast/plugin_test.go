package broadcast_test

import (
	"context"
	"testing"

	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/internal/render"
	"github.com/mk/hookline/plugins/broadcast"
	"github.com/stretchr/testify/require"
)

func TestBind_InertWithoutURL(t *testing.T) {
	t.Parallel()

	l := hook.NewLoader()
	broadcast.New().Bind(l)

	require.Empty(t, l.Actions())
}

func TestBind_OneBindingPerConfiguredEvent(t *testing.T) {
	t.Parallel()

	p := broadcast.New()
	s := p.Settings().(*broadcast.Settings)
	s.URL = "wss://live.example.test/socket.io"
	s.Events = []string{render.ActionContentLoad, render.ActionRenderComplete}

	l := hook.NewLoader()
	p.Bind(l)

	actions := l.Actions()
	require.Len(t, actions, 2)
	require.Equal(t, render.ActionContentLoad, actions[0].Hook)
	require.Equal(t, render.ActionRenderComplete, actions[1].Hook)
	require.NoError(t, l.Validate(context.Background()))
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	s := broadcast.New().Settings().(*broadcast.Settings)
	require.Equal(t, "/", s.Namespace)
	require.Equal(t, "hookline", s.EmitEvent)
	require.Equal(t, []string{render.ActionRenderComplete}, s.Events)
	require.Equal(t, "10s", s.Timeout)
}
