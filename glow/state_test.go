package glow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
)

func TestStateImmediateIssuesCalls(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	s := NewState(ctx)
	r.Equal(StateImmediate, s.Mode())
	s.Enable(gl.BLEND)
	s.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	s.Viewport(Rect{Width: 640, Height: 480})

	r.True(api.IsEnabled(gl.BLEND))
	r.Equal([4]int32{0, 0, 640, 480}, api.ViewportRect())
	call, ok := api.LastCall("BlendFunc")
	r.True(ok)
	r.Equal([]any{gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA}, call.Args)
}

func TestStateDeferredAppliesLatestSettings(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	s := NewState(ctx, WithStateMode(StateDeferred))
	s.Enable(gl.DEPTH_TEST)
	s.Disable(gl.CULL_FACE)
	s.DepthFunc(gl.LESS)
	s.DepthFunc(gl.LEQUAL)
	s.DepthMask(false)
	s.LineWidth(2)
	api.ResetCalls()

	r.Zero(api.CallCount("Enable"))
	r.True(s.IsEnabled(gl.DEPTH_TEST))
	r.False(s.IsEnabled(gl.CULL_FACE))
	r.True(s.Contains(gl.CULL_FACE))
	r.False(s.Contains(gl.BLEND))
	r.Equal([]gl.Enum{gl.CULL_FACE, gl.DEPTH_TEST}, s.Capabilities())

	s.Apply()
	r.True(api.IsEnabled(gl.DEPTH_TEST))
	r.Equal(1, api.CallCount("Disable"))
	r.Equal(1, api.CallCount("DepthFunc"))
	call, _ := api.LastCall("DepthFunc")
	r.Equal([]any{gl.LEQUAL}, call.Args)
	call, _ = api.LastCall("DepthMask")
	r.Equal([]any{false}, call.Args)
	r.Zero(api.PendingErrors())

	s.SetMode(StateImmediate)
	s.SetEnabled(gl.BLEND, true)
	r.True(api.IsEnabled(gl.BLEND))
}

func TestCurrentStateRestoresCapabilities(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	api.Enable(gl.CULL_FACE)
	snapshot := CurrentState(ctx)
	r.Equal(StateDeferred, snapshot.Mode())
	r.True(snapshot.IsEnabled(gl.CULL_FACE))
	r.False(snapshot.IsEnabled(gl.BLEND))

	api.Disable(gl.CULL_FACE)
	api.Enable(gl.BLEND)
	snapshot.Apply()
	r.True(api.IsEnabled(gl.CULL_FACE))
	r.False(api.IsEnabled(gl.BLEND))

	only := CurrentState(ctx, gl.SCISSOR_TEST)
	r.Equal([]gl.Enum{gl.SCISSOR_TEST}, only.Capabilities())
}
