package eventbus

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

func TestBus_PublishOrderAndFilter(t *testing.T) {
	bus := New()
	ctx := context.Background()

	var got []string
	bus.Subscribe(func(_ context.Context, e entity.WmEvent) { got = append(got, "all:"+string(e.Type)) })
	bus.Subscribe(func(_ context.Context, e entity.WmEvent) { got = append(got, "focus:"+string(e.Type)) }, entity.EventFocusChanged)

	bus.Publish(ctx, entity.WmEvent{Type: entity.EventWindowManaged})
	bus.Publish(ctx, entity.WmEvent{Type: entity.EventFocusChanged})

	assert.Equal(t, []string{
		"all:window_managed",
		"all:focus_changed",
		"focus:focus_changed",
	}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	calls := 0
	unsubscribe := bus.Subscribe(func(context.Context, entity.WmEvent) { calls++ })
	require.Equal(t, 1, bus.Len())

	bus.Publish(context.Background(), entity.WmEvent{Type: entity.EventFocusChanged})
	unsubscribe()
	bus.Publish(context.Background(), entity.WmEvent{Type: entity.EventFocusChanged})

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Len())
}

func TestBus_HandlerMaySubscribe(t *testing.T) {
	bus := New()
	bus.Subscribe(func(context.Context, entity.WmEvent) {
		bus.Subscribe(func(context.Context, entity.WmEvent) {})
	})

	bus.Publish(context.Background(), entity.WmEvent{Type: entity.EventFocusChanged})
	assert.Equal(t, 2, bus.Len())
}

func TestCollector(t *testing.T) {
	bus := New()
	collector := &Collector{}
	bus.Subscribe(collector.Handle)

	bus.Publish(context.Background(), entity.BindingModesChanged([]entity.BindingMode{{Name: "resize"}}))

	events := collector.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventBindingModesChanged, events[0].Type)
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	LogHandler(ctx, entity.WmEvent{Type: entity.EventWindowUnmanaged, ContainerID: "c7"})
	LogHandler(ctx, entity.BindingModesChanged([]entity.BindingMode{{Name: "resize"}, {Name: "pause"}}))

	out := buf.String()
	assert.Contains(t, out, `"event":"window_unmanaged"`)
	assert.Contains(t, out, `"container_id":"c7"`)
	assert.Contains(t, out, `"binding_modes":["resize","pause"]`)
}
