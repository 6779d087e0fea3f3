package client

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/easelhq/easel/api"
)

func TestSynthesisStore_LoadSection(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodSynthesisGet, func(raw json.RawMessage) (any, error) {
		p := decodeParams[api.SynthesisGetParams](t, raw)
		return api.Synthesis{SectionKey: p.SectionKey, Content: "stored text"}, nil
	})
	s := NewSynthesisStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	require.NoError(t, s.Load(context.Background(), "leading"))
	require.Equal(t, "stored text", s.Content("leading"))
	require.Empty(t, s.Content("themes"))
}

func TestSynthesisStore_TypingBurstSavesOnce(t *testing.T) {
	rpc := newFakeRPC()
	s := NewSynthesisStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	s.SetContent("leading", "T")
	s.SetContent("leading", "The")
	s.SetContent("leading", "The throughline is trust.")
	s.queue.Flush()

	upserts := rpc.callsFor(api.MethodSynthesisUpsert)
	require.Len(t, upserts, 1)
	p := decodeParams[api.SynthesisUpsertParams](t, upserts[0].params)
	require.Equal(t, "leading", p.SectionKey)
	require.Equal(t, "The throughline is trust.", p.Content)
}

func TestSynthesisStore_SectionsSaveIndependently(t *testing.T) {
	rpc := newFakeRPC()
	s := NewSynthesisStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	s.SetContent("leading", "a")
	s.SetContent("themes", "b")
	s.queue.Flush()

	require.Len(t, rpc.callsFor(api.MethodSynthesisUpsert), 2)
}

func TestSynthesisStore_ReadOnlyNoOps(t *testing.T) {
	rpc := newFakeRPC()
	s := NewSynthesisStore(rpc, testQueue(t), validSession(t, rpc, false), nil)
	before := rpc.callCount()

	s.SetContent("leading", "blocked")
	s.queue.Flush()

	require.Equal(t, before, rpc.callCount())
	require.Empty(t, s.Content("leading"))
}
