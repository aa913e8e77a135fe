// internal/agents/invoker_test.go
package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

type fakeStream struct {
	events chan types.ResponseStream
	err    error
	closed bool
}

func newFakeStream(err error, chunks ...string) *fakeStream {
	ch := make(chan types.ResponseStream, len(chunks)+1)
	for _, c := range chunks {
		ch <- &types.ResponseStreamMemberChunk{
			Value: types.PayloadPart{Bytes: []byte(c)},
		}
	}
	close(ch)
	return &fakeStream{events: ch, err: err}
}

func (f *fakeStream) Events() <-chan types.ResponseStream { return f.events }
func (f *fakeStream) Err() error                          { return f.err }
func (f *fakeStream) Close() error                        { f.closed = true; return nil }

// ==========================
// Reassembly Tests
// ==========================

func TestReassemble_ConcatenatesChunksInOrder(t *testing.T) {
	tests := []struct {
		name     string
		chunks   []string
		expected string
	}{
		{
			name:     "two partial chunks",
			chunks:   []string{"Hel", "lo"},
			expected: "Hello",
		},
		{
			name:     "single chunk",
			chunks:   []string{"complete answer"},
			expected: "complete answer",
		},
		{
			name:     "no chunks",
			chunks:   nil,
			expected: "",
		},
		{
			name:     "multibyte text split across chunks",
			chunks:   []string{"port", "folio \xf0\x9f\x92", "\xa1"},
			expected: "portfolio 💡",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion, err := reassemble(context.Background(), newFakeStream(nil, tt.chunks...))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, completion)
		})
	}
}

func TestReassemble_StreamErrorDiscardsPartial(t *testing.T) {
	streamErr := errors.New("connection reset")

	completion, err := reassemble(context.Background(), newFakeStream(streamErr, "partial "))

	require.Error(t, err)
	assert.ErrorIs(t, err, streamErr)
	assert.Empty(t, completion)
}

func TestReassemble_ContextCancellation(t *testing.T) {
	// An open channel with no events models a stalled stream.
	stalled := &fakeStream{events: make(chan types.ResponseStream)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	completion, err := reassemble(ctx, stalled)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, completion)
}

func TestReassemble_IgnoresNonChunkEvents(t *testing.T) {
	ch := make(chan types.ResponseStream, 3)
	ch <- &types.ResponseStreamMemberChunk{Value: types.PayloadPart{Bytes: []byte("Hel")}}
	ch <- &types.ResponseStreamMemberTrace{}
	ch <- &types.ResponseStreamMemberChunk{Value: types.PayloadPart{Bytes: []byte("lo")}}
	close(ch)

	completion, err := reassemble(context.Background(), &fakeStream{events: ch})

	require.NoError(t, err)
	assert.Equal(t, "Hello", completion)
}
