package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	msgs, err := s.ListMessages(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	err = s.SaveMessage(ctx, "user-1", Message{Sender: "alice", Time: time.Now(), Payload: "hi"})
	require.NoError(t, err)
	err = s.SaveMessage(ctx, "user-1", Message{Sender: "carol", Time: time.Now(), Payload: "hello"})
	require.NoError(t, err)

	msgs, err = s.ListMessages(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, "carol", msgs[1].Sender)

	other, err := s.ListMessages(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
