package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-utils/pkg/models"
)

func TestSessionAppendKeepsOrder(t *testing.T) {
	session := &Session{ID: "s1"}

	session.Append("hello", models.SenderUser)
	session.Append("hi there", models.SenderAgent)
	session.Append("find me a job", models.SenderUser)

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, "hello", history[0].Text)
	assert.Equal(t, models.SenderUser, history[0].Sender)
	assert.Equal(t, "hi there", history[1].Text)
	assert.Equal(t, models.SenderAgent, history[1].Sender)
	assert.Equal(t, "find me a job", history[2].Text)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestSessionHistoryReturnsCopy(t *testing.T) {
	session := &Session{ID: "s1"}
	session.Append("original", models.SenderUser)

	history := session.History()
	history[0].Text = "mutated"

	assert.Equal(t, "original", session.History()[0].Text)
}

func TestSessionMaxHistoryCap(t *testing.T) {
	session := &Session{ID: "s1", maxHistory: 2}

	session.Append("one", models.SenderUser)
	session.Append("two", models.SenderAgent)
	session.Append("three", models.SenderUser)

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, "two", history[0].Text)
	assert.Equal(t, "three", history[1].Text)
}

func TestSessionStoreCreatesAndReuses(t *testing.T) {
	store := NewSessionStore(0)

	first := store.Get("conv-1")
	second := store.Get("conv-1")
	other := store.Get("conv-2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, store.Count())
}

func TestSessionStoreGeneratesID(t *testing.T) {
	store := NewSessionStore(0)

	session := store.Get("")

	assert.NotEmpty(t, session.ID)
	assert.Same(t, session, store.Get(session.ID))
}
