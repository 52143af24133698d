package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubBroadcastSkipsSender(t *testing.T) {
	h := NewHub()
	a := &socketClient{send: make(chan []byte, 1)}
	b := &socketClient{send: make(chan []byte, 1)}
	other := &socketClient{send: make(chan []byte, 1)}
	h.join("p1", a)
	h.join("p1", b)
	h.join("p2", other)

	h.broadcast("p1", a, []byte("hello"))

	assert.Empty(t, a.send)
	assert.Equal(t, []byte("hello"), <-b.send)
	assert.Empty(t, other.send)
}

func TestHubDropsWhenFull(t *testing.T) {
	h := NewHub()
	slow := &socketClient{send: make(chan []byte, 1)}
	h.join("p", slow)

	h.broadcast("p", nil, []byte("1"))
	h.broadcast("p", nil, []byte("2"))

	assert.Len(t, slow.send, 1)
	assert.Equal(t, []byte("1"), <-slow.send)
}

func TestHubLeave(t *testing.T) {
	h := NewHub()
	c := &socketClient{send: make(chan []byte, 1)}
	h.join("p", c)
	assert.Equal(t, 1, h.Connections("p"))

	h.leave("p", c)
	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, 0, h.Connections("p"))

	// a second leave must not close the channel twice
	h.leave("p", c)
	h.reply("p", c, []byte("ignored"))
}
