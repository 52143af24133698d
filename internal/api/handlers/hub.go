package handlers

import "sync"

// socketClient is one websocket connection joined to a project room.
type socketClient struct {
	send chan []byte
}

// Hub fans document updates out to every connection on the same project.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*socketClient]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*socketClient]struct{})}
}

func (h *Hub) join(room string, c *socketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[room]
	if !ok {
		clients = make(map[*socketClient]struct{})
		h.rooms[room] = clients
	}
	clients[c] = struct{}{}
}

// leave removes c and closes its send channel, which stops its writer.
func (h *Hub) leave(room string, c *socketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[room]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, room)
	}
}

// broadcast sends msg to every client in room except from. Slow clients
// drop the message instead of blocking the sender.
func (h *Hub) broadcast(room string, from *socketClient, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		if c == from {
			continue
		}
		select {
		case c.send <- msg:
		default:
		}
	}
}

// reply queues msg for c alone.
func (h *Hub) reply(room string, c *socketClient, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.rooms[room][c]; !ok {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

// Connections counts the clients joined to room.
func (h *Hub) Connections(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
