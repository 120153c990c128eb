package domain

type BroadcastChannel struct {
	// Registered subscribers.
	Clients map[chan []byte]bool

	// Outbound messages for all subscribers.
	Broadcast chan []byte

	Register chan chan []byte

	Unregister chan chan []byte

	Close chan struct{}
}

func NewHub() *BroadcastChannel {
	return &BroadcastChannel{
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan chan []byte),
		Unregister: make(chan chan []byte),
		Close:      make(chan struct{}),
		Clients:    make(map[chan []byte]bool),
	}
}

func (h *BroadcastChannel) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if h.Clients[client] {
				delete(h.Clients, client)
				close(client)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client <- message:
				default:
					// slow subscriber, drop it
					delete(h.Clients, client)
					close(client)
				}
			}
		case <-h.Close:
			for client := range h.Clients {
				delete(h.Clients, client)
				close(client)
			}
			return
		}
	}
}

// Subscribe returns a buffered channel fed with every broadcast, or nil if the hub is closed.
func (h *BroadcastChannel) Subscribe() chan []byte {
	client := make(chan []byte, 8)
	select {
	case h.Register <- client:
		return client
	case <-h.Close:
		return nil
	}
}

func (h *BroadcastChannel) Unsubscribe(client chan []byte) {
	select {
	case h.Unregister <- client:
	case <-h.Close:
	}
}

// Publish never blocks. Messages are dropped while the buffer is full.
func (h *BroadcastChannel) Publish(message []byte) bool {
	select {
	case h.Broadcast <- message:
		return true
	default:
		return false
	}
}

// Stop closes all subscriber channels and ends Run. Only call it once.
func (h *BroadcastChannel) Stop() {
	close(h.Close)
}
