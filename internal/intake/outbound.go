package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrOutboundClosed is returned for events emitted after teardown.
var ErrOutboundClosed = errors.New("outbound connection closed")

// outbound serialises frame writes from the two loops onto one connection.
// Once shut down it never touches the connection again.
type outbound struct {
	mu     sync.Mutex
	conn   Conn
	closed bool
}

func newOutbound(conn Conn) *outbound {
	return &outbound{conn: conn}
}

func (o *outbound) send(event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrOutboundClosed
	}
	return o.conn.WriteMessage(data)
}

func (o *outbound) shutdown() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
}

// closeConn closes the connection unless teardown already happened.
func (o *outbound) closeConn() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	o.conn.Close()
}
