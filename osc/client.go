package osc

import (
	"net"
	"time"
)

// Client sends OSC messages to a server over UDP.
type Client struct {
	conn *net.UDPConn
}

// Dial creates a new Client with a connection to the given server address.
func Dial(addr string) (*Client, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send encodes the message and sends it to the server as a single datagram.
func (c *Client) Send(msg *Message) error {
	_, err := c.conn.Write(msg.Packet())
	return err
}

// Receive reads one datagram from the connection into b, returning the number
// of bytes read. Useful for request/reply exchanges with servers that answer
// to the sender.
func (c *Client) Receive(b []byte) (int, error) {
	n, _, err := c.conn.ReadFromUDP(b)
	return n, err
}

// SetReadDeadline bounds future Receive calls.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// LocalAddr returns the local address the client sends from.
func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	return c.conn.Close()
}
