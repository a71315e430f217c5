package osc

import (
	"errors"
	"net"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// MaxPacketSize is the largest datagram the server will read. It matches the
// maximum UDP payload over IPv4.
const MaxPacketSize = 65507

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, MaxPacketSize)
		return &b
	},
}

// Server reads OSC packets from a UDP socket and dispatches them through a
// Registry. A handler's response, if any, is sent back to the datagram's
// source address. Malformed packets are logged and dropped; they never
// terminate the serve loop.
type Server struct {
	// Addr is the UDP address to listen on, e.g. ":8000".
	Addr string

	// Registry dispatches inbound messages. A nil Registry is replaced with an
	// empty one when serving starts.
	Registry *Registry

	// ReadTimeout bounds each read from the socket. Zero means no timeout.
	ReadTimeout time.Duration

	// Logger receives packet-level diagnostics. Defaults to the charm default
	// logger.
	Logger *charmlog.Logger

	conn net.PacketConn
}

// ListenAndServe binds the server's UDP address and serves until Close is
// called or the socket fails.
func (s *Server) ListenAndServe() error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve reads packets from the given connection and dispatches them. It
// returns nil after Close, or the first permanent read error.
func (s *Server) Serve(c net.PacketConn) error {
	if s.Registry == nil {
		s.Registry = NewRegistry()
	}
	log := s.Logger
	if log == nil {
		log = charmlog.Default()
	}
	s.conn = c

	var tempDelay time.Duration
	for {
		msg, raddr, err := s.read(c)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		if msg == nil {
			continue
		}

		resp := s.Registry.Dispatch(msg)
		if resp == nil {
			continue
		}
		if _, err := c.WriteTo(resp.Packet(), raddr); err != nil {
			log.Warn("failed to send response", "to", raddr, "error", err)
		}
	}
}

// read receives one datagram and parses it. Parse failures are logged and
// reported as a nil message with a nil error so the serve loop drops the
// packet and keeps listening.
func (s *Server) read(c net.PacketConn) (*Message, net.Addr, error) {
	log := s.Logger
	if log == nil {
		log = charmlog.Default()
	}

	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	b := bufPool.Get().(*[]byte)
	defer bufPool.Put(b)

	n, raddr, err := c.ReadFrom(*b)
	if err != nil {
		return nil, raddr, err
	}

	msg, err := Parse((*b)[:n])
	if msg == nil {
		log.Warn("dropping unparseable packet", "from", raddr, "size", n, "error", err)
		return nil, raddr, nil
	}
	if err != nil {
		// Unknown type tags: the message is still usable.
		log.Warn("partial parse", "from", raddr, "address", msg.Address, "error", err)
	}

	return msg, raddr, nil
}

// Close shuts the server's socket down, causing Serve to return nil.
func (s *Server) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
