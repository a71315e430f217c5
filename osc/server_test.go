package osc

import (
	"io"
	"net"
	"testing"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// startTestServer serves on a loopback UDP socket and returns its address.
func startTestServer(t *testing.T, reg *Registry) (string, *Server) {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() error = %v", err)
	}

	s := &Server{
		Registry: reg,
		Logger:   charmlog.New(io.Discard),
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(conn) }()

	t.Cleanup(func() {
		conn.Close()
		if err := <-done; err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	})

	return conn.LocalAddr().String(), s
}

func TestServerRequestReply(t *testing.T) {
	reg := quietRegistry()
	reg.RegisterFunc("/ping", func(msg *Message) *Message {
		return NewMessage("/pong")
	})

	addr, _ := startTestServer(t, reg)

	client, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	if err := client.Send(NewMessage("/ping")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	reply := receiveMessage(t, client)
	if reply.Address != "/pong" {
		t.Errorf("reply address = %q, want %q", reply.Address, "/pong")
	}
}

func TestServerNoResponse(t *testing.T) {
	reg := quietRegistry()
	reg.RegisterFunc("/silent", func(msg *Message) *Message { return nil })

	addr, _ := startTestServer(t, reg)

	client, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	if err := client.Send(NewMessage("/silent")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if err := client.SetReadDeadline(time.Now().Add(100 * time.Millisecond)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	buf := make([]byte, MaxPacketSize)
	if n, err := client.Receive(buf); err == nil {
		t.Errorf("unexpected reply of %d bytes", n)
	}
}

// TestServerSurvivesMalformedPacket sends garbage before a valid request and
// expects the server to drop the garbage and keep answering.
func TestServerSurvivesMalformedPacket(t *testing.T) {
	reg := quietRegistry()
	reg.RegisterFunc("/ping", func(msg *Message) *Message {
		return NewMessage("/pong")
	})

	addr, _ := startTestServer(t, reg)

	client, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	raw, err := net.Dial("udp", addr)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer raw.Close()
	if _, err := raw.Write([]byte("definitely not osc")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := client.Send(NewMessage("/ping")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	reply := receiveMessage(t, client)
	if reply.Address != "/pong" {
		t.Errorf("reply address = %q, want %q", reply.Address, "/pong")
	}
}

func TestServerEchoArguments(t *testing.T) {
	reg := quietRegistry()
	reg.RegisterFunc("/echo", func(msg *Message) *Message {
		reply := NewMessage("/echo/reply")
		reply.Append(msg.Arguments...)
		return reply
	})

	addr, _ := startTestServer(t, reg)

	client, err := Dial(addr)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	sent := NewMessage("/echo", Int32(123), Float32(45.67), String("test string"), Blob{9, 8, 7})
	if err := client.Send(sent); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	reply := receiveMessage(t, client)
	want := NewMessage("/echo/reply", sent.Arguments...)
	if !reply.Equal(want) {
		t.Errorf("reply = %v, want %v", reply, want)
	}
}

func receiveMessage(t *testing.T, client *Client) *Message {
	t.Helper()

	if err := client.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}

	buf := make([]byte, MaxPacketSize)
	n, err := client.Receive(buf)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}

	msg, err := Parse(buf[:n])
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return msg
}
