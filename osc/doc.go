// Package osc implements the Open Sound Control 1.0 wire codec over UDP,
// together with an address-keyed dispatch registry.
//
// This implementation covers the OSC 1.0 message subset
// (http://opensoundcontrol.org/spec-1_0.html): an address string plus an
// ordered list of arguments tagged
//
//	'i' (Int32)
//	'f' (Float32)
//	's' (String)
//	'b' (Blob)
//
// Bundles, timetags, the extended argument types and address pattern matching
// are out of scope. Dispatch is by exact, case-sensitive address equality.
//
// Sending a message:
//
//	client, err := osc.Dial("localhost:8000")
//	if err != nil { ... }
//	defer client.Close()
//	client.Send(osc.NewMessage("/audio/volume", osc.Float32(0.75)))
//
// Receiving and answering:
//
//	reg := osc.NewRegistry()
//	reg.RegisterFunc("/ping", func(*osc.Message) *osc.Message {
//		return osc.NewMessage("/pong")
//	})
//
//	server := &osc.Server{Addr: ":8000", Registry: reg}
//	server.ListenAndServe()
//
// The codec itself is stateless: Parse and Message.Packet may be called
// concurrently from any number of goroutines.
package osc
