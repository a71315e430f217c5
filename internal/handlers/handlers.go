// Package handlers provides the daemon's built-in OSC method set: ping/echo
// diagnostics, a small arithmetic service and audio/MIDI/parameter state.
package handlers

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/soundctl/oscd/osc"
)

// Reply addresses for the built-in methods.
const (
	AddrPong        = "/pong"
	AddrEchoReply   = "/echo/reply"
	AddrInfoReply   = "/info/reply"
	AddrMathResult  = "/math/result"
	AddrVolumeAck   = "/audio/volume/ack"
	AddrNoteAck     = "/midi/note/ack"
	AddrParamAck    = "/control/param/ack"
	AddrShutdownAck = "/system/shutdown/ack"
)

// Options configures the built-in handler set.
type Options struct {
	// ServerName and Version are reported by /info.
	ServerName string
	Version    string

	// Stop is invoked by /system/shutdown. May be nil.
	Stop func()

	// Logger receives handler diagnostics. Defaults to the charm default
	// logger.
	Logger *charmlog.Logger
}

// Register installs the built-in method set on reg, along with a default
// handler that logs unmatched addresses.
func Register(reg *osc.Registry, st *State, opts Options) {
	log := opts.Logger
	if log == nil {
		log = charmlog.Default()
	}

	reg.RegisterFunc("/ping", func(*osc.Message) *osc.Message {
		return osc.NewMessage(AddrPong)
	})

	reg.RegisterFunc("/echo", func(msg *osc.Message) *osc.Message {
		reply := osc.NewMessage(AddrEchoReply)
		reply.Append(msg.Arguments...)
		return reply
	})

	reg.RegisterFunc("/info", func(*osc.Message) *osc.Message {
		return osc.NewMessage(AddrInfoReply,
			osc.String(opts.ServerName),
			osc.String(opts.Version),
			osc.Int32(len(reg.Addresses())),
		)
	})

	reg.RegisterFunc("/math/add", mathAdd(log))
	reg.RegisterFunc("/audio/volume", audioVolume(st, log))
	reg.RegisterFunc("/midi/note", midiNote(st, log))
	reg.RegisterFunc("/control/param", controlParam(st, log))

	reg.RegisterFunc("/system/shutdown", func(*osc.Message) *osc.Message {
		log.Info("shutdown requested")
		if opts.Stop != nil {
			opts.Stop()
		}
		return osc.NewMessage(AddrShutdownAck)
	})

	reg.SetDefault(osc.HandlerFunc(func(msg *osc.Message) *osc.Message {
		log.Debug("no handler for address", "message", msg)
		return nil
	}))
}

// mathAdd sums the first two numeric arguments. The result stays an Int32
// when both operands are stored as Int32; any float operand promotes it to
// Float32.
func mathAdd(log *charmlog.Logger) osc.HandlerFunc {
	return func(msg *osc.Message) *osc.Message {
		x, xok := msg.Float(0)
		y, yok := msg.Float(1)
		if !xok || !yok {
			log.Warn("/math/add needs two numeric arguments", "message", msg)
			return nil
		}

		_, xi := msg.Arguments[0].(osc.Int32)
		_, yi := msg.Arguments[1].(osc.Int32)
		if xi && yi {
			a, _ := msg.Int(0)
			b, _ := msg.Int(1)
			return osc.NewMessage(AddrMathResult, osc.Int32(a+b))
		}
		return osc.NewMessage(AddrMathResult, osc.Float32(x+y))
	}
}

// audioVolume stores the first numeric argument as the master volume, clamped
// to [0, 1].
func audioVolume(st *State, log *charmlog.Logger) osc.HandlerFunc {
	return func(msg *osc.Message) *osc.Message {
		v, ok := msg.Float(0)
		if !ok {
			log.Warn("/audio/volume needs a numeric argument", "message", msg)
			return nil
		}

		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		st.SetVolume(v)
		return osc.NewMessage(AddrVolumeAck, osc.Float32(v))
	}
}

// midiNote stores the first two numeric arguments as note and velocity,
// truncating floats and clamping to the MIDI range 0..127.
func midiNote(st *State, log *charmlog.Logger) osc.HandlerFunc {
	return func(msg *osc.Message) *osc.Message {
		note, nok := msg.Int(0)
		vel, vok := msg.Int(1)
		if !nok || !vok {
			log.Warn("/midi/note needs note and velocity", "message", msg)
			return nil
		}

		note = clampMIDI(note)
		vel = clampMIDI(vel)
		st.SetNote(note, vel)
		return osc.NewMessage(AddrNoteAck, osc.Int32(note), osc.Int32(vel))
	}
}

// controlParam sets a named parameter when a value argument is present, and
// reads it back otherwise.
func controlParam(st *State, log *charmlog.Logger) osc.HandlerFunc {
	return func(msg *osc.Message) *osc.Message {
		name, ok := msg.Str(0)
		if !ok {
			log.Warn("/control/param needs a parameter name", "message", msg)
			return nil
		}

		if v, ok := msg.Float(1); ok {
			st.SetParam(name, v)
			return osc.NewMessage(AddrParamAck, osc.String(name), osc.Float32(v))
		}

		v, ok := st.Param(name)
		if !ok {
			log.Warn("unknown parameter", "name", name)
			return nil
		}
		return osc.NewMessage(AddrParamAck, osc.String(name), osc.Float32(v))
	}
}

func clampMIDI(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return v
}
