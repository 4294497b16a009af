// This file contains the NetTick net-message.

package demomsg

import "google.golang.org/protobuf/encoding/protowire"

// NetTick is the decoded form of a CNETMsg_Tick message: a periodic
// timing beacon. The parser forwards its raw body to the sink as a
// NetMessage event; the sink's Tick event carries command-record ticks.
type NetTick struct {
	Tick                           uint32
	HostComputationTime            uint32
	HostFrameStartTimeStdDeviation uint32
}

// Unmarshal decodes data as a CNETMsg_Tick message.
func (m *NetTick) Unmarshal(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) (int, error) {
		switch num {
		case 1: // tick
			v, n, err := consumeVarint(value)
			m.Tick = uint32(v)
			return n, err
		case 2: // host_computationtime
			v, n, err := consumeVarint(value)
			m.HostComputationTime = uint32(v)
			return n, err
		case 3: // host_framestarttime_std_deviation
			v, n, err := consumeVarint(value)
			m.HostFrameStartTimeStdDeviation = uint32(v)
			return n, err
		default:
			return skipField(typ, value)
		}
	})
}
