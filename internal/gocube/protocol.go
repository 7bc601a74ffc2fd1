// Package gocube implements the wire protocol spoken by GoCube smart cubes
// over BLE: notification frame parsing, command frames, and decoding of
// face rotations into cube moves.
package gocube

import (
	"errors"
	"fmt"
)

// Nordic UART service used by the cube.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message types
const (
	MsgRotation    byte = 0x01
	MsgState       byte = 0x02
	MsgOrientation byte = 0x03
	MsgBattery     byte = 0x05
	MsgCubeType    byte = 0x08
)

// Command codes written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdFlashBacklight     byte = 0x41
	CmdRequestCubeType    byte = 0x56
)

const (
	framePrefix byte = 0x2A // '*'
	frameCR     byte = 0x0D
	frameLF     byte = 0x0A
)

var (
	ErrShortFrame  = errors.New("gocube: frame too short")
	ErrBadPrefix   = errors.New("gocube: invalid frame prefix")
	ErrBadSuffix   = errors.New("gocube: invalid frame suffix")
	ErrBadLength   = errors.New("gocube: invalid frame length")
	ErrBadChecksum = errors.New("gocube: invalid checksum")
	ErrBadPayload  = errors.New("gocube: invalid payload")
)

// Message is one decoded notification.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseMessage validates a raw notification and extracts its payload.
//
// Frame layout: 0x2A, len, type, payload..., checksum, CR, LF. len counts
// every byte after itself. The checksum is the byte sum of everything
// before it.
func ParseMessage(data []byte) (Message, error) {
	if len(data) < 6 {
		return Message{}, ErrShortFrame
	}
	if data[0] != framePrefix {
		return Message{}, ErrBadPrefix
	}

	n := 2 + int(data[1])
	if n < 6 || len(data) < n {
		return Message{}, fmt.Errorf("%w: header says %d bytes, got %d", ErrBadLength, n, len(data))
	}
	if data[n-2] != frameCR || data[n-1] != frameLF {
		return Message{}, ErrBadSuffix
	}

	sumIdx := n - 3
	if got, want := checksum(data[:sumIdx]), data[sumIdx]; got != want {
		return Message{}, fmt.Errorf("%w: want 0x%02X, got 0x%02X", ErrBadChecksum, want, got)
	}

	payload := make([]byte, sumIdx-3)
	copy(payload, data[3:sumIdx])
	return Message{Type: data[2], Payload: payload}, nil
}

// BuildCommand frames a payload-less command.
func BuildCommand(code byte) []byte {
	const length = 0x04 // code, checksum, CR, LF
	frame := []byte{framePrefix, length, code, 0, frameCR, frameLF}
	frame[3] = checksum(frame[:3])
	return frame
}

func checksum(b []byte) byte {
	var s byte
	for _, v := range b {
		s += v
	}
	return s
}

// TypeName returns a readable name for a message type.
func TypeName(t byte) string {
	switch t {
	case MsgRotation:
		return "rotation"
	case MsgState:
		return "state"
	case MsgOrientation:
		return "orientation"
	case MsgBattery:
		return "battery"
	case MsgCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", t)
	}
}
