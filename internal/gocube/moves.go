package gocube

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Rotation is a single face turn reported by the cube.
type Rotation struct {
	Code      byte   // face and direction, 0x00-0x0B
	Center    byte   // center cap orientation
	Color     string // color of the turned face's center
	Clockwise bool
}

// rotationColors is indexed by Code/2.
var rotationColors = [...]string{"blue", "green", "white", "yellow", "red", "orange"}

// ColorToFace maps center colors to faces, white up and green front.
var ColorToFace = map[string]cube.Face{
	"white":  cube.FaceU,
	"yellow": cube.FaceD,
	"green":  cube.FaceF,
	"blue":   cube.FaceB,
	"red":    cube.FaceR,
	"orange": cube.FaceL,
}

// DecodeRotations decodes a rotation payload made of (code, center) pairs.
func DecodeRotations(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: rotation payload has odd length %d", ErrBadPayload, len(payload))
	}

	out := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(rotationColors) {
			return nil, fmt.Errorf("%w: rotation code 0x%02X", ErrBadPayload, code)
		}
		out = append(out, Rotation{
			Code:      code,
			Center:    payload[i+1],
			Color:     rotationColors[idx],
			Clockwise: code%2 == 0,
		})
	}
	return out, nil
}

// Move converts the rotation to a quarter turn stamped with t.
func (r Rotation) Move(t time.Time) cube.Move {
	return cube.Move{
		Face:    ColorToFace[r.Color],
		Inverse: !r.Clockwise,
		Time:    t,
	}
}

// Moves decodes a rotation message into moves. Other message types yield
// no moves.
func Moves(msg Message, t time.Time) ([]cube.Move, error) {
	if msg.Type != MsgRotation {
		return nil, nil
	}
	rots, err := DecodeRotations(msg.Payload)
	if err != nil {
		return nil, err
	}
	moves := make([]cube.Move, len(rots))
	for i, r := range rots {
		moves[i] = r.Move(t)
	}
	return moves, nil
}

// DecodeBattery returns the battery level in percent.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("%w: empty battery payload", ErrBadPayload)
	}
	return int(payload[0]), nil
}

// DecodeCubeType names the cube model.
func DecodeCubeType(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", fmt.Errorf("%w: empty cube type payload", ErrBadPayload)
	}
	if payload[0] == 0x01 {
		return "edge", nil
	}
	return "standard", nil
}
