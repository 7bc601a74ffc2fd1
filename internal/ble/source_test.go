package ble

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/gocube"
)

func TestIsGoCube(t *testing.T) {
	assert.True(t, IsGoCube("GoCube_1A2B"))
	assert.True(t, IsGoCube("gocube edge"))
	assert.False(t, IsGoCube("Rubiks Connected"))
	assert.False(t, IsGoCube(""))
}

func TestSourceDeliver(t *testing.T) {
	s := newSource(nil, zerolog.Nop())
	now := time.Unix(1700000000, 0)
	s.now = func() time.Time { return now }

	s.deliver(gocube.Message{Type: gocube.MsgRotation, Payload: []byte{0x04, 0x00, 0x09, 0x00}})
	s.deliver(gocube.Message{Type: gocube.MsgBattery, Payload: []byte{90}})
	s.deliver(gocube.Message{Type: gocube.MsgRotation, Payload: []byte{0x04}})

	require.Len(t, s.moves, 2)
	assert.Equal(t, cube.Move{Face: cube.FaceU, Time: now}, <-s.Moves())
	assert.Equal(t, cube.Move{Face: cube.FaceR, Inverse: true, Time: now}, <-s.Moves())
}

func TestSourceClose(t *testing.T) {
	s := newSource(nil, zerolog.Nop())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, ok := <-s.Moves()
	assert.False(t, ok)

	// Late notifications after close are discarded.
	s.deliver(gocube.Message{Type: gocube.MsgRotation, Payload: []byte{0x00, 0x00}})
	assert.Equal(t, "", s.Name())
}

func TestSourceDropsWhenFull(t *testing.T) {
	s := newSource(nil, zerolog.Nop())
	payload := make([]byte, 0, 2*(cap(s.moves)+5))
	for i := 0; i < cap(s.moves)+5; i++ {
		payload = append(payload, 0x02, 0x00)
	}
	s.deliver(gocube.Message{Type: gocube.MsgRotation, Payload: payload})
	assert.Len(t, s.moves, cap(s.moves))
}

func TestClientNotConnected(t *testing.T) {
	c := &Client{battery: -1}
	assert.False(t, c.IsConnected())
	assert.ErrorIs(t, c.SendCommand(gocube.CmdRequestBattery), ErrNotConnected)
	assert.NoError(t, c.Disconnect())
	assert.Equal(t, -1, c.Battery())
}

func TestClientHandleNotification(t *testing.T) {
	c := &Client{battery: -1}
	var got []gocube.Message
	c.SetMessageCallback(func(msg gocube.Message) { got = append(got, msg) })

	// 0x2A, len, battery, 64%, checksum, CR, LF
	c.handleNotification([]byte{0x2A, 0x05, gocube.MsgBattery, 0x40, 0x74, 0x0D, 0x0A})
	assert.Equal(t, 64, c.Battery())
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0x40}, got[0].Payload)

	// Corrupt frames are dropped.
	c.handleNotification([]byte{0x2A, 0x05, gocube.MsgBattery, 0x40, 0x00, 0x0D, 0x0A})
	assert.Len(t, got, 1)
	assert.Equal(t, 64, c.Battery())
}
