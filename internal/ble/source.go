package ble

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/gocube"
)

// Source turns a connected cube's rotation notifications into moves.
type Source struct {
	client *Client
	log    zerolog.Logger

	mu     sync.Mutex
	closed bool
	moves  chan cube.Move
	now    func() time.Time
}

func newSource(c *Client, log zerolog.Logger) *Source {
	return &Source{
		client: c,
		log:    log,
		moves:  make(chan cube.Move, 64),
		now:    time.Now,
	}
}

// Open scans for cubes, connects to the strongest one and starts
// forwarding its moves.
func Open(ctx context.Context, scanTimeout time.Duration, log zerolog.Logger) (*Source, error) {
	c, err := NewClient()
	if err != nil {
		return nil, err
	}
	results, err := c.Scan(ctx, scanTimeout)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoDevice
	}

	s := newSource(c, log)
	c.SetMessageCallback(s.deliver)
	if err := c.Connect(results[0]); err != nil {
		return nil, err
	}
	log.Info().Str("device", results[0].Name).Int16("rssi", results[0].RSSI).Msg("cube connected")
	return s, nil
}

// Moves delivers decoded moves. It is closed by Close.
func (s *Source) Moves() <-chan cube.Move { return s.moves }

// Name returns the connected cube's advertised name.
func (s *Source) Name() string {
	if s.client == nil {
		return ""
	}
	return s.client.DeviceName()
}

// Close disconnects and closes the move channel.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.moves)
	s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	return s.client.Disconnect()
}

func (s *Source) deliver(msg gocube.Message) {
	moves, err := gocube.Moves(msg, s.now())
	if err != nil {
		s.log.Warn().Err(err).Msg("bad rotation message")
		return
	}
	if len(moves) == 0 {
		s.log.Debug().Str("type", gocube.TypeName(msg.Type)).Msg("cube message")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, m := range moves {
		select {
		case s.moves <- m:
		default:
			s.log.Warn().Str("move", m.Notation()).Msg("move dropped, viewer not keeping up")
		}
	}
}
