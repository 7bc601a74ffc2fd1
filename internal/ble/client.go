// Package ble talks to GoCube smart cubes over Bluetooth Low Energy.
package ble

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/cubeview/internal/gocube"
)

var (
	ErrNotConnected     = errors.New("ble: not connected")
	ErrAlreadyConnected = errors.New("ble: already connected")
	ErrNoDevice         = errors.New("ble: no GoCube found")
)

var (
	serviceUUID = bluetooth.NewUUID(uuid.MustParse(gocube.ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(uuid.MustParse(gocube.TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(uuid.MustParse(gocube.RxCharUUID))
)

// ScanResult is a discovered cube.
type ScanResult struct {
	Name    string
	Address bluetooth.Address
	RSSI    int16
}

// IsGoCube reports whether an advertised name belongs to a GoCube.
func IsGoCube(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "gocube")
}

// Client manages one BLE connection.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic

	mu        sync.RWMutex
	connected bool
	name      string
	battery   int

	onMessage func(gocube.Message)
}

// NewClient enables the default adapter.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("ble: enable adapter: %w", err)
	}
	return &Client{adapter: adapter, battery: -1}, nil
}

// SetMessageCallback sets the handler for parsed notifications. It runs on
// the BLE stack's goroutine.
func (c *Client) SetMessageCallback(cb func(gocube.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// Scan listens for advertisements until timeout or ctx is done and returns
// the cubes seen, strongest signal first.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		done    = make(chan error, 1)
	)
	go func() {
		done <- c.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			name := r.LocalName()
			if !IsGoCube(name) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			addr := r.Address.String()
			if seen[addr] {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{Name: name, Address: r.Address, RSSI: r.RSSI})
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("ble: scan: %w", err)
		}
	}
	c.adapter.StopScan()

	mu.Lock()
	defer mu.Unlock()
	sort.SliceStable(results, func(i, j int) bool { return results[i].RSSI > results[j].RSSI })
	return results, nil
}

// Connect opens the UART service on a scanned cube and subscribes to its
// notifications.
func (c *Client) Connect(r ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(r.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("ble: connect %s: %w", r.Name, err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("ble: discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return fmt.Errorf("ble: UART service not found on %s", r.Name)
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("ble: discover characteristics: %w", err)
	}

	var tx, rx bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx = ch
		case rxCharUUID:
			rx = ch
		}
	}
	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("ble: enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rx
	c.connected = true
	c.name = r.Name
	c.mu.Unlock()

	return c.SendCommand(gocube.CmdRequestBattery)
}

// Disconnect closes the connection. It is a no-op when not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.name = ""
	c.battery = -1
	return err
}

func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Battery returns the last reported level, or -1 if unknown.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command frame to the cube. The RX characteristic
// takes writes without response on every platform.
func (c *Client) SendCommand(code byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected {
		return ErrNotConnected
	}
	if _, err := c.rxChar.WriteWithoutResponse(gocube.BuildCommand(code)); err != nil {
		return fmt.Errorf("ble: write command 0x%02X: %w", code, err)
	}
	return nil
}

func (c *Client) handleNotification(data []byte) {
	msg, err := gocube.ParseMessage(data)
	if err != nil {
		return
	}

	if msg.Type == gocube.MsgBattery {
		if lvl, err := gocube.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = lvl
			c.mu.Unlock()
		}
	}

	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()
	if cb != nil {
		cb(msg)
	}
}
