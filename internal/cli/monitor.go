package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/ble"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/gocube"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print every message from a GoCube while tracking its state",
	Long: `Connect to the nearest GoCube and print each notification it sends.
Rotations are applied to a tracked cube that starts solved; pass --net to
print the facelet net after every move. Press Ctrl+C to exit.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

var monitorNet bool

func init() {
	monitorCmd.Flags().BoolVar(&monitorNet, "net", false, "Print the net after each move")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}

	fmt.Println("Scanning for GoCube...")
	scanCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	results, err := client.Scan(scanCtx, 5*time.Second)
	cancel()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return ble.ErrNoDevice
	}

	var mu sync.Mutex
	tracked := cube.New()
	client.SetMessageCallback(func(msg gocube.Message) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Print(describeMessage(msg, tracked, time.Now(), monitorNet))
	})

	if err := client.Connect(results[0]); err != nil {
		return err
	}
	defer client.Disconnect()
	if err := client.SendCommand(gocube.CmdRequestCubeType); err != nil {
		fmt.Printf("cube type request failed: %v\n", err)
	}

	fmt.Printf("Connected to: %s\n", client.DeviceName())
	fmt.Println("Make moves on the cube. The tracked cube starts SOLVED.")
	fmt.Println(strings.Repeat("-", 70))

	<-ctx.Done()
	fmt.Println("\nDisconnecting...")
	return nil
}

// describeMessage formats one notification, applying rotations to c.
func describeMessage(msg gocube.Message, c *cube.Cube, at time.Time, withNet bool) string {
	ts := at.Format("15:04:05.000")

	switch msg.Type {
	case gocube.MsgRotation:
		moves, err := gocube.Moves(msg, at)
		if err != nil {
			return fmt.Sprintf("[%s] ROTATION ERROR: %v\n", ts, err)
		}
		if err := c.ApplyMoves(moves...); err != nil {
			return fmt.Sprintf("[%s] ROTATION ERROR: %v\n", ts, err)
		}
		line := fmt.Sprintf("[%s] MOVE: %-6s | Solved: %v\n", ts, cube.FormatMoves(moves), c.IsSolved())
		if withNet {
			line += c.String()
		}
		return line

	case gocube.MsgBattery:
		lvl, err := gocube.DecodeBattery(msg.Payload)
		if err != nil {
			return fmt.Sprintf("[%s] BATTERY ERROR: %v\n", ts, err)
		}
		return fmt.Sprintf("[%s] BATTERY: %d%%\n", ts, lvl)

	case gocube.MsgCubeType:
		name, err := gocube.DecodeCubeType(msg.Payload)
		if err != nil {
			return fmt.Sprintf("[%s] CUBE_TYPE ERROR: %v\n", ts, err)
		}
		return fmt.Sprintf("[%s] CUBE_TYPE: %s\n", ts, name)

	default:
		return fmt.Sprintf("[%s] %s: %d bytes %X\n", ts, strings.ToUpper(gocube.TypeName(msg.Type)), len(msg.Payload), msg.Payload)
	}
}
