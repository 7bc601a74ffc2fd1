package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/ble"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCube devices",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

var scanTimeout time.Duration

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to listen")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Println("Scanning for GoCube devices...")

	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()
	results, err := client.Scan(ctx, scanTimeout)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No GoCube devices found.")
		fmt.Println()
		fmt.Println("To fix this:")
		fmt.Println("  1. Rotate your cube to wake it up")
		fmt.Println("  2. Make sure it's not connected to your phone")
		fmt.Println("  3. Run this command again")
		return nil
	}

	for _, r := range results {
		fmt.Printf("%-20s %-20s %4d dBm\n", r.Name, r.Address.String(), r.RSSI)
	}
	return nil
}
