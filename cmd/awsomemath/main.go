// Package main provides the terminal entrypoint for awsomemath.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"awsomemath/internal/config"
	"awsomemath/internal/tui"
	"awsomemath/internal/volume"
)

var (
	accent string
	width  int

	volumeShape string

	computeLength string
	computeRadius string
	computeHeight string
	computeWidth  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "awsomemath",
		Short:        "Integer and volume calculators for the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, shape, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			return runProgram(tui.NewStartModel(theme, shape))
		},
	}

	rootCmd.PersistentFlags().StringVar(&accent, "accent", string(tui.DefaultTheme().Accent), "colour of the result line")
	rootCmd.PersistentFlags().IntVar(&width, "width", tui.DefaultTheme().Width, "display width in cells")
	rootCmd.PersistentFlags().StringVar(&volumeShape, "shape", volume.DefaultShape, "shape selected when the volume calculator opens")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newVolumeCmd())
	rootCmd.AddCommand(newShapesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Open the integer calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, _, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			return runProgram(tui.NewCalculatorModel(theme, true))
		},
	}
}

func newVolumeCmd() *cobra.Command {
	volumeCmd := &cobra.Command{
		Use:   "volume",
		Short: "Open the volume calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, shape, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			return runProgram(tui.NewVolumeModel(theme, shape, true))
		},
	}

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Print the volume of the shape chosen with --shape",
		Args:  cobra.NoArgs,
		RunE:  runComputeCmd,
	}
	computeCmd.Flags().StringVar(&computeLength, volume.DimLength, "", "length")
	computeCmd.Flags().StringVar(&computeRadius, volume.DimRadius, "", "radius")
	computeCmd.Flags().StringVar(&computeHeight, volume.DimHeight, "", "height")
	computeCmd.Flags().StringVar(&computeWidth, volume.DimWidth, "", "width")

	volumeCmd.AddCommand(computeCmd)
	return volumeCmd
}

func runComputeCmd(cmd *cobra.Command, _ []string) error {
	dims := volume.Dimensions{}
	for name, value := range map[string]string{
		volume.DimLength: computeLength,
		volume.DimRadius: computeRadius,
		volume.DimHeight: computeHeight,
		volume.DimWidth:  computeWidth,
	} {
		if cmd.Flags().Changed(name) {
			dims[name] = value
		}
	}

	shape, err := volume.Lookup(volumeShape)
	if err != nil {
		return fmt.Errorf("%w (choose from %s)", err, strings.Join(volume.Names(), ", "))
	}
	v, err := shape.Volume(dims)
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), "%s = %s", shape.FormulaText, volume.FormatVolume(v))
}

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the supported shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, s := range volume.Shapes() {
				if err := writeLine(out, "%-9s %-22s %s", s.Name, strings.Join(s.Dimensions, ","), s.FormulaText); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the config file if needed and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.DefaultTUIConfigPath()
			if err := writeDefaultConfig(path); err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), "%s", path)
		},
	}
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultFileConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// loadPreferences merges the TOML file under explicitly set flags.
func loadPreferences(cmd *cobra.Command) (tui.Theme, string, error) {
	fileCfg, err := config.LoadFileConfig(config.DefaultTUIConfigPath())
	if err != nil {
		return tui.Theme{}, "", fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "accent", &accent, fileCfg.Display.Accent)
	applyIntConfig(cmd, "width", &width, fileCfg.Display.Width)
	applyStringConfig(cmd, "shape", &volumeShape, fileCfg.Volume.Shape)

	if _, err := volume.Lookup(volumeShape); err != nil {
		return tui.Theme{}, "", fmt.Errorf("invalid shape: %w", err)
	}
	if width <= 0 {
		return tui.Theme{}, "", fmt.Errorf("width must be positive, got %d", width)
	}

	return tui.Theme{Accent: lipgloss.Color(accent), Width: width}, volumeShape, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
