package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/domain/entity"
	"github.com/bnema/deskclock/internal/infrastructure/config"
	"github.com/bnema/deskclock/internal/infrastructure/lock"
	"github.com/bnema/deskclock/internal/ui/dispatcher"
	"github.com/bnema/deskclock/internal/ui/input"
)

var (
	styleSize     int
	styleColor    string
	positionReset bool
)

// toggleCommands maps the toggle argument to its menu command.
var toggleCommands = map[string]input.Command{
	"draggable":     input.CommandToggleDraggable,
	"hidable":       input.CommandToggleHidable,
	"always-on-top": input.CommandToggleAlwaysShowTop,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change the clock settings",
	Long: `Inspect and change the clock settings file.

Commands that change settings refuse to run while the clock is running;
use the tray menu instead.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings and window attributes",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

var settingsToggleCmd = &cobra.Command{
	Use:       "toggle draggable|hidable|always-on-top",
	Short:     "Flip one of the clock's switches",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"draggable", "hidable", "always-on-top"},
	RunE:      runSettingsToggle,
}

var settingsStyleCmd = &cobra.Command{
	Use:   "style",
	Short: "Change the clock font size or colour",
	Long: `Change the clock font size or colour. Flags that are not given keep
their current value.

Examples:
  deskclock settings style --size 64
  deskclock settings style --color "#ff8800"`,
	Args: cobra.NoArgs,
	RunE: runSettingsStyle,
}

var settingsPositionCmd = &cobra.Command{
	Use:   "position X Y",
	Short: "Set where the clock is placed, or --reset to let the window manager decide",
	Args: func(cmd *cobra.Command, args []string) error {
		if positionReset {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runSettingsPosition,
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSchema,
}

var settingsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the settings every time the file changes",
	Args:  cobra.NoArgs,
	RunE:  runSettingsWatch,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(
		settingsShowCmd,
		settingsPathCmd,
		settingsToggleCmd,
		settingsStyleCmd,
		settingsPositionCmd,
		settingsSchemaCmd,
		settingsWatchCmd,
	)

	settingsStyleCmd.Flags().IntVar(&styleSize, "size", 0, "font size in pixels")
	settingsStyleCmd.Flags().StringVar(&styleColor, "color", "", "font colour (#rrggbb or a colour name)")
	settingsStyleCmd.MarkFlagsOneRequired("size", "color")

	settingsPositionCmd.Flags().BoolVar(&positionReset, "reset", false, "forget the saved position")
}

func renderer() *styles.SettingsRenderer {
	return styles.NewSettingsRenderer(GetApp().Theme)
}

// openWritableStore opens the store under the single-instance lock.
func openWritableStore(cmd *cobra.Command) (*usecase.SettingsStore, error) {
	store, err := GetApp().OpenStore(GetApp().Context(), true)
	if errors.Is(err, lock.ErrAlreadyRunning) {
		fmt.Fprint(cmd.ErrOrStderr(), renderer().RenderLocked(err))
	}
	return store, err
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	store, err := app.OpenStore(app.Context(), false)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer().RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer().RenderSettings(store.Path(), store.Snapshot()))
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	repo, err := GetApp().Repository()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), repo.Location())
	return nil
}

func runSettingsToggle(cmd *cobra.Command, args []string) error {
	command, ok := toggleCommands[args[0]]
	if !ok {
		return fmt.Errorf("unknown switch %q", args[0])
	}

	store, err := openWritableStore(cmd)
	if err != nil {
		return err
	}

	ctx := GetApp().Context()
	d := dispatcher.NewTrayDispatcher(ctx, store, nil, nil)
	if err := d.Dispatch(ctx, command); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer().RenderUpdated(command.Label(), store.Path()))
	if store.ReloadRequired() {
		fmt.Fprint(cmd.OutOrStdout(), renderer().RenderReloadHint())
	}
	return nil
}

func runSettingsStyle(cmd *cobra.Command, _ []string) error {
	store, err := openWritableStore(cmd)
	if err != nil {
		return err
	}

	current := store.ClockStyle()
	size, color := current.Size, current.Color
	if cmd.Flags().Changed("size") {
		size = styleSize
	}
	if cmd.Flags().Changed("color") {
		color = styleColor
	}

	style, err := entity.NewClockStyle(size, color)
	if err != nil {
		return err
	}
	if err := store.SetClockStyle(GetApp().Context(), style); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer().RenderUpdated("Clock "+style.String(), store.Path()))
	return nil
}

func runSettingsPosition(cmd *cobra.Command, args []string) error {
	p := entity.UnsetPoint()
	if !positionReset {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[0], err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[1], err)
		}
		p = entity.NewPoint(x, y)
	}

	store, err := openWritableStore(cmd)
	if err != nil {
		return err
	}
	if err := store.SavePosition(GetApp().Context(), p); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer().RenderUpdated("Position "+p.String(), store.Path()))
	return nil
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.JSONSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}

func runSettingsWatch(cmd *cobra.Command, _ []string) error {
	repo, err := GetApp().Repository()
	if err != nil {
		return err
	}
	path := repo.Location()

	ctx, stop := signal.NotifyContext(GetApp().Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes, err := config.Watch(ctx, path)
	if err != nil {
		return err
	}

	if settings, loadErr := repo.Load(ctx); loadErr == nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer().RenderSettings(path, settings))
	} else if !errors.Is(loadErr, os.ErrNotExist) {
		fmt.Fprint(cmd.OutOrStdout(), renderer().RenderError(loadErr))
	}

	for change := range changes {
		fmt.Fprint(cmd.OutOrStdout(), renderChange(path, change))
	}
	return ignoreCanceled(ctx.Err())
}

func renderChange(path string, change config.Change) string {
	if change.Err != nil {
		return renderer().RenderChange(path, nil, change.Err)
	}
	settings, err := change.Document.Settings()
	return renderer().RenderChange(path, settings, err)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
