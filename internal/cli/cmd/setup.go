package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/assets"
	"github.com/bnema/deskclock/internal/application/usecase"
	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/infrastructure/desktop"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Setup desktop integration",
	Long: `Setup deskclock's integration with the desktop session.

Subcommands:
  install    - Install the desktop entry and icon to ~/.local/share
  autostart  - Start the clock with the session (on|off)
  status     - Show what is installed
  remove     - Remove everything setup installed`,
}

var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install desktop entry and icon",
	Long: `Install deskclock.desktop to the user's applications directory and the
clock icon to the hicolor icon theme.

Location: $XDG_DATA_HOME/applications/deskclock.desktop
         (typically ~/.local/share/applications/deskclock.desktop)

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runSetupInstall,
}

var setupAutostartCmd = &cobra.Command{
	Use:   "autostart on|off",
	Short: "Start the clock when you log in",
	Long: `Write or remove $XDG_CONFIG_HOME/autostart/deskclock.desktop.

The entry runs 'deskclock run' from the current executable path.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      runSetupAutostart,
}

var setupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show desktop integration status",
	Args:  cobra.NoArgs,
	RunE:  runSetupStatus,
}

var setupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove desktop entry, icon and autostart entry",
	Args:  cobra.NoArgs,
	RunE:  runSetupRemove,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupInstallCmd, setupAutostartCmd, setupStatusCmd, setupRemoveCmd)
}

func printResult(w io.Writer, theme *styles.Theme, existed bool, what, updated, installed, path string) {
	verb := installed
	if existed {
		verb = updated
	}
	fmt.Fprintf(w, "%s %s %s %s\n",
		theme.SuccessStyle.Render(styles.IconCheck), what, verb, theme.Highlight.Render(path))
}

func runSetupInstall(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	theme := app.Theme
	out := cmd.OutOrStdout()

	uc := usecase.NewInstallDesktopUseCase(desktop.New())
	result, err := uc.Execute(app.Context(), usecase.InstallDesktopInput{IconData: assets.IconPNG})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err)
		return err
	}

	printResult(out, theme, result.WasDesktopExisting, "Desktop file", "updated at", "installed to", result.DesktopPath)
	if result.IconPath != "" {
		printResult(out, theme, result.WasIconExisting, "Icon", "updated at", "installed to", result.IconPath)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Subtle.Render("Run 'deskclock setup autostart on' to start the clock when you log in"))
	return nil
}

func runSetupAutostart(cmd *cobra.Command, args []string) error {
	app := GetApp()
	theme := app.Theme
	out := cmd.OutOrStdout()

	result, err := usecase.NewAutostartUseCase(desktop.New()).Execute(app.Context(), args[0] == "on")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err)
		return err
	}

	switch {
	case result.Enabled:
		printResult(out, theme, result.WasEnabled, "Autostart entry", "updated at", "written to", result.Path)
	case result.WasEnabled:
		fmt.Fprintf(out, "%s Autostart disabled\n", theme.SuccessStyle.Render(styles.IconCheck))
	default:
		fmt.Fprintf(out, "%s Autostart was not enabled\n", theme.Subtle.Render(styles.IconInfo))
	}
	return nil
}

func runSetupStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	theme := app.Theme
	out := cmd.OutOrStdout()

	status, err := desktop.New().GetStatus(app.Context())
	if err != nil {
		return err
	}

	row := func(label string, on bool, path string) {
		fmt.Fprintf(out, "  %s %-14s %s\n", styles.Checkbox(on), label, theme.Subtle.Render(path))
	}
	fmt.Fprintln(out, theme.Title.Render("Desktop integration"))
	row("Desktop entry", status.DesktopFileInstalled, status.DesktopFilePath)
	row("Icon", status.IconInstalled, status.IconFilePath)
	row("Autostart", status.AutostartEnabled, status.AutostartFilePath)
	if status.ExecutablePath != "" {
		fmt.Fprintf(out, "  %s %-14s %s\n", styles.IconInfo, "Executable", status.ExecutablePath)
	}
	return nil
}

func runSetupRemove(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	theme := app.Theme
	out := cmd.OutOrStdout()

	result, err := usecase.NewRemoveDesktopUseCase(desktop.New()).Execute(app.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", theme.ErrorStyle.Render(styles.IconX), err)
		return err
	}

	if !result.WasDesktopInstalled && !result.WasIconInstalled && !result.WasAutostart {
		fmt.Fprintf(out, "%s Nothing to remove\n", theme.Subtle.Render(styles.IconInfo))
		return nil
	}
	fmt.Fprintf(out, "%s Desktop integration removed\n", theme.SuccessStyle.Render(styles.IconCheck))
	return nil
}
