package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/internal/cli/model"
	"github.com/bnema/deskclock/internal/ui/dispatcher"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the tray menu in the terminal",
	Long: `Open the tray menu in the terminal, for desktops without a system tray.

The switches are saved to the settings file and apply the next time the
clock starts.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	store, err := openWritableStore(cmd)
	if err != nil {
		return err
	}

	ctx := app.Context()
	d := dispatcher.NewTrayDispatcher(ctx, store, nil, nil)
	m := model.NewMenuModel(ctx, app.Theme, d, store)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	if fm, ok := final.(model.MenuModel); ok {
		return fm.Err()
	}
	return nil
}
