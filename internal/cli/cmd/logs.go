package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/deskclock/internal/cli/styles"
	"github.com/bnema/deskclock/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the clock's log file",
	Long: `View the log written by 'deskclock --log-file run'.

Examples:
  deskclock logs              # Show the last 50 lines
  deskclock logs -n 200       # Show the last 200 lines
  deskclock logs -f           # Follow the log in real-time`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

// logsClearCmd removes rotated log files.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated log files. With --all the active log is removed too.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also remove the active log file")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	dir, err := app.Paths.LogDir()
	if err != nil {
		return err
	}
	logPath := logging.FilePath(dir)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(logPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No log yet. Run 'deskclock --log-file run' to create one."))
		return nil
	}

	if err := showLog(out, logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if logsFollow {
		return followLog(cmd, logPath, app.Theme)
	}
	return nil
}

func showLog(w io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	tail, err := lastLines(file, lines)
	if err != nil {
		return err
	}
	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines returns at most n trailing lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[1:], scanner.Text())
			continue
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to logPath until the command is cancelled.
// Rotation recreates the file, so a Create event reopens it.
func followLog(cmd *cobra.Command, logPath string, theme *styles.Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()
	_, _ = file.Seek(0, io.SeekEnd)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	reader := bufio.NewReader(file)
	pending := ""

	drain := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("log watcher: %w", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(logPath) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				_ = file.Close()
				if file, err = os.Open(logPath); err != nil {
					return fmt.Errorf("reopen log file: %w", err)
				}
				reader.Reset(file)
				pending = ""
			}
			if err := drain(); err != nil {
				return err
			}
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, "ERR", "error"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "warn"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "debug"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, entry.Message)
}

func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

// rotatedLogs lists the backups lumberjack left in dir.
func rotatedLogs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "deskclock-*.log*"))
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	out := cmd.OutOrStdout()
	dir, err := app.Paths.LogDir()
	if err != nil {
		return err
	}

	targets, err := rotatedLogs(dir)
	if err != nil {
		return err
	}
	if logsClearAll {
		if _, statErr := os.Stat(logging.FilePath(dir)); statErr == nil {
			targets = append(targets, logging.FilePath(dir))
		}
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}

	var removed int
	for _, path := range targets {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), filepath.Base(path), err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), filepath.Base(path))
		removed++
	}
	fmt.Fprintf(out, "\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", removed)))
	return nil
}
