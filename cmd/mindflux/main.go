// Package main provides the CLI entrypoint for mindflux.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/mindflux/internal/books"
	"github.com/verte-zerg/mindflux/internal/config"
	"github.com/verte-zerg/mindflux/internal/cue"
	"github.com/verte-zerg/mindflux/internal/drill"
	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/logging"
	"github.com/verte-zerg/mindflux/internal/model"
	"github.com/verte-zerg/mindflux/internal/shell"
	"github.com/verte-zerg/mindflux/internal/stats"
	"github.com/verte-zerg/mindflux/internal/tui"
	"github.com/verte-zerg/mindflux/internal/visual"
)

const (
	defaultLevel    = 1
	defaultDistance = 5
	defaultSpeed    = 5
	defaultInterval = 5
	defaultAttempts = 10
	defaultBlock    = 10
	defaultShoe     = 1
	defaultVolume   = 0.6
	maxAttempts     = 50
)

var (
	playLevel    int
	playDistance int
	playBook     string
	playTextFile string
	playWidth    int
	playSpeed    int
	playInterval int
	playMode     string
	playExtended bool
	playAttempts int
	playBlock    int
	playShoe     int
	playSound    bool
	playVolume   float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	resetPlayFlags()
	rootCmd := &cobra.Command{
		Use:           "mindflux",
		Short:         "Terminal cognitive training games",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runMenuCmd,
	}

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func resetPlayFlags() {
	playLevel = defaultLevel
	playDistance = defaultDistance
	playBook = books.DefaultKey
	playTextFile = ""
	playWidth = level.DefaultWidthIndex
	playSpeed = defaultSpeed
	playInterval = defaultInterval
	playMode = string(visual.Numbers2)
	playExtended = false
	playAttempts = defaultAttempts
	playBlock = defaultBlock
	playShoe = defaultShoe
	playSound = false
	playVolume = defaultVolume
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <game>",
		Short: "Open a game directly",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlayCmd,
	}
	cmd.Flags().IntVar(&playLevel, "level", defaultLevel, "level (1-9)")
	cmd.Flags().IntVar(&playDistance, "distance", defaultDistance, "stimulus distance (1-9)")
	cmd.Flags().StringVar(&playBook, "book", books.DefaultKey, "book for the reading games")
	cmd.Flags().StringVar(&playTextFile, "text-file", "", "read this UTF-8 file instead of a book")
	cmd.Flags().IntVar(&playWidth, "width", level.DefaultWidthIndex, "line width index (1-5)")
	cmd.Flags().IntVar(&playSpeed, "speed", defaultSpeed, "show speed level, or drill speed (1-9)")
	cmd.Flags().IntVar(&playInterval, "interval", defaultInterval, "blank interval level (1-9)")
	cmd.Flags().StringVar(&playMode, "mode", string(visual.Numbers2), "double stimulus mode")
	cmd.Flags().BoolVar(&playExtended, "extended", false, "use the 0-18 show speed scale")
	cmd.Flags().IntVar(&playAttempts, "attempts", defaultAttempts, "attempts per reaction round (1-50)")
	cmd.Flags().IntVar(&playBlock, "block", defaultBlock, "items per drill block")
	cmd.Flags().IntVar(&playShoe, "shoe", defaultShoe, "decks in the Hi-Lo shoe")
	cmd.Flags().BoolVar(&playSound, "sound", false, "play audio cues")
	return cmd
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	play, envCfg, err := loadPlayConfig(cmd, "")
	if err != nil {
		return err
	}
	return runTUI(play, envCfg)
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	play, envCfg, err := loadPlayConfig(cmd, args[0])
	if err != nil {
		return err
	}
	return runTUI(play, envCfg)
}

// loadPlayConfig merges flags, the config file and the environment. Flags the
// user set win over both.
func loadPlayConfig(cmd *cobra.Command, game string) (model.PlayConfig, config.EnvConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.PlayConfig{}, config.EnvConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.PlayConfig{}, config.EnvConfig{}, err
	}

	applyIntConfig(cmd, "level", &playLevel, fileCfg.Play.Level)
	applyIntConfig(cmd, "distance", &playDistance, fileCfg.Play.Distance)
	applyStringConfig(cmd, "book", &playBook, fileCfg.Play.Book)
	applyStringConfig(cmd, "text-file", &playTextFile, fileCfg.Play.TextFile)
	applyIntConfig(cmd, "width", &playWidth, fileCfg.Play.Width)
	applyIntConfig(cmd, "speed", &playSpeed, fileCfg.Play.Speed)
	applyIntConfig(cmd, "interval", &playInterval, fileCfg.Play.Interval)
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Play.Mode)
	applyBoolConfig(cmd, "extended", &playExtended, fileCfg.Play.Extended)
	applyIntConfig(cmd, "attempts", &playAttempts, fileCfg.Play.Attempts)
	applyIntConfig(cmd, "block", &playBlock, fileCfg.Play.Block)
	applyIntConfig(cmd, "shoe", &playShoe, fileCfg.Play.Shoe)
	applyBoolConfig(cmd, "sound", &playSound, fileCfg.Audio.Enabled)
	applyFloatConfig(cmd, "volume", &playVolume, fileCfg.Audio.Volume)

	sound, err := envCfg.SoundOverride()
	if err != nil {
		return model.PlayConfig{}, config.EnvConfig{}, err
	}
	applyBoolConfig(cmd, "sound", &playSound, sound)

	if game == "" && fileCfg.Play.Game != nil {
		game = *fileCfg.Play.Game
	}

	play := model.PlayConfig{
		Game:      game,
		Level:     playLevel,
		Distance:  playDistance,
		Book:      playBook,
		TextFile:  playTextFile,
		WidthIdx:  playWidth,
		Speed:     playSpeed,
		Interval:  playInterval,
		Mode:      playMode,
		Extended:  playExtended,
		Attempts:  playAttempts,
		BlockSize: playBlock,
		Shoe:      playShoe,
		Sound:     playSound,
		Volume:    playVolume,
	}
	if err := validateConfig(play); err != nil {
		return model.PlayConfig{}, config.EnvConfig{}, err
	}
	return play, envCfg, nil
}

func runTUI(play model.PlayConfig, envCfg config.EnvConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("mindflux needs an interactive terminal")
	}

	logger, err := logging.New(logging.Options{Path: envCfg.LogPath(), Level: envCfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var text string
	if play.TextFile != "" {
		text, err = books.LoadFile(play.TextFile)
		if err != nil {
			return fmt.Errorf("failed to load text file: %w", err)
		}
	}

	var player cue.Player = cue.Nop{}
	if play.Sound {
		player = cue.NewSpeaker(play.Volume, logger)
	}
	defer player.Close()

	logger.Info("session started",
		zap.String("game", play.Game),
		zap.Int("level", play.Level),
		zap.Bool("sound", play.Sound),
	)
	m, err := tui.NewModel(tui.Options{
		Play:   play,
		Text:   text,
		Logger: logger,
		Cue:    player,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		logger.Error("tui failed", zap.Error(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info("session ended")
	if report := m.Report(); len(report) > 0 {
		if err := stats.RenderAttempts(os.Stdout, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games",
		Args:  cobra.NoArgs,
		RunE:  runGamesCmd,
	}
}

func runGamesCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for i, entry := range shell.Catalog() {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if _, err := fmt.Fprintln(out, entry.Title); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, g := range entry.Games {
			if _, err := fmt.Fprintf(out, "  %-14s %s\n", g.ID, g.Summary); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the level tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return stats.RenderLevels(cmd.OutOrStdout(), level.Tables())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || flagChanged(cmd, name) {
		return
	}
	*target = *value
}

// flagChanged reports whether the user set the flag. Commands without the
// flag report false.
func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd != nil && cmd.Flags().Changed(name)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# mindflux configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# game = "basic"          # Game opened at start (see: mindflux games)
# level = %d               # Level (1-9)
# distance = %d            # Stimulus distance (1-9)
# book = %q          # Book for the reading games
# text-file = ""          # UTF-8 text read instead of a book
# width = %d               # Line width index (1-5)
# speed = %d               # Show speed level, or drill speed
# interval = %d            # Blank interval level (1-9)
# mode = %q       # Double stimulus mode
# extended = false       # Use the 0-18 show speed scale
# attempts = %d           # Attempts per reaction round (1-%d)
# block = %d              # Items per drill block
# shoe = %d                # Decks in the Hi-Lo shoe

[audio]
# enabled = false         # Play audio cues
# volume = %.1f           # Cue volume (0-1)
`,
		defaultLevel,
		defaultDistance,
		books.DefaultKey,
		level.DefaultWidthIndex,
		defaultSpeed,
		defaultInterval,
		string(visual.Numbers2),
		defaultAttempts,
		maxAttempts,
		defaultBlock,
		defaultShoe,
		defaultVolume,
	)
}

func validateConfig(play model.PlayConfig) error {
	if play.Game != "" {
		if _, ok := shell.ParseGame(play.Game); !ok {
			return fmt.Errorf("unknown game %q (see: mindflux games)", play.Game)
		}
	}
	if play.Level < level.Min || play.Level > level.Max {
		return fmt.Errorf("--level must be between %d and %d", level.Min, level.Max)
	}
	if play.Distance < level.Min || play.Distance > level.Max {
		return fmt.Errorf("--distance must be between %d and %d", level.Min, level.Max)
	}
	if play.TextFile == "" && books.Text(play.Book) == "" {
		return fmt.Errorf("--book must be one of %s", strings.Join(books.Keys(), ", "))
	}
	if play.WidthIdx < 1 || play.WidthIdx > len(level.WidthIndexes()) {
		return fmt.Errorf("--width must be between 1 and %d", len(level.WidthIndexes()))
	}
	if play.Extended {
		if play.Speed < 0 || play.Speed > level.ExtendedMax {
			return fmt.Errorf("--speed must be between 0 and %d with --extended", level.ExtendedMax)
		}
	} else if play.Speed < level.Min || play.Speed > level.Max {
		return fmt.Errorf("--speed must be between %d and %d", level.Min, level.Max)
	}
	if play.Interval < level.Min || play.Interval > level.Max {
		return fmt.Errorf("--interval must be between %d and %d", level.Min, level.Max)
	}
	if _, ok := visual.ParseMode(play.Mode); !ok {
		modes := make([]string, 0, len(visual.Modes()))
		for _, m := range visual.Modes() {
			modes = append(modes, string(m))
		}
		return fmt.Errorf("--mode must be one of %s", strings.Join(modes, ", "))
	}
	if play.Attempts < 1 || play.Attempts > maxAttempts {
		return fmt.Errorf("--attempts must be between 1 and %d", maxAttempts)
	}
	if !drill.ValidBlockSize(play.BlockSize) {
		return fmt.Errorf("--block must be one of %s", joinInts(drill.BlockSizes()))
	}
	if !drill.ValidShoeSize(play.Shoe) {
		return fmt.Errorf("--shoe must be one of %s", joinInts(drill.ShoeSizes()))
	}
	if play.Volume < 0 || play.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1")
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		_ = err
	}
}
