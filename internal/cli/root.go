// Package cli implements the caption-player command line.
package cli

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/caption-player/internal/logging"
	"github.com/ytget/caption-player/internal/media"
	"github.com/ytget/caption-player/internal/platform"
	"github.com/ytget/caption-player/internal/ui"
)

const (
	AppID   = "com.ytget.caption-player"
	AppName = "Video Caption Player"
)

// ErrInvalidWindowSize is returned for non-positive window dimensions
var ErrInvalidWindowSize = errors.New("window width and height must be positive")

// Options are the parsed command line settings
type Options struct {
	URL     string
	Verbose bool
	Width   float32
	Height  float32
	Version string
}

var (
	verbose bool
	width   float32
	height  float32
	version = "dev"
	logger  *zap.Logger

	// runApp is swapped in tests
	runApp = launch
)

var rootCmd = &cobra.Command{
	Use:   "caption-player [url]",
	Short: "Video player with user-authored captions",
	Long: `Caption Player plays a video from a URL or a local file and lets you
add time-ranged captions that are shown over the video during playback.

A URL given on the command line pre-fills the URL field; press Load to open it.
Decoding needs ffmpeg and ffprobe on PATH.

Examples:
  caption-player
  caption-player ~/Movies/talk.mp4
  caption-player https://example.com/clip.mp4 --width 1280 --height 900 -v`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runRoot,
}

// Execute runs the root command; ver is reported in the window title
func Execute(ver string) error {
	if ver != "" {
		version = ver
	}
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		logging.OrNop(logger).Error("caption-player failed", zap.Error(err))
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().
		Float32Var(&width, "width", ui.WindowWidth, "Initial window width")
	rootCmd.Flags().
		Float32Var(&height, "height", ui.WindowHeight, "Initial window height")
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts := Options{
		Verbose: verbose,
		Width:   width,
		Height:  height,
		Version: version,
	}
	if len(args) == 1 {
		opts.URL = args[0]
	}

	if err := opts.validate(); err != nil {
		return err
	}
	return runApp(opts, logging.OrNop(logger))
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidWindowSize, o.Width, o.Height)
	}
	return nil
}

// launch opens the player window and blocks until it is closed
func launch(opts Options, log *zap.Logger) error {
	log.Info("Caption player starting", zap.String("version", opts.Version))

	if tools, err := platform.FindTools(); err != nil {
		log.Warn("Playback will fail until ffmpeg is installed", zap.Error(err))
	} else {
		log.Debug("Media tools found", zap.String("ffmpeg", tools.FFmpeg), zap.String("ffprobe", tools.FFprobe))
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, opts.Version))
	window.Resize(fyne.NewSize(opts.Width, opts.Height))

	// NewRootUI applies the stored position update interval to the player
	player := media.NewPlayer(log.Named("media"))
	root := ui.NewRootUI(window, myApp, player, log.Named("ui"))
	if opts.URL != "" {
		root.SetURL(opts.URL)
	}

	window.ShowAndRun()

	if err := root.Close(); err != nil && !errors.Is(err, media.ErrClosed) {
		return fmt.Errorf("close player: %w", err)
	}
	log.Info("Caption player stopped")
	return nil
}
