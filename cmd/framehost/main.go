// Command framehost opens a window and runs the presentation loop until the
// window is closed, then prints the UI mutator state.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/headless"
	"github.com/agiangrant/framehost/profiling"
	"github.com/agiangrant/framehost/resources"
	"github.com/agiangrant/framehost/sdl"
	"github.com/agiangrant/framehost/ui"
	"github.com/agiangrant/framehost/ui/mutator"
	"github.com/agiangrant/framehost/ui/schema"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

// configCheckInterval is how many frames pass between Config.toml change checks.
const configCheckInterval = 60

// allocDebug is set by the alloc_debug build tag.
var allocDebug bool

func init() {
	// SDL and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type options struct {
	headless    bool
	frames      uint64
	scale       float64
	pacing      string
	logLevel    string
	noDump      bool
	allocs      bool
	writeConfig bool
	version     bool
}

func main() {
	if err := run(os.Args[1:], projectDir(), os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", framehost.FormatError(err))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("framehost", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.headless, "headless", false, "run without a window")
	fs.Uint64Var(&opts.frames, "frames", 0, "stop after this many frames (0 = until quit)")
	fs.Float64Var(&opts.scale, "scale", 1, "display scale of the headless surface")
	fs.StringVar(&opts.pacing, "pacing", "", "frame pacing strategy: yield or sleep")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	fs.BoolVar(&opts.noDump, "no-dump", false, "do not print the UI mutator on exit")
	fs.BoolVar(&opts.allocs, "alloc-profiling", false, "track allocations per frame (toggle with P)")
	fs.BoolVar(&opts.writeConfig, "write-default-config", false, "write the default Config.toml and exit")
	fs.BoolVarP(&opts.version, "version", "v", false, "print version information")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs, nil
}

// run starts the app with resources loaded from dir/core.
func run(args []string, dir string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "framehost version %s\n", version)
		return nil
	}

	log := framehost.NewLogger(stderr, opts.logLevel)

	fsBackend := resources.FromRelPath(dir, "core").WithLogger(log).WithWrite().WithWatch()
	res := resources.New().LoadedFrom("core", 0, fsBackend)
	defer res.Close()

	if opts.writeConfig {
		return writeDefaultConfig(res, log)
	}

	cfg, err := loadConfig(res)
	if err != nil {
		return err
	}
	if !fs.Changed("log-level") {
		log = framehost.NewLogger(stderr, cfg.Debug.LogLevel)
	}

	engineCfg, err := applyFlags(cfg.EngineConfig(), opts)
	if err != nil {
		return err
	}

	root := buildSchema()
	m := mutator.FromSchema(&root)

	var platform framehost.Platform
	if opts.headless {
		platform = headless.New(headless.WithScale(opts.scale))
		if engineCfg.MaxFrames == 0 {
			log.Warn().Msg("headless run without --frames never ends on its own")
		}
	} else if sdl.IsDesktop() {
		platform = sdl.New(sdl.WithLogger(log))
	} else {
		return &framehost.Error{Kind: framehost.PlatformError, Op: "open window",
			Err: fmt.Errorf("no windowing support on %s, use --headless", sdl.CurrentOS())}
	}

	engineOpts := []framehost.Option{
		framehost.WithLogger(log),
		framehost.WithReporter(stdout),
		framehost.WithFrameHook(configWatcher(res.Resource(framehost.ConfigKey), log)),
	}
	if opts.allocs || allocDebug || cfg.Debug.AllocProfiling {
		engineOpts = append(engineOpts, framehost.WithAllocTracker(profiling.New(true, profiling.WithLogger(log))))
	}

	log.Info().
		Str("config", filepath.Join(fsBackend.Root(), framehost.ConfigKey)).
		Bool("headless", opts.headless).
		Msg("starting")

	return framehost.NewEngine(engineCfg, platform, m, engineOpts...).Run()
}

// configWatcher returns a frame hook that logs once when the config resource
// changes on disk.
func configWatcher(config resources.Resource, log zerolog.Logger) func(framehost.Frame) {
	warned := false
	return func(f framehost.Frame) {
		if warned || f.Number%configCheckInterval != 0 || !config.Modified() {
			return
		}
		warned = true
		log.Info().Str("key", config.Key()).Msg("configuration changed on disk, restart to apply")
	}
}

func loadConfig(res *resources.Resources) (framehost.AppConfig, error) {
	data, err := res.Read(framehost.ConfigKey)
	if err != nil {
		return framehost.AppConfig{}, &framehost.Error{Kind: framehost.ConfigError, Op: "read " + framehost.ConfigKey, Err: err}
	}
	return framehost.ParseAppConfig(data)
}

func writeDefaultConfig(res *resources.Resources, log zerolog.Logger) error {
	data, err := framehost.DefaultAppConfig().Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := res.Write(framehost.ConfigKey, data); err != nil {
		return &framehost.Error{Kind: framehost.ConfigError, Op: "write " + framehost.ConfigKey, Err: err}
	}
	log.Info().Str("key", framehost.ConfigKey).Msg("default configuration written")
	return nil
}

// applyFlags layers command line overrides over the file configuration.
func applyFlags(cfg framehost.EngineConfig, opts *options) (framehost.EngineConfig, error) {
	if opts.pacing != "" {
		pacing, err := framehost.ParsePacingStrategy(opts.pacing)
		if err != nil {
			return cfg, &framehost.Error{Kind: framehost.ConfigError, Op: "--pacing", Err: err}
		}
		cfg.Pacing = pacing
	}
	if opts.frames > 0 {
		cfg.MaxFrames = opts.frames
	}
	if opts.noDump {
		cfg.DumpMutator = false
	}
	return cfg, nil
}

// buildSchema returns the demo layout: a single left pane on an 800x500 root.
func buildSchema() schema.Root {
	return schema.NewRoot(ui.NewSize(800, 500)).
		WithContainer(schema.NewPaneLeft(40).WithBgColor(ui.NewColor(0.5, 0.1, 0.1)))
}

// projectDir returns the directory this file was compiled from, so the
// resource root is fixed at build time like the binary's assets.
func projectDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(file)
}
