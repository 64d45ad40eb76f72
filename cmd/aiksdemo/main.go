// Command aiksdemo runs the registered examples on the CPU and writes the
// last rendered frame as a PNG.
//
//	aiksdemo -list
//	aiksdemo -example aiks -output aiks.png
//	aiksdemo -example aiks -config params.toml -watch -frames 0
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/aiks"
	"github.com/gogpu/aiks/example"
	_ "github.com/gogpu/aiks/example/clip"
	_ "github.com/gogpu/aiks/example/grid"
	_ "github.com/gogpu/aiks/example/impeller"
	_ "github.com/gogpu/aiks/example/mesh"
	"github.com/gogpu/aiks/render"
)

// frameStep is the clock step of offline rendering.
const frameStep = time.Second / 60

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "aiksdemo:", err)
		os.Exit(1)
	}
}

type options struct {
	example string
	list    bool
	config  string
	width   int
	height  int
	frames  int
	output  string
	watch   bool
	verbose bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("aiksdemo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.example, "example", "aiks", "example to run")
	fs.BoolVar(&o.list, "list", false, "list examples and exit")
	fs.StringVar(&o.config, "config", "", "TOML parameter file")
	fs.IntVar(&o.width, "width", 800, "frame width")
	fs.IntVar(&o.height, "height", 600, "frame height")
	fs.IntVar(&o.frames, "frames", 1, "frames to render (0 renders until interrupted)")
	fs.StringVar(&o.output, "output", "", "PNG file for the last frame")
	fs.BoolVar(&o.watch, "watch", false, "reload -config between frames when it changes")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.width <= 0 || o.height <= 0:
		return o, fmt.Errorf("invalid frame size %dx%d", o.width, o.height)
	case o.frames < 0:
		return o, fmt.Errorf("invalid frame count %d", o.frames)
	case o.watch && o.config == "":
		return o, errors.New("-watch requires -config")
	case o.frames == 0 && !o.watch:
		return o, errors.New("-frames 0 requires -watch")
	}
	return o, nil
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	o, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	aiks.SetLogger(logger)

	if o.list {
		return listExamples(out)
	}

	params := example.DefaultParams()
	if o.config != "" {
		if params, err = example.LoadParams(o.config); err != nil {
			return err
		}
	}

	ex, err := example.New(o.example)
	if err != nil {
		return err
	}
	exCtx, err := example.NewContext(example.WithParams(&params), example.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := ex.Setup(exCtx); err != nil {
		return fmt.Errorf("setup %s: %w", o.example, err)
	}
	logger.Info("example ready", "name", ex.Info().Name, "size", fmt.Sprintf("%dx%d", o.width, o.height))

	var reloads <-chan fsnotify.Event
	if o.watch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer w.Close()
		// Editors often replace the file, so watch its directory.
		if err := w.Add(filepath.Dir(o.config)); err != nil {
			return fmt.Errorf("watch %s: %w", o.config, err)
		}
		reloads = w.Events
		go func() {
			for err := range w.Errors {
				logger.Warn("watch error", "err", err)
			}
		}()
	}

	h := &host{
		opts:    o,
		ex:      ex,
		ctx:     exCtx,
		params:  params,
		target:  render.NewPixmapTarget(o.width, o.height),
		clock:   example.NewFixedClock(frameStep),
		logger:  logger,
		reloads: reloads,
	}
	if o.watch {
		h.clock = example.NewClock()
	}
	return h.loop(ctx)
}

func listExamples(out io.Writer) error {
	for _, name := range example.Names() {
		ex, err := example.New(name)
		if err != nil {
			return err
		}
		info := ex.Info()
		if _, err := fmt.Fprintf(out, "%-10s %s\n", name, info.Name); err != nil {
			return err
		}
	}
	return nil
}

// host drives the per-frame Render and submission of one example.
type host struct {
	opts    options
	ex      example.Example
	ctx     *example.Context
	params  example.Params
	target  *render.PixmapTarget
	clock   *example.Clock
	logger  *slog.Logger
	reloads <-chan fsnotify.Event

	rendered int
	skipped  int
}

func (h *host) loop(ctx context.Context) error {
	var tick <-chan time.Time
	if h.opts.frames == 0 {
		t := time.NewTicker(frameStep)
		defer t.Stop()
		tick = t.C
	}

	for i := 0; h.opts.frames == 0 || i < h.opts.frames; i++ {
		reloaded := h.pollReload()
		if err := h.frame(i); err != nil {
			h.skipped++
			h.logger.Warn("frame skipped", "frame", i, "err", err)
		} else {
			h.rendered++
			if reloaded {
				if err := h.save(); err != nil {
					h.logger.Warn("save failed", "err", err)
				}
			}
		}

		if tick == nil {
			if ctx.Err() != nil {
				break
			}
			continue
		}
		select {
		case <-ctx.Done():
			return h.finish()
		case <-tick:
		}
	}
	return h.finish()
}

func (h *host) frame(i int) error {
	h.clock.Tick()
	h.target.Clear(h.params.Background)

	cb := render.NewCommandBuffer(h.ctx.Device, fmt.Sprintf("frame %d", i))
	frame := &example.Frame{
		Index:    i,
		Target:   h.target,
		Commands: cb,
		Params:   h.params,
		Time:     h.clock.Elapsed(),
		Delta:    h.clock.Delta(),
	}
	if err := h.ex.Render(h.ctx, frame); err != nil {
		return err
	}
	if err := cb.Submit(); err != nil {
		return err
	}
	return h.ctx.Renderer.Flush()
}

// pollReload applies pending config changes without blocking.
func (h *host) pollReload() bool {
	reloaded := false
	for {
		select {
		case ev := <-h.reloads:
			if filepath.Clean(ev.Name) != filepath.Clean(h.opts.config) ||
				!(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			p, err := example.LoadParams(h.opts.config)
			if err != nil {
				h.logger.Warn("config reload failed, keeping previous params", "err", err)
				continue
			}
			h.params = p
			reloaded = true
			h.logger.Info("config reloaded", "path", h.opts.config)
		default:
			return reloaded
		}
	}
}

func (h *host) finish() error {
	h.logger.Info("done", "rendered", h.rendered, "skipped", h.skipped)
	if h.rendered == 0 && h.opts.output != "" {
		return errors.New("no frame rendered, nothing to save")
	}
	return h.save()
}

func (h *host) save() error {
	if h.opts.output == "" {
		return nil
	}
	f, err := os.Create(h.opts.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, h.target.Image()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	h.logger.Info("frame saved", "path", h.opts.output)
	return nil
}
