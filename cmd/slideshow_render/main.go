// Package main renders a set of slides to PNG files, one per slide, using the
// same input sources a slideshow would.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
	"golang.org/x/sync/errgroup"

	"github.com/edaniels/slideshow"
)

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

var (
	defaultWidth  = 640
	defaultHeight = 480
	thumbSize     = uint(96)
	logger        = golog.Global().Named("render")
)

// Arguments for the command.
type Arguments struct {
	Slides string `flag:"slides,usage=slides separated by commas as bundle:<name> or <path> or <path>#<caption>"`
	Bundle string `flag:"bundle,usage=directory used as the asset bundle"`
	Out    string `flag:"out,usage=output directory"`
	Width  int    `flag:"width,usage=surface width"`
	Height int    `flag:"height,usage=surface height"`
	Rotate int    `flag:"rotate,usage=rotate every slide by degrees"`
	Async  bool   `flag:"async,usage=load slides in the background"`
	Thumbs bool   `flag:"thumbs,usage=also write a thumbnail strip"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Slides == "" {
		return errors.New("no slides given")
	}
	if argsParsed.Width == 0 {
		argsParsed.Width = defaultWidth
	}
	if argsParsed.Height == 0 {
		argsParsed.Height = defaultHeight
	}
	if argsParsed.Out == "" {
		argsParsed.Out = "."
	}
	if err := os.MkdirAll(argsParsed.Out, 0o750); err != nil {
		return err
	}

	var bundle slideshow.Bundle
	if argsParsed.Bundle != "" {
		bundle = slideshow.NewDirBundle(argsParsed.Bundle)
	}
	inputs, err := parseSlides(strings.Split(argsParsed.Slides, ","), bundle)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no slides given")
	}
	for i, in := range inputs {
		if argsParsed.Rotate != 0 {
			in = &slideshow.RotateInputSource{Src: in, RotateByDeg: float64(argsParsed.Rotate)}
		}
		if argsParsed.Async {
			in = slideshow.NewAsyncInputSource(in, nil, logger)
		}
		inputs[i] = in
	}

	return render(ctx, inputs, argsParsed, logger)
}

// parseSlides turns slide arguments into input sources.
func parseSlides(slideArgs []string, bundle slideshow.Bundle) ([]slideshow.InputSource, error) {
	inputs := make([]slideshow.InputSource, 0, len(slideArgs))
	for _, arg := range slideArgs {
		arg = strings.TrimSpace(arg)
		switch {
		case arg == "":
			continue
		case strings.HasPrefix(arg, "bundle:"):
			if bundle == nil {
				return nil, errors.Errorf("slide %q needs --bundle", arg)
			}
			inputs = append(inputs, slideshow.NewBundleImageSource(bundle, strings.TrimPrefix(arg, "bundle:")))
		case strings.Contains(arg, "#"):
			path, caption, _ := strings.Cut(arg, "#")
			img, err := imaging.Open(path, imaging.AutoOrientation(true))
			if err != nil {
				return nil, errors.Wrapf(err, "error opening captioned slide %q", path)
			}
			src, err := slideshow.NewImageSource(img, caption)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, src)
		default:
			inputs = append(inputs, slideshow.NewFileImageSource(arg))
		}
	}
	return inputs, nil
}

func render(ctx context.Context, inputs []slideshow.InputSource, args Arguments, logger golog.Logger) error {
	surface := slideshow.NewImageSurface(args.Width, args.Height)

	var (
		mu       sync.Mutex
		frames   = make([]image.Image, len(inputs))
		saveErrs error
		loaded   = make(chan struct{}, 1)
	)
	show := slideshow.NewSlideshow(surface, slideshow.Config{
		Logger: logger,
		OnLoad: func(index int, img image.Image) {
			frame := surface.Render()
			path := filepath.Join(args.Out, fmt.Sprintf("slide_%02d.png", index))
			err := imaging.Save(frame, path)
			mu.Lock()
			frames[index] = frame
			saveErrs = multierr.Append(saveErrs, err)
			mu.Unlock()
			if err == nil {
				logger.Infow("rendered slide", "index", index, "path", path, "has_image", img != nil)
			}
			loaded <- struct{}{}
		},
	})

	waitLoaded := func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-loaded:
			return nil
		}
	}
	show.SetInputs(ctx, inputs)
	if err := waitLoaded(); err != nil {
		return err
	}
	for i := 1; i < len(inputs); i++ {
		if err := show.Next(ctx); err != nil {
			return err
		}
		if err := waitLoaded(); err != nil {
			return err
		}
	}

	if args.Thumbs {
		saveErrs = multierr.Append(saveErrs, writeThumbStrip(ctx, frames, filepath.Join(args.Out, "thumbs.png")))
	}
	return saveErrs
}

// writeThumbStrip writes every frame side by side as thumbnails.
func writeThumbStrip(ctx context.Context, frames []image.Image, path string) error {
	thumbs := make([]image.Image, len(frames))
	g, _ := errgroup.WithContext(ctx)
	for i, frame := range frames {
		i, frame := i, frame
		g.Go(func() error {
			if frame == nil {
				return errors.Errorf("slide %d was never rendered", i)
			}
			thumbs[i] = slideshow.Thumbnail(frame, thumbSize, thumbSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	strip := imaging.New(int(thumbSize)*len(thumbs), int(thumbSize), color.NRGBA{0, 0, 0, 0})
	for i, thumb := range thumbs {
		strip = imaging.Paste(strip, thumb, image.Pt(i*int(thumbSize), 0))
	}
	return imaging.Save(strip, path)
}
