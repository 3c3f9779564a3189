// This file is part of Glowmask.
//
// Glowmask is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glowmask is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glowmask.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glowmask/gui"
	"github.com/jetsetilly/glowmask/gui/sdlimgui"
	"github.com/jetsetilly/glowmask/imageload"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/modalflag"
	"github.com/jetsetilly/glowmask/paths"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/cpu"
	"github.com/jetsetilly/glowmask/prefs"
	"github.com/jetsetilly/glowmask/statsview"
	"github.com/jetsetilly/glowmask/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator is implemented by GUIs that must be created and serviced by the
// main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var g GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if g != nil {
				g.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if g != nil {
				g.Destroy(os.Stderr)
			}

			g, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer returned by creator() in an interface is not
				// equal to nil
				g = nil
			} else {
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if g != nil {
					g.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if g != nil {
				g.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "RENDER", "SHADERS", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "RENDER":
		err = render(md)

	case "SHADERS":
		err = printShaders(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// the log has already been echoed if the log flag is set
		if !*log {
			logger.Tail(os.Stdout, 10)
		}

		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mode := md.AddString("mode", "", "display mode: pipeline, raw")
	fit := md.AddBool("fit", false, "letterbox image into the render area")
	watch := md.AddBool("watch", false, "reload image when the file changes")
	cmdlinePrefs := md.AddString("prefs", "", "preferences that override the prefs file. eg. \"display.mode::raw; image.fit::true\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one image file required for %s mode", md)
	}

	// command line flags become command line preferences. only flags that
	// have been set explicitly take priority over the prefs file
	var override []string
	if *cmdlinePrefs != "" {
		override = append(override, *cmdlinePrefs)
	}
	md.Visit(func(flag string) {
		switch flag {
		case "mode":
			override = append(override, fmt.Sprintf("display.mode::%s", *mode))
		case "fit":
			override = append(override, fmt.Sprintf("image.fit::%v", *fit))
		case "watch":
			override = append(override, fmt.Sprintf("image.watch::%v", *watch))
		}
	})
	if len(override) > 0 {
		if *mode != "" {
			if _, err := pipeline.ParseDisplayMode(*mode); err != nil {
				return err
			}
		}
		prefs.PushCommandLineStack(strings.Join(override, "; "))
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "glowmask", "unused preferences: %s", unused)
			}
		}()
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui()
	}

	// wait for creator result
	var scr *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		scr = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	err = scr.SetFeature(gui.ReqLoadImage, md.GetArg(0))
	if err != nil {
		return err
	}

	// wait for the gui to end. a pipeline error that could not be recovered
	// from is returned
	return <-scr.Ended()
}

// render runs the pipeline with the CPU device and saves the surface to a
// PNG file.
func render(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", pipeline.Pipeline.String(), "display mode: pipeline, raw")
	pass := md.AddString("pass", "", "stop after the named pass: threshold, horizontal, vertical")
	fit := md.AddBool("fit", false, "letterbox image into the render area")
	size := md.AddInt("size", pipeline.Dimension, "width and height of the output image")
	out := md.AddString("out", "", "output filename (default: unique filename)")
	mvz := md.AddString("memviz", "", "write a graph of the pipeline state to the named dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one image file required for %s mode", md)
	}
	path := md.GetArg(0)

	dm, err := pipeline.ParseDisplayMode(*mode)
	if err != nil {
		return err
	}

	if *size <= 0 {
		return fmt.Errorf("output size must be positive")
	}

	dev := cpu.NewDevice(*size, *size)
	drv := pipeline.NewDriver(dev, pipeline.FixedMode(dm))
	defer drv.Destroy()

	err = drv.Setup()
	if err != nil {
		return err
	}

	err = drv.RequestImage()
	if err != nil {
		return err
	}

	ld := imageload.NewLoader(pipeline.Dimension)
	ld.SetFit(*fit)
	res := <-ld.Request(path)
	err = drv.Complete(res.Image, res.Err)
	if err != nil {
		return err
	}

	if *pass != "" {
		last, err := pipeline.ParsePass(*pass)
		if err != nil {
			return err
		}
		err = drv.RenderPass(last)
		if err != nil {
			return err
		}
	} else {
		err = drv.RenderFrame()
		if err != nil {
			return err
		}
	}

	img, err := dev.ReadPixels(nil)
	if err != nil {
		return err
	}

	if *out == "" {
		*out = paths.UniqueFilename("glowmask", path, "png")
	}
	err = imgio.Save(*out, img, imgio.PNGEncoder())
	if err != nil {
		return err
	}
	fmt.Printf("* saved to %s\n", *out)

	if *mvz != "" {
		f, err := os.Create(*mvz)
		if err != nil {
			return err
		}
		memviz.Map(f, summarise(drv, dm))
		err = f.Close()
		if err != nil {
			return err
		}
		fmt.Printf("* pipeline state graph saved to %s\n", *mvz)
	}

	return nil
}

// stateSummary is a description of the pipeline state that is small enough to
// be graphed by memviz. the state itself refers to the texture pixels.
type stateSummary struct {
	Status    pipeline.Status
	Mode      pipeline.DisplayMode
	Passes    []pipeline.Pass
	Geometry  pipeline.Quad
	Transform pipeline.Transform
	Targets   []image.Rectangle
	Source    image.Rectangle
}

func summarise(drv *pipeline.Driver, mode pipeline.DisplayMode) *stateSummary {
	sum := &stateSummary{
		Status:    drv.Status(),
		Mode:      mode,
		Geometry:  pipeline.NewQuad(),
		Transform: pipeline.NewTransform(),
	}

	for p := pipeline.Threshold; p <= mode.LastPass(); p++ {
		sum.Passes = append(sum.Passes, p)
	}

	if st := drv.State(); st != nil {
		for _, t := range st.Targets {
			sum.Targets = append(sum.Targets, t.Texture().Bounds())
		}
		if st.Source != nil {
			sum.Source = st.Source.Bounds()
		}
	}

	return sum
}

// printShaders writes the assembled shader sources of the named passes, or
// of all passes, to stdout.
func printShaders(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments are pass names: threshold, horizontal, vertical")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var passes []pipeline.Pass
	for _, a := range md.RemainingArgs() {
		pass, err := pipeline.ParsePass(a)
		if err != nil {
			return err
		}
		passes = append(passes, pass)
	}
	if len(passes) == 0 {
		for pass := pipeline.Threshold; pass < pipeline.NumPasses; pass++ {
			passes = append(passes, pass)
		}
	}

	return writeShaders(os.Stdout, passes)
}

func writeShaders(output io.Writer, passes []pipeline.Pass) error {
	for i, pass := range passes {
		vertex, fragment := pipeline.ProgramSources(pass)
		if i == 0 {
			if _, err := fmt.Fprintf(output, "// ---- vertex ----\n%s\n", vertex); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(output, "// ---- %s ----\n%s\n", pass, fragment); err != nil {
			return err
		}
	}
	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
