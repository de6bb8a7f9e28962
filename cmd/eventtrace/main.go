// SPDX-License-Identifier: Unlicense OR MIT

// Command eventtrace feeds a scripted sequence of platform records
// through a backend and prints the canonical events that come out of
// the queue. It exists to exercise the event core without a real
// platform attached.
//
// Script lines, one record per line ('#' starts a comment):
//
//	motion down|up|move <time-ms> <x> <y>
//	key down|up|virtual <time-ms> <keycode> [keysym]
//	cmd init|term|resized|redraw|focus|unfocus [width height]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"stagekit.org/app"
	"stagekit.org/internal/logging"
	"stagekit.org/io/event"
	"stagekit.org/io/key"
	"stagekit.org/io/pointer"
	"stagekit.org/io/system"
)

// record is one parsed script line.
type record struct {
	motion *app.MotionRecord
	key    *app.KeyRecord
	cmd    *app.LifecycleCommand
}

// traceStage stands in for the scene-graph collaborator.
type traceStage struct {
	width, height int32
}

func (s *traceStage) Size() (int32, int32) { return s.width, s.height }
func (s *traceStage) Resize(w, h int32) { s.width, s.height = w, h }
func (s *traceStage) RequestRelayout() {}

// traceWindow is a fixed-size native window handle.
type traceWindow struct {
	width, height int32
}

func (w *traceWindow) Size() (int32, int32) { return w.width, w.height }

func main() {
	var (
		configPath = flag.String("config", "", "backend config file (YAML)")
		scriptPath = flag.String("script", "-", "record script, - for stdin")
	)
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		log.Fatal(err)
	}

	script := os.Stdin
	if *scriptPath != "-" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		script = f
	}

	backend := app.New(cfg, logger)
	backend.SetStage(&traceStage{})
	backend.OnReady(func() bool { return true })

	// The feeder parses on its own goroutine and the records reach
	// the backend serialized through one channel, keeping all queue
	// access on this goroutine.
	records := make(chan record)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(records)
		return feed(ctx, script, records)
	})

	for rec := range records {
		action := apply(backend, rec)
		drain(backend)
		if action == app.ActionShutdown {
			break
		}
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func apply(b *app.Backend, rec record) app.Action {
	switch {
	case rec.motion != nil:
		b.HandleMotion(*rec.motion)
	case rec.key != nil:
		b.HandleKey(*rec.key)
	case rec.cmd != nil:
		return b.HandleCommand(*rec.cmd)
	}
	return app.ActionNone
}

func drain(b *app.Backend) {
	for b.HasPending() {
		printEvent(b.NextEvent())
	}
}

func printEvent(e event.Event) {
	switch e := e.(type) {
	case pointer.ButtonEvent:
		fmt.Printf("%s button=%d t=%d pos=%v\n", e.Kind, e.Button, e.Time, e.Position)
	case pointer.MotionEvent:
		fmt.Printf("Motion t=%d pos=%v mods=%s\n", e.Time, e.Position, e.Modifiers)
	case pointer.ScrollEvent:
		fmt.Printf("Scroll %s t=%d pos=%v\n", e.Direction, e.Time, e.Position)
	case key.Event:
		fmt.Printf("Key %s t=%d code=%d sym=%#x rune=%q\n", e.State, e.Time, e.Keycode, e.Keysym, e.Rune())
	case system.ResizeEvent:
		fmt.Printf("Resize %dx%d\n", e.Width, e.Height)
	case system.StageEvent:
		fmt.Printf("%s\n", event.KindOf(e))
	case system.DestroyEvent:
		fmt.Println("Destroy")
	default:
		fmt.Printf("%s\n", event.KindOf(e))
	}
}

func feed(ctx context.Context, r io.Reader, out chan<- record) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}

func parseLine(text string) (record, error) {
	fields := strings.Fields(text)
	switch fields[0] {
	case "motion":
		if len(fields) != 5 {
			return record{}, fmt.Errorf("motion wants 4 arguments")
		}
		var action app.MotionAction
		switch fields[1] {
		case "down":
			action = app.MotionDown
		case "up":
			action = app.MotionUp
		case "move":
			action = app.MotionMove
		default:
			return record{}, fmt.Errorf("unknown motion action %q", fields[1])
		}
		t, err := parseUint32(fields[2])
		if err != nil {
			return record{}, err
		}
		x, err := strconv.ParseFloat(fields[3], 32)
		if err != nil {
			return record{}, err
		}
		y, err := strconv.ParseFloat(fields[4], 32)
		if err != nil {
			return record{}, err
		}
		return record{motion: &app.MotionRecord{
			Action: action,
			Time:   t,
			X:      float32(x),
			Y:      float32(y),
		}}, nil

	case "key":
		if len(fields) < 4 || len(fields) > 5 {
			return record{}, fmt.Errorf("key wants 3 or 4 arguments")
		}
		var state app.KeyState
		switch fields[1] {
		case "down":
			state = app.KeyStateDown
		case "up":
			state = app.KeyStateUp
		case "virtual":
			state = app.KeyStateVirtual
		default:
			return record{}, fmt.Errorf("unknown key state %q", fields[1])
		}
		t, err := parseUint32(fields[2])
		if err != nil {
			return record{}, err
		}
		code, err := parseUint32(fields[3])
		if err != nil {
			return record{}, err
		}
		rec := app.KeyRecord{State: state, Time: t, Keycode: uint16(code)}
		if len(fields) == 5 {
			sym, err := parseUint32(fields[4])
			if err != nil {
				return record{}, err
			}
			rec.Keysym = sym
		}
		return record{key: &rec}, nil

	case "cmd":
		if len(fields) < 2 {
			return record{}, fmt.Errorf("cmd wants a command name")
		}
		cmd := app.LifecycleCommand{}
		switch fields[1] {
		case "init":
			cmd.Cmd = app.CmdInitWindow
		case "term":
			cmd.Cmd = app.CmdTermWindow
		case "resized":
			cmd.Cmd = app.CmdWindowResized
		case "redraw":
			cmd.Cmd = app.CmdRedrawNeeded
		case "focus":
			cmd.Cmd = app.CmdGainedFocus
		case "unfocus":
			cmd.Cmd = app.CmdLostFocus
		default:
			return record{}, fmt.Errorf("unknown command %q", fields[1])
		}
		switch len(fields) {
		case 2:
		case 4:
			w, err := parseUint32(fields[2])
			if err != nil {
				return record{}, err
			}
			h, err := parseUint32(fields[3])
			if err != nil {
				return record{}, err
			}
			cmd.Window = &traceWindow{width: int32(w), height: int32(h)}
		default:
			return record{}, fmt.Errorf("cmd wants an optional width and height pair")
		}
		return record{cmd: &cmd}, nil
	}
	return record{}, fmt.Errorf("unknown record %q", fields[0])
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
