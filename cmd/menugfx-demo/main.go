// Command menugfx-demo renders a sample menu frame with the software
// display driver and writes it as a PNG.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/menugfx"
	"github.com/gogpu/menugfx/config"
	"github.com/gogpu/menugfx/driver"
	"github.com/gogpu/menugfx/driver/software"
	"github.com/gogpu/menugfx/gfxmath"
	"github.com/gogpu/menugfx/status"
)

var entries = []string{
	"Load Core",
	"Load Content",
	"Online Updater",
	"Settings",
	"Information",
	"Quit",
}

func main() {
	var (
		width    = flag.Int("width", 1280, "framebuffer width")
		height   = flag.Int("height", 720, "framebuffer height")
		output   = flag.String("output", "menu.png", "output file")
		cfgPath  = flag.String("config", "", "settings file (.toml, .yaml)")
		selected = flag.Int("selected", 1, "highlighted entry")
		osk      = flag.Bool("osk", false, "draw the on-screen keyboard")
		watch    = flag.Bool("watch", false, "re-render whenever the settings file changes")
		verbose  = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		menugfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	settings, err := config.LoadOptional(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	disp := menugfx.New(
		menugfx.WithSettings(settings),
		menugfx.WithVideoDriver(software.Ident),
		menugfx.WithDevice(img),
		menugfx.WithScissorCheck(true),
	)
	disp.SetWidth(*width)
	disp.SetHeight(*height)
	if err := disp.InitFirstDriver(false); err != nil {
		log.Fatalf("No display driver: %v", err)
	}
	defer disp.Free()

	frame := func() {
		if err := render(disp, *selected, *osk); err != nil {
			log.Printf("Render failed: %v", err)
			return
		}
		if err := save(img, *output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		disp.ClearDirty()
		log.Printf("Menu saved to %s (%dx%d)\n", *output, *width, *height)
	}
	frame()

	if !*watch || *cfgPath == "" {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = config.Watch(ctx, *cfgPath, func(s config.Settings, err error) {
		if err != nil {
			log.Printf("Settings not reloaded: %v", err)
			return
		}
		disp.SetSettings(s)
		disp.MarkDirty()
		frame()
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

func render(disp *menugfx.Display, selected int, osk bool) error {
	w, h := disp.FramebufferSize()
	fw, fh := float32(w), float32(h)
	scale := disp.MenuScale(w, h)
	s := disp.Settings()

	disp.BeginFrame()
	disp.DrawBackground(&driver.Draw{
		Color: gfxmath.Gradient(gfxmath.Hex(0x202a44, 1), gfxmath.Hex(0x0b0f1a, 1)),
	}, false, 1)
	disp.DrawPipeline(&driver.Draw{PipelineID: driver.PipelineRibbon, PipelineActive: true})

	title, err := disp.Font(menugfx.FontMenuBold, 28*scale, false)
	if err != nil {
		return err
	}
	defer disp.FontFree(title)
	body, err := disp.Font(menugfx.FontMenu, 22*scale, false)
	if err != nil {
		return err
	}
	defer disp.FontFree(body)

	header := 64 * scale
	disp.SetHeaderHeight(int(header))
	bar := gfxmath.HexToFloat(0x000000, 0.45)
	disp.DrawQuad(0, 0, fw, header, &bar, 0)
	disp.DrawQuad(0, fh-header, fw, header, &bar, 0)

	text := menugfx.TextStyle{Color: 0xffffffff, Shadows: s.Shadows, ShadowOffset: 2 * scale}
	disp.DrawText(title, "Main Menu", 32*scale, header*0.65, text)

	now := time.Now()
	right := text
	right.Align = driver.AlignRight
	clock := status.FormatDatetime(s.DatetimeRequest(), now)
	if s.ShowBattery {
		clock = status.FormatPowerState(status.PowerState{Enabled: true, Percent: 87, Charging: true}) + "  " + clock
	}
	disp.DrawText(body, clock, fw-32*scale, header*0.65, right)

	panel, err := panelTexture(disp)
	if err != nil {
		return err
	}
	defer disp.UnloadTexture(panel)

	listX, listY := 96*scale, header+32*scale
	listW, rowH := fw-2*listX, 48*scale
	disp.DrawTextureSlice(panel, listX-16*scale, listY-16*scale, 32, 32,
		listW+32*scale, float32(len(entries))*rowH+32*scale, 8, scale, nil)

	disp.ScissorBegin(int(listX), int(listY), int(listW), int(float32(len(entries))*rowH))
	for i, e := range entries {
		y := listY + float32(i)*rowH
		if i == selected {
			hl := gfxmath.HexToFloat(0x4f7cff, 0.6)
			disp.DrawQuad(listX, y, listW, rowH, &hl, 0)
		}
		disp.DrawText(body, e, listX+24*scale, y+rowH*0.7, text)
	}
	disp.ScissorEnd()

	spinner := gfxmath.HexToFloat(0xffffff, 0.8)
	angle := float32(now.UnixMilli()%2000) / 2000 * 2 * math.Pi
	disp.DrawTexture(0, fw-64*scale, fh-header/2-12*scale, 24*scale, 24*scale, angle, 1, &spinner)

	if osk {
		keys := make([]string, menugfx.KeyboardKeys)
		for i := range keys {
			keys[i] = string(rune('a' + i%26))
		}
		disp.DrawKeyboard(0, body, keys, selected, 0x4f7cffff)
	}
	return nil
}

// panelTexture builds a rounded-looking frame: an opaque border around
// a translucent centre.
func panelTexture(disp *menugfx.Display) (driver.Texture, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := color.NRGBA{R: 0x10, G: 0x14, B: 0x22, A: 0xa0}
			if x < 2 || y < 2 || x >= 30 || y >= 30 {
				c = color.NRGBA{R: 0x80, G: 0x90, B: 0xb0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return disp.LoadTexture(img, driver.FilterLinear)
}

func save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
