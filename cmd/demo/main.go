// Command demo renders a markup showcase to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"github.com/gildterm/gild"
)

var log *slog.Logger

func main() {
	var (
		colors  = flag.String("colors", "truecolor", "color fidelity: standard, 256, or truecolor")
		verbose = flag.Bool("v", false, "log parse diagnostics to stderr")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	log = slog.New(handler)
	gild.SetLogHandler(handler)

	var cs gild.ColorSystem
	switch *colors {
	case "standard":
		cs = gild.ColorSystemStandard
	case "256":
		cs = gild.ColorSystemEightBit
	case "truecolor":
		cs = gild.ColorSystemTrueColor
	default:
		log.Error("unknown color system", "colors", *colors)
		os.Exit(1)
	}

	samples := []string{
		"[bold]bold[/bold] [dim]dim[/dim] [italic]italic[/italic] [underline]underline[/underline]",
		"[blink]blink[/blink] [reverse]reverse[/reverse] [strikethrough]strikethrough[/strikethrough]",
		"[red]red[/red] [green]green[/green] [yellow]yellow[/yellow] [blue]blue[/blue] [magenta]magenta[/magenta] [cyan]cyan[/cyan]",
		"[bright_red]bright_red[/bright_red] [bright_green]bright_green[/bright_green] [bright_blue]bright_blue[/bright_blue]",
		"[bold red on blue]bold red on blue[/]",
		"[#FF8040]hex #FF8040[/] [#0AF]hex #0AF[/]",
		"[bold]nested [red]styles[/red] compose[/bold]",
		"escaped [[brackets] stay literal",
	}

	for _, sample := range samples {
		text, err := gild.ParseMarkup(sample)
		if err != nil {
			log.Error("parse failed", "markup", sample, "error", err)
			continue
		}
		fmt.Println(gild.RenderSegments(text.ToSegments(), cs))
	}

	// A slice of the 256 color cube, downgraded to the requested fidelity
	swatch := gild.NewText("")
	for i := 16; i < 52; i++ {
		block := gild.NewText("  ")
		if err := block.StylizeAll(gild.NewStyle().Background(gild.EightBitColor(uint8(i)))); err != nil {
			log.Error("stylize failed", "error", err)
			os.Exit(1)
		}
		swatch.AppendText(block)
	}
	fmt.Println(gild.RenderSegments(swatch.ToSegments(), cs))
}
