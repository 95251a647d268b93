// Command stripscan decodes a water test strip photograph and prints the
// resolved analyte readings as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"stripscan/internal/calibration"
	"stripscan/internal/strip"
)

func main() {
	imagePath := flag.String("image", "", "Path to strip photo (JPEG, PNG, TIFF, BMP, or WebP)")
	fromStdin := flag.Bool("base64", false, "Read a base64-encoded image from stdin instead of -image")
	calibrationPath := flag.String("calibration", "", "Optional YAML calibration table (default: built-in 16-analyte table)")
	debugOut := flag.String("debug-out", "", "Write an annotated copy of the rectified strip to this path")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *imagePath == "" && !*fromStdin {
		fmt.Println("Usage: stripscan -image <path> [-calibration table.yaml] [-debug-out strip.png] [-verbose]")
		fmt.Println("       stripscan -base64 < payload.txt")
		os.Exit(1)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	table := calibration.Default()
	if *calibrationPath != "" {
		var err error
		table, err = calibration.Load(*calibrationPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load calibration: %v\n", err)
			os.Exit(1)
		}
		log.Debug().Int("analytes", table.Len()).Str("path", *calibrationPath).Msg("loaded calibration table")
	}

	pipeline := strip.NewPipeline(strip.DefaultParams(), table, log)

	var report *strip.Report
	var err error
	switch {
	case *fromStdin:
		payload, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", rerr)
			os.Exit(1)
		}
		report, err = pipeline.ProcessBase64(strings.TrimSpace(string(payload)))
	case *debugOut != "":
		buf, rerr := os.ReadFile(*imagePath)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", rerr)
			os.Exit(1)
		}
		var overlay gocv.Mat
		report, overlay, err = pipeline.ProcessWithOverlay(buf)
		if err == nil {
			if ok := gocv.IMWrite(*debugOut, overlay); !ok {
				fmt.Fprintf(os.Stderr, "Failed to write %s\n", *debugOut)
			}
			overlay.Close()
		}
	default:
		buf, rerr := os.ReadFile(*imagePath)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", rerr)
			os.Exit(1)
		}
		report, err = pipeline.Process(buf)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
