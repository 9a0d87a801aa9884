package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/spritemask/internal/spritegen"
)

func main() {
	out := flag.String("out", "diamond", "raw sprite sheet to write")
	preview := flag.String("preview", "diamond.png", "PNG contact sheet to write, empty to skip")
	frames := flag.Int("frames", spritegen.DefaultFrames, "number of frames")
	width := flag.Int("width", spritegen.DefaultWidth, "frame width in pixels")
	height := flag.Int("height", spritegen.DefaultHeight, "frame height in pixels")
	scale := flag.Int("scale", 8, "preview upscale factor")
	flag.Parse()

	fmt.Println("Sprite Sheet Generator")
	fmt.Println("======================")
	fmt.Println()

	if err := run(*out, *preview, *frames, *width, *height, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Run spritedemo to see the sheet animated.")
}

func run(out, preview string, frames, width, height, scale int) error {
	sheet, err := spritegen.Diamond(frames, width, height)
	if err != nil {
		return err
	}

	if err := spritegen.SaveRaw(out, sheet); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	fmt.Printf("✓ Generated %s (%d frames @ %dx%d, %d bytes)\n", out, frames, width, height, sheet.Size())

	if preview == "" {
		return nil
	}
	if err := spritegen.SaveContactSheet(preview, sheet, scale); err != nil {
		return fmt.Errorf("failed to save %s: %w", preview, err)
	}
	fmt.Printf("✓ Generated %s (%dx upscale)\n", preview, scale)
	return nil
}
