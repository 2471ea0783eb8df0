package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nfnt/resize"
	"github.com/vearutop/colorconstancy"
)

func main() {
	fs := flag.NewFlagSet("ccorrect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image (jpeg, png, gif, bmp, tiff, webp)")
	outPath := fs.String("out", "", "output image (jpeg, or png by extension)")
	gamma := fs.Float64("gamma", colorconstancy.DefaultGamma, "display gamma for linearization")
	q := fs.Int("q", 92, "jpeg quality")
	width := fs.Uint("w", 0, "downscale to width before correction (0 keeps size)")
	height := fs.Uint("h", 0, "downscale to height before correction (0 keeps size)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *inPath == "" || *outPath == "" {
		usage(fs)
		os.Exit(2)
	}
	if err := run(*inPath, *outPath, *gamma, *q, *width, *height); err != nil {
		fail(err)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: ccorrect -in input.jpg -out output.jpg [-gamma 2.2] [-q 92] [-w 1024] [-h 768]")
	fs.PrintDefaults()
}

func run(inPath, outPath string, gamma float64, quality int, width, height uint) error {
	img, err := colorconstancy.ReadFile(inPath)
	if err != nil {
		return err
	}
	if width > 0 || height > 0 {
		scaled := resize.Resize(width, height, img.GoImage(), resize.Lanczos3)
		img = colorconstancy.FromImage(scaled)
	}
	corrected, err := colorconstancy.Correct(colorconstancy.FromBuffer(img), func(opt *colorconstancy.Options) {
		opt.Gamma = gamma
	})
	if err != nil {
		return err
	}
	return corrected.WriteFile(outPath, quality)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
