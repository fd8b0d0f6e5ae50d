// Command imageprep prepares sprite art for the game.
//
// Usage:
//
//	imageprep -dir assets/images -pass all
//
// Passes:
//
//	convert     write a PNG next to every JPEG and normalise PNGs to RGBA
//	white       key out near-white backgrounds of the sprite files in place
//	bluescreen  key out blue screens of 1024x1024 renders, save 256x256 "_processed.png" copies
//	crop        save the top-left 300x300 of every image as a "_cropped" copy
//	all         convert, then white
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"whacamole/internal/imageprep"
	"whacamole/internal/logging"
)

func main() {
	dir := flag.String("dir", "assets/images", "directory holding the images")
	pass := flag.String("pass", "all", "convert | white | bluescreen | crop | all")
	sprites := flag.String("sprites", "mole.png,helmet_mole.png,cat.png", "comma-separated files for the white pass")
	threshold := flag.Int("threshold", imageprep.DefaultWhiteThreshold, "white pass: channel mean above which a pixel counts as white")
	tolerance := flag.Int("tolerance", imageprep.DefaultWhiteTolerance, "white pass: maximum channel spread of a white pixel")
	hueMin := flag.Float64("hue-min", imageprep.DefaultBlueKey.HueMin, "blue screen: lowest hue in degrees")
	hueMax := flag.Float64("hue-max", imageprep.DefaultBlueKey.HueMax, "blue screen: highest hue in degrees")
	satMin := flag.Float64("sat-min", imageprep.DefaultBlueKey.SatMin, "blue screen: minimum saturation")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.Setup(level, "console", os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	p := &imageprep.Processor{Dir: *dir, Log: logger}
	white := func() error {
		return p.RemoveWhiteBackgrounds(strings.Split(*sprites, ","), *threshold, *tolerance)
	}

	switch *pass {
	case "convert":
		err = p.ConvertFormats()
	case "white":
		err = white()
	case "all":
		if err = p.ConvertFormats(); err == nil {
			err = white()
		}
	case "bluescreen":
		var processed, skipped int
		processed, skipped, err = p.RemoveBlueScreens(imageprep.KeyRange{HueMin: *hueMin, HueMax: *hueMax, SatMin: *satMin})
		logger.Info().Int("processed", processed).Int("skipped", skipped).Msg("blue screen pass done")
	case "crop":
		var n int
		n, err = p.CropAll()
		logger.Info().Int("cropped", n).Msg("crop pass done")
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("pass", *pass).Msg("image preparation failed")
	}
}
