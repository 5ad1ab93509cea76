package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math/rand"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/bodgit/epaper"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "epaper"
	app.Usage = "WaveShare 5.65\" 7-color e-paper image converter"
	app.Version = "1.0.0"

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert images to packed e-paper frames",
			Description: "Input images must be 600 x 448 pixels; anything else is skipped with a warning.",
			ArgsUsage:   "IMAGE [IMAGE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "destination directory for e-paper images",
					Required: true,
				},
				&cli.BoolFlag{
					Name:    "png",
					Aliases: []string{"p"},
					Usage:   "also save PNG previews of the dithered images",
				},
				&cli.BoolFlag{
					Name:    "random",
					Aliases: []string{"r"},
					Usage:   "randomize order of images that don't already exist in the output directory",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				rand.Seed(time.Now().UnixNano())

				e := epaper.New(log.New(os.Stderr, "", 0))

				if err := e.Convert(c.Args().Slice(), c.String("output"), c.Bool("png"), c.Bool("random")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
