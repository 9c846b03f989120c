package main

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/watchface"
	"github.com/bodgit/watchface/face"
	"github.com/bodgit/watchface/preview"
	"github.com/urfave/cli/v2"
)

const defaultDB = "watchface.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// openFace reads and decodes one face file. A partial decode is reported
// on stderr but still returned, so the usable records aren't thrown away.
func openFace(c *cli.Context, file string) (*face.Face, []byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}

	d := &face.Decoder{Logger: newLogger(c)}
	f, err := d.Parse(b)
	if err != nil {
		if f == nil {
			return nil, nil, err
		}
		fmt.Fprintf(os.Stderr, "Warning: incomplete decode of \"%s\": %v\n", file, err)
	}

	return f, b, nil
}

func baseName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}

func printInfo(f *face.Face, file string) {
	h := f.Header
	fmt.Printf("File:      %s\n", file)
	fmt.Printf("API:       %d", h.APIVersion)
	if s := h.APIDescription(); s != "" {
		fmt.Printf(" (%s)", s)
	}
	fmt.Println()
	fmt.Printf("Preview:   %dx%d at %#x\n", h.PreviewWidth, h.PreviewHeight, h.PreviewOffset)
	fmt.Printf("DigitSets: %d\n", len(f.DigitSets))
	fmt.Printf("Widgets:   %d\n", len(f.Widgets))
	for i, w := range f.Widgets {
		fmt.Printf("  %2d: %s\n", i, w.Kind())
		for _, ref := range w.Images() {
			if ref.Zero() {
				continue
			}
			fmt.Printf("      %dx%d at %#x\n", ref.Width, ref.Height, ref.Offset)
		}
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "watchface"
	app.Usage = "MO YOUNG / DA FIT watch face utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"WATCHFACE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Print a summary of a face file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, _, err := openFace(c, c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				printInfo(f, c.Args().First())

				return nil
			},
		},
		{
			Name:        "dump",
			Usage:       "Extract every embedded image of a face file",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir, d",
					Usage: "output directory, defaults to the face name",
				},
				&cli.StringFlag{
					Name:  "format, f",
					Value: "bmp",
					Usage: "output format: bin, raw or bmp",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				file := c.Args().First()

				format, err := watchface.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, _, err := openFace(c, file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				dir := c.String("dir")
				if dir == "" {
					dir = baseName(file)
				}

				m := watchface.New(nil, newLogger(c))
				if err := m.Dump(f, dir, format); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "report",
			Usage:       "Print a JSON summary of a face file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				file := c.Args().First()

				f, b, err := openFace(c, file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r := watchface.NewReport(f)
				r.Path = file
				r.SHA1 = fmt.Sprintf("%X", sha1.Sum(b))

				out, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Println(string(out))

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a face to a GIF preview",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out, o",
					Usage: "output filename, defaults to the face name with a .gif extension",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				file := c.Args().First()

				f, _, err := openFace(c, file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := preview.Render(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				out := c.String("out")
				if out == "" {
					out = baseName(file) + ".gif"
				}

				w, err := os.Create(out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer w.Close()

				if err := preview.EncodeGIF(w, m); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog face files",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := watchface.NewFaceDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				m := watchface.New(db, newLogger(c))

				if err := m.Scan(c.Args().First()); err != nil {
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
