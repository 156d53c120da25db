package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/pdok/spatialvec/query"
	"github.com/pdok/spatialvec/spatial"
	"github.com/urfave/cli/v2"
)

const QUERY string = `query`
const OPS string = `ops`
const DEGREES string = `degrees`
const TOLERANCE string = `tolerance`
const WIDTH string = `width`
const SORTED string = `sorted`
const VERBOSE string = `verbose`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "spatialvec"
	app.Usage = "Derived quantities (magnitude, angles, parallelism) of columns of 2D/3D vectors"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     QUERY,
			Aliases:  []string{"q"},
			Usage:    `Query JSON, or @path to a file containing it. E.g.: {"a": [[3,4,0]], "b": [[4,3,0]]}`,
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(QUERY)},
		},
		&cli.StringFlag{
			Name:     OPS,
			Aliases:  []string{"o"},
			Usage:    "Comma separated operations. One or more of: " + strings.Join(query.Operations, ","),
			Value:    "mag,phi",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(OPS)},
		},
		&cli.BoolFlag{
			Name:     DEGREES,
			Aliases:  []string{"d"},
			Usage:    "Report angles in degrees instead of radians",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(DEGREES)},
		},
		&cli.Float64Flag{
			Name:     TOLERANCE,
			Aliases:  []string{"t"},
			Usage:    "Tolerance of the is* predicates",
			Value:    spatial.DefaultTolerance,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(TOLERANCE)},
		},
		&cli.UintFlag{
			Name:     WIDTH,
			Aliases:  []string{"w"},
			Usage:    "Truncate output lines to this width, 0 means no limit",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(WIDTH)},
		},
		&cli.BoolFlag{
			Name:     SORTED,
			Aliases:  []string{"s"},
			Usage:    "Print results ordered by operation name instead of request order",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(SORTED)},
		},
		&cli.BoolFlag{
			Name:     VERBOSE,
			Aliases:  []string{"v"},
			Usage:    "Log progress to stderr",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(VERBOSE)},
		},
	}

	app.Action = func(c *cli.Context) error {
		verbose := c.Bool(VERBOSE)
		raw, err := readQuery(c.String(QUERY))
		if err != nil {
			return err
		}
		q, err := query.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
		ops := strings.Split(c.String(OPS), ",")
		if verbose {
			log.Printf("evaluating %d operation(s) on %d %dD vector(s)", len(ops), len(q.A), q.Dim())
		}
		results, err := query.Evaluate(q, ops, query.Options{
			Degrees:   c.Bool(DEGREES),
			Tolerance: c.Float64(TOLERANCE),
		})
		if err != nil {
			return err
		}
		if c.Bool(SORTED) {
			fmt.Print(query.FormatSorted(results, c.Uint(WIDTH)))
		} else {
			fmt.Print(query.Format(results, c.Uint(WIDTH)))
		}
		if verbose {
			log.Println("done")
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func readQuery(s string) ([]byte, error) {
	path, isPath := strings.CutPrefix(s, "@")
	if !isPath {
		return []byte(s), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading query file: %w", err)
	}
	return raw, nil
}
