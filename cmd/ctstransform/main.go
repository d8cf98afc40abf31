// Command ctstransform is the peripheral CLI named in spec.md §6: a thin
// wrapper over the library's get_crs/transform surface, not part of the
// core engine itself. Flags follow the teacher's (and the pack's
// de-bkg/gognss's) urfave/cli/v2 convention.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/geocts/ctsgo/op"
	"github.com/geocts/ctsgo/plan"
	"github.com/geocts/ctsgo/registry"
	"github.com/geocts/ctsgo/xfrm"
	"github.com/urfave/cli/v2"
)

func main() {
	xfrm.RegisterWellKnownTransformations()

	app := &cli.App{
		Name:  "ctstransform",
		Usage: "transform a point between two geodetic coordinate reference systems",
		Commands: []*cli.Command{
			listCommand(),
			transformCommand(),
			wktCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the authority:code pairs this build's registry knows about",
		Action: func(c *cli.Context) error {
			for _, code := range registry.Default.Codes() {
				fmt.Println(code)
			}
			return nil
		},
	}
}

func transformCommand() *cli.Command {
	return &cli.Command{
		Name:      "transform",
		Usage:     "transform a point from one registered CRS to another",
		ArgsUsage: "<source authority:code> <target authority:code> <ordinate>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "exact", Usage: "prefer the exact-form seven-parameter datum shift over the default linearized one, where a candidate chain offers both"},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) < 3 {
				return cli.Exit("usage: ctstransform transform <source authority:code> <target authority:code> <ordinate>...", 1)
			}
			source, err := lookup(args[0])
			if err != nil {
				return err
			}
			target, err := lookup(args[1])
			if err != nil {
				return err
			}
			point, err := parsePoint(args[2:])
			if err != nil {
				return err
			}

			candidates, err := plan.CreateCoordinateOperations(source, target)
			if err != nil {
				return err
			}
			selector := plan.MostPrecise
			if c.Bool("exact") {
				selector = plan.MostPreciseExact
			}
			chain, err := selector(candidates)
			if err != nil {
				return err
			}
			result, err := chain.Transform(point)
			if err != nil {
				return err
			}

			fmt.Println(formatPoint(result))
			return nil
		},
	}
}

// wktCommand documents the create_from_wkt surface named in spec.md §6
// without implementing it: the WKT/PRJ/proj.4 textual parsers are an
// out-of-scope external collaborator (spec.md §1's Out of scope list).
func wktCommand() *cli.Command {
	return &cli.Command{
		Name:      "from-wkt",
		Usage:     "(not implemented here) build a CRS from WKT text",
		ArgsUsage: "<wkt text>",
		Action: func(c *cli.Context) error {
			return cli.Exit("from-wkt: WKT parsing is an external collaborator, out of scope for this engine (spec.md §1)", 1)
		},
	}
}

func lookup(spec string) (plan.CRS, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected authority:code, got %q", spec)
	}
	return registry.Default.Lookup(parts[0], parts[1])
}

func parsePoint(args []string) (op.Point, error) {
	p := make(op.Point, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("ordinate %d (%q): %w", i, a, err)
		}
		p[i] = v
	}
	return p, nil
}

func formatPoint(p op.Point) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return strings.Join(parts, " ")
}
