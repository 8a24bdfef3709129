package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/izouxv/goEcc/curve"
	"github.com/izouxv/goEcc/kat"
	"github.com/izouxv/goEcc/utils"
	"github.com/urfave/cli/v2"
)

var errVectorsFailed = errors.New("known-answer vectors failed")

var (
	curvesCommand = &cli.Command{
		Name:   "curves",
		Usage:  "List the curve catalog",
		Action: listCurves,
	}
	katCommand = &cli.Command{
		Name:   "kat",
		Usage:  "Run known-answer vectors through the validity check",
		Flags:  []cli.Flag{vectorsFlag},
		Action: runVectors,
	}
	exportCommand = &cli.Command{
		Name:   "export",
		Usage:  "Write known-answer vectors to a file",
		Flags:  []cli.Flag{vectorsFlag, outFlag},
		Action: exportVectors,
	}
	validateCommand = &cli.Command{
		Name:      "validate",
		Usage:     "Check whether a point lies on a curve",
		ArgsUsage: "<point>",
		Flags:     []cli.Flag{curveFlag},
		Action:    validatePoint,
	}
	addCommand = &cli.Command{
		Name:      "add",
		Usage:     "Add two points",
		ArgsUsage: "<point> <point>",
		Flags:     []cli.Flag{curveFlag},
		Action:    addPoints,
	}
	doubleCommand = &cli.Command{
		Name:      "double",
		Usage:     "Double a point",
		ArgsUsage: "<point>",
		Flags:     []cli.Flag{curveFlag},
		Action:    doublePoint,
	}
	mulCommand = &cli.Command{
		Name:      "mul",
		Usage:     "Multiply a point, or the base point if omitted, by an integer",
		ArgsUsage: "<scalar> [point]",
		Flags:     []cli.Flag{curveFlag},
		Action:    mulPoint,
	}
)

func listCurves(ctx *cli.Context) error {
	for _, name := range curve.CurveNames() {
		c := curve.CurveGet(name)
		fmt.Fprintf(ctx.App.Writer, "%-10s %-6s %d\n", c.Name, c.Kind, c.BitSize)
	}
	return nil
}

func loadVectors(ctx *cli.Context) ([]kat.Vector, error) {
	path := ctx.String(vectorsFlag.Name)
	if path == "" {
		return kat.Default(), nil
	}
	log.Debug("Loading vectors", "file", path)
	return kat.LoadFile(path)
}

func runVectors(ctx *cli.Context) error {
	vectors, err := loadVectors(ctx)
	if err != nil {
		return err
	}
	report, err := kat.NewRunner(log.Root()).Run(ctx.Context, vectors)
	if err != nil {
		return err
	}
	for _, f := range report.Failures {
		fmt.Fprintln(ctx.App.Writer, "FAIL", f)
	}
	fmt.Fprintf(ctx.App.Writer, "%d/%d passed, digest %s\n", report.Passed, report.Total, report.Digest.Hex())
	if !report.OK() {
		return errVectorsFailed
	}
	return nil
}

func exportVectors(ctx *cli.Context) error {
	vectors, err := loadVectors(ctx)
	if err != nil {
		return err
	}
	out := ctx.String(outFlag.Name)
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(out), ".json") {
		err = kat.WriteVectors(f, vectors)
	} else {
		err = kat.Encode(f, vectors)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Info("Exported vectors", "file", out, "count", len(vectors))
	return nil
}

func selectedCurve(ctx *cli.Context) (*curve.CurveParams, error) {
	name := ctx.String(curveFlag.Name)
	c := curve.CurveGet(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", kat.ErrUnknownCurve, name)
	}
	return c, nil
}

// parsePoint reads "x,y" or "inf". Coordinates must be non-negative.
func parsePoint(s string) (curve.Point, error) {
	if strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity") {
		return curve.Infinity(), nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return curve.Point{}, fmt.Errorf("invalid point %q, want x,y or inf", s)
	}
	x, err := utils.ParseBig(xs)
	if err != nil {
		return curve.Point{}, err
	}
	y, err := utils.ParseBig(ys)
	if err != nil {
		return curve.Point{}, err
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return curve.Point{}, fmt.Errorf("invalid point %q: negative coordinate", s)
	}
	return curve.NewPoint(x, y), nil
}

// pointArgs parses exactly n point arguments.
func pointArgs(ctx *cli.Context, n int) ([]curve.Point, error) {
	if ctx.NArg() != n {
		return nil, fmt.Errorf("expected %d point argument(s), got %d", n, ctx.NArg())
	}
	points := make([]curve.Point, n)
	for i := range points {
		p, err := parsePoint(ctx.Args().Get(i))
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func printPoint(ctx *cli.Context, c *curve.CurveParams, p curve.Point) {
	if !curve.IsPointValid(c, p) {
		log.Warn("Result is not on the curve", "curve", c.Name)
	}
	fmt.Fprintln(ctx.App.Writer, p)
}

func validatePoint(ctx *cli.Context) error {
	c, err := selectedCurve(ctx)
	if err != nil {
		return err
	}
	points, err := pointArgs(ctx, 1)
	if err != nil {
		return err
	}
	if curve.IsPointValid(c, points[0]) {
		fmt.Fprintln(ctx.App.Writer, "valid")
	} else {
		fmt.Fprintln(ctx.App.Writer, "invalid")
	}
	return nil
}

func addPoints(ctx *cli.Context) error {
	c, err := selectedCurve(ctx)
	if err != nil {
		return err
	}
	points, err := pointArgs(ctx, 2)
	if err != nil {
		return err
	}
	printPoint(ctx, c, curve.PointAdd(c, points[0], points[1]))
	return nil
}

func doublePoint(ctx *cli.Context) error {
	c, err := selectedCurve(ctx)
	if err != nil {
		return err
	}
	points, err := pointArgs(ctx, 1)
	if err != nil {
		return err
	}
	printPoint(ctx, c, curve.PointDouble(c, points[0]))
	return nil
}

func mulPoint(ctx *cli.Context) error {
	c, err := selectedCurve(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() < 1 || ctx.NArg() > 2 {
		return fmt.Errorf("expected <scalar> [point], got %d argument(s)", ctx.NArg())
	}
	k, err := utils.ParseBig(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	p := curve.Generator(c)
	if ctx.NArg() == 2 {
		if p, err = parsePoint(ctx.Args().Get(1)); err != nil {
			return err
		}
	}
	printPoint(ctx, c, curve.PointMul(c, k, p))
	return nil
}
