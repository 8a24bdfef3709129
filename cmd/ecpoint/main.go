// ecpoint is a command line front end for the curve package: it lists the
// curve catalog, evaluates point operations and runs known-answer vectors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:   3,
		EnvVars: []string{"ECPOINT_VERBOSITY"},
	}
	curveFlag = &cli.StringFlag{
		Name:    "curve",
		Usage:   "Curve name or alias, see 'ecpoint curves'",
		Value:   "secp256r1",
		EnvVars: []string{"ECPOINT_CURVE"},
	}
	vectorsFlag = &cli.StringFlag{
		Name:    "vectors",
		Usage:   "Known-answer vector file (.json, otherwise binary); built-in set if empty",
		EnvVars: []string{"ECPOINT_VECTORS"},
	}
	outFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "Output file (.json, otherwise binary)",
		Required: true,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "ecpoint",
		Usage: "elliptic curve point arithmetic over prime and binary fields",
		Flags: []cli.Flag{verbosityFlag},
		Before: func(ctx *cli.Context) error {
			setupLogging(ctx.App.ErrWriter, ctx.Int(verbosityFlag.Name))
			return nil
		},
		Commands: []*cli.Command{
			curvesCommand,
			katCommand,
			exportCommand,
			validateCommand,
			addCommand,
			doubleCommand,
			mulCommand,
		},
	}
}

func setupLogging(w io.Writer, verbosity int) {
	if w == nil {
		w = os.Stderr
	}
	handler := log.NewTerminalHandlerWithLevel(w, log.FromLegacyLevel(verbosity), false)
	log.SetDefault(log.NewLogger(handler))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
