/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// hakoiri solves sliding-block puzzles described by an XML puzzle file
// (spec.md §6's CLI surface).
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/urfave/cli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hakoiri/solver/config"
	"github.com/hakoiri/solver/logging"
	"github.com/hakoiri/solver/printer"
	"github.com/hakoiri/solver/puzzle"
	"github.com/hakoiri/solver/puzzlefile"
	"github.com/hakoiri/solver/search"
	"github.com/hakoiri/solver/util"
)

// version is injected by build flags; "dev" when built locally.
var version = "dev"

var out = message.NewPrinter(language.English)

// Exit codes per spec.md §7.
const (
	exitSuccess  = 0
	exitNoAnswer = 1
	exitStopped  = 3
	exitInputErr = 11
)

func main() {
	app := cli.NewApp()
	app.Name = "hakoiri"
	app.Usage = "solve a sliding-block puzzle from an XML description"
	app.Version = version
	app.ArgsUsage = "<puzzle.xml>"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "./config/config.toml", Usage: "path to configuration settings file"},
		cli.BoolFlag{Name: "p", Usage: "force parallel search"},
		cli.BoolFlag{Name: "n", Usage: "force sequential search"},
		cli.BoolFlag{Name: "r", Usage: "optimize for rectilinear count (RLC)"},
		cli.BoolFlag{Name: "t", Usage: "optimize for step count (default)"},
		cli.IntFlag{Name: "s", Value: -1, Usage: "stop after N steps"},
		cli.IntFlag{Name: "x", Value: 0, Usage: "max worker count (0 = config default)"},
		cli.IntFlag{Name: "d", Value: 0, Usage: "min frontier slice per worker (0 = config default)"},
		cli.BoolFlag{Name: "c", Usage: "check puzzle file only, do not search"},
		cli.StringFlag{Name: "profile", Usage: "write a CPU profile to the given directory"},
		cli.BoolFlag{Name: "version", Usage: "print version and environment info and exit"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		if ec, ok := err.(cli.ExitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInputErr)
	}
}

func run(c *cli.Context) error {
	if c.Bool("version") {
		printVersionInfo()
		return nil
	}

	if c.String("profile") != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(c.String("profile"))).Stop()
	}

	if c.Bool("p") && c.Bool("n") {
		return cli.NewExitError("flags -p and -n are mutually exclusive", exitInputErr)
	}
	if c.Bool("r") && c.Bool("t") {
		return cli.NewExitError("flags -r and -t are mutually exclusive", exitInputErr)
	}
	if c.NArg() != 1 {
		return cli.NewExitError("exactly one puzzle file argument is required", exitInputErr)
	}

	config.Setup(c.String("config"))
	logging.GetLog("hakoiri")

	opts := puzzle.DefaultOptions()
	opts.Parallel = config.Settings.Search.Parallel
	opts.MaxNProcs = config.Settings.Search.MaxNProcs
	opts.MinNSearchDiv = config.Settings.Search.MinNSearchDiv
	opts.StopSteps = config.Settings.Search.StopSteps

	if c.Bool("p") {
		opts.Parallel = true
	}
	if c.Bool("n") {
		opts.Parallel = false
	}
	if c.Bool("r") {
		opts.OptRLC = true
	}
	if c.Int("s") >= 0 {
		opts.StopSteps = c.Int("s")
	}
	if c.Int("x") > 0 {
		opts.MaxNProcs = c.Int("x")
	}
	if c.Int("d") > 0 {
		opts.MinNSearchDiv = c.Int("d")
	}
	opts.CheckOnly = c.Bool("c")

	path, err := util.ResolveFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "hakoiri").Error(), exitInputErr)
	}
	p, err := puzzlefile.Load(path)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "hakoiri").Error(), exitInputErr)
	}

	printer.Info(os.Stdout, p)
	if opts.CheckOnly {
		out.Println("puzzle is well-formed, exiting (-c)")
		return nil
	}

	res, err := search.Search(p, opts)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "hakoiri: search").Error(), exitInputErr)
	}

	switch res.Status {
	case search.StatusSuccess:
		out.Printf("solved in %d layers, %v\n", len(res.Stats.Layers), res.Stats.TotalElapsed)
		printer.History(os.Stdout, p, res.Winner.History)
		return nil
	case search.StatusStopped:
		out.Println("stopped: reached configured step cutoff without finding a goal")
		return cli.NewExitError("", exitStopped)
	default:
		out.Println("no answer: frontier exhausted without finding a goal")
		return cli.NewExitError("", exitNoAnswer)
	}
}

func printVersionInfo() {
	out.Printf("hakoiri %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
