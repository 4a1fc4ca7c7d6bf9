// Command dssp reads a graph from stdin (or a file) and prints single-source
// shortest-path distances from a given source vertex.
//
// Input format, one token set per line:
//
//	n
//	source
//	u v w   (m times, one directed weighted edge per line)
//
// Usage:
//
//	dssp [-input graph.txt] [--no-log]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	dssp "github.com/kilmmer/Single-Source-Shortest-Paths"
	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dssp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "path to a graph file (default: stdin)")
	noLog := fs.Bool("no-log", false, "disable diagnostic logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	in := stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(stderr, "dssp: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	g, source, err := readGraph(in)
	if err != nil {
		fmt.Fprintf(stderr, "dssp: %v\n", err)
		return 1
	}

	var opts []dssp.Option
	if !*noLog {
		// Diagnostics go to stderr, not stdout: stdout carries the
		// machine-readable "v: distance" lines and must stay parseable.
		opts = append(opts, dssp.WithVerbose(), dssp.WithLogWriter(stderr))
	}

	d, err := dssp.SSSP(g, source, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "dssp: %v\n", err)
		return 1
	}

	for v, dist := range d {
		if math.IsInf(dist, 1) {
			fmt.Fprintf(stdout, "%d: +Inf\n", v)
			continue
		}
		fmt.Fprintf(stdout, "%d: %g\n", v, dist)
	}

	return 0
}

// readGraph parses the line-oriented format documented in the package
// comment: n, then source, then m "u v w" lines until EOF.
func readGraph(r io.Reader) (*core.Graph, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := nextInt(sc, "n")
	if err != nil {
		return nil, 0, err
	}
	source, err := nextInt(sc, "source")
	if err != nil {
		return nil, 0, err
	}

	g := core.NewGraph(n)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var u, v int
		var w float64
		if _, err := fmt.Sscanf(line, "%d %d %g", &u, &v, &w); err != nil {
			return nil, 0, fmt.Errorf("parse edge line %q: %w", line, err)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, 0, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	return g, source, nil
}

func nextInt(sc *bufio.Scanner, field string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("missing %s line", field)
	}
	var v int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}
