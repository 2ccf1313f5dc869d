// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: cobra command tree: the root convert command and "stat".

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volmesh/geometry"
	"github.com/katalvlaran/volmesh/handle"
	"github.com/katalvlaran/volmesh/ovmb"
)

// app carries state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        Config
	log        *slog.Logger
	stderr     io.Writer
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "ovmconv:", err)
	}
	return exitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ovmconv INPUT [OUTPUT]",
		Short: "Read, inspect and re-encode .ovmb volumetric meshes",
		Long: "ovmconv reads INPUT, reports its entity counts and, when OUTPUT is\n" +
			"given, writes the mesh again using the write options from --config.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return withCode(ExitUsage, err)
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ""
			if len(args) == 2 {
				out = args[1]
			}
			return a.convert(cmd.Context(), args[0], out)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with read/write options")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug diagnostics")
	root.AddCommand(a.statCmd())
	return root
}

func (a *app) statCmd() *cobra.Command {
	jobs := runtime.GOMAXPROCS(0)
	cmd := &cobra.Command{
		Use:   "stat FILES...",
		Short: "Print entity counts of several .ovmb files, read concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return usagef("--jobs must be at least 1, got %d", jobs)
			}
			return a.stat(cmd.Context(), cmd.OutOrStdout(), args, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", jobs, "files read in parallel")
	return cmd
}

// checkExt accepts .ovmb and rejects everything else; .ovm gets a specific
// message because it is a known but unsupported format.
func checkExt(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ovmb":
		return nil
	case ".ovm":
		return usagef("%s: ASCII .ovm files are not supported", path)
	default:
		return usagef("%s: unknown extension, want .ovmb", path)
	}
}

// load opens and reads one mesh, mapping failures to exit codes.
func (a *app) load(path string) (*geometry.Mesh, int64, error) {
	if err := checkExt(path); err != nil {
		return nil, 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, withCode(ExitOpen, err)
	}
	defer f.Close()

	r := ovmb.NewReader(f, append(a.cfg.readOptions(), ovmb.WithReadLogger(a.log))...)
	m := geometry.New()
	if err := r.ReadFile(m); err != nil {
		return nil, r.BytesRead(), withCode(ExitReadBinary, fmt.Errorf("%s: %w", path, err))
	}
	return m, r.BytesRead(), nil
}

func (a *app) convert(_ context.Context, in, out string) error {
	if out != "" {
		if err := checkExt(out); err != nil {
			return err
		}
	}

	start := time.Now()
	m, size, err := a.load(in)
	if err != nil {
		return err
	}
	a.log.Info("read mesh",
		slog.String("file", in),
		slog.Int("vertices", m.NVertices()),
		slog.Int("cells", m.NCells()),
		slog.String("size", humanize.Bytes(uint64(size))),
		slog.Duration("took", time.Since(start)))
	if out == "" {
		return nil
	}

	start = time.Now()
	f, err := os.Create(out)
	if err != nil {
		return withCode(ExitWriteBin, err)
	}
	w := ovmb.NewWriter(f, append(a.cfg.writeOptions(), ovmb.WithWriteLogger(a.log))...)
	err = errors.Join(w.WriteFile(m), f.Close())
	if err != nil {
		return withCode(ExitWriteBin, fmt.Errorf("%s: %w", out, err))
	}
	a.log.Info("wrote mesh",
		slog.String("file", out),
		slog.String("size", humanize.Bytes(uint64(w.BytesWritten()))),
		slog.String("ratio", fmt.Sprintf("%.3f", float64(w.BytesWritten())/float64(size))),
		slog.Duration("took", time.Since(start)))
	return nil
}

// fileStat is one line of stat output.
type fileStat struct {
	path           string
	size           int64
	topo           string
	nv, ne, nf, nc int
	props          int
	components     int
}

// stat reads paths concurrently, at most jobs at a time, and prints one line
// per file in argument order. The first failure cancels files not yet
// started.
func (a *app) stat(ctx context.Context, out io.Writer, paths []string, jobs int) error {
	stats := make([]fileStat, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, size, err := a.load(path)
			if err != nil {
				return err
			}
			s := fileStat{
				path: path, size: size,
				nv: m.NVertices(), ne: m.NEdges(), nf: m.NFaces(), nc: m.NCells(),
				topo: m.TopologyType().String(),
			}
			for k := range handle.NumKinds {
				s.props += m.Props().NPersistent(handle.Kind(k))
			}
			s.props-- // position travels in VERT
			_, s.components = m.CellComponents()
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, s := range stats {
		fmt.Fprintf(out, "%s\t%s\t%s\tV=%d E=%d F=%d C=%d\tprops=%d\tparts=%d\n",
			s.path, humanize.Bytes(uint64(s.size)), s.topo, s.nv, s.ne, s.nf, s.nc, s.props, s.components)
	}
	return nil
}
