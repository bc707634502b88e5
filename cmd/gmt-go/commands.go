package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genericmappingtools/gmt-go/pkg/gmt"
	"github.com/genericmappingtools/gmt-go/pkg/gmt/datasets"
	"github.com/genericmappingtools/gmt-go/pkg/gmt/marshal"
)

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path libgmt would be loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			path, err := cfg.LibraryPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load libgmt and verify it exports the required functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := load(opts)
			if err != nil {
				return err
			}
			defer lib.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "libgmt OK: %s\n", lib.Path())
			return nil
		},
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print information about the loaded libgmt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := load(opts)
			if err != nil {
				return err
			}
			defer lib.Close()

			sess, err := gmt.NewSession(lib, gmt.DefaultSessionName)
			if err != nil {
				return err
			}
			defer sess.Close()

			info, err := sess.Info()
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), info, terminalColumns())
			return nil
		},
	}
}

func newModuleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "module NAME [ARGS...]",
		Short: "Run a GMT module inside a modern mode session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			rt, err := gmt.Begin(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, rt.Close())
			}()
			return rt.Session().CallModule(args[0], strings.Join(args[1:], " "))
		},
	}
}

func newGrdinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grdinfo FILE VARIABLE",
		Short: "Print the region, increment and shape of a netCDF grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := datasets.OpenDataArray(args[0], args[1])
			if err != nil {
				return err
			}
			matrix, region, inc, err := marshal.DataArrayToMatrix(grid)
			if err != nil {
				return err
			}
			r, c := matrix.Dims()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "region: -R%s\n", region)
			fmt.Fprintf(out, "increment: -I%s\n", inc)
			fmt.Fprintf(out, "shape: %d x %d\n", r, c)
			return nil
		},
	}
}

func load(opts *options) (*gmt.Library, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	path, err := cfg.LibraryPath()
	if err != nil {
		return nil, err
	}
	return gmt.Load(path)
}

// printInfo writes info as sorted "key: value" lines under a header centered
// in width columns.
func printInfo(w io.Writer, info map[string]string, width int) {
	const title = "Currently loaded libgmt"
	left := (width - len(title) - 2) / 2
	if left < 0 {
		left = 0
	}
	right := width - len(title) - 2 - left
	if right < 0 {
		right = 0
	}
	fmt.Fprintln(w, strings.Join([]string{strings.Repeat("=", left), title, strings.Repeat("=", right)}, " "))
	for _, key := range gmt.InfoNames() {
		if v, ok := info[key]; ok {
			fmt.Fprintf(w, "%s: %s\n", key, v)
		}
	}
}

func terminalColumns() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return 80
}
