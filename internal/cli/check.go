package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a11ykit/achecker-client/internal/checker"
	"github.com/a11ykit/achecker-client/internal/render"
	"github.com/a11ykit/achecker-client/internal/render/core"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errChecksFailed = errors.New("one or more pages could not be checked")

type checkFlags struct {
	id          string
	guide       string
	format      string
	color       string
	concurrency int
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <url> [url...]",
		Short: "Check one or more pages and print the report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := g.load()
			if err != nil {
				return err
			}
			defer d.logger.Sync()

			return runCheck(cmd, d, f, args)
		},
	}

	cmd.Flags().StringVar(&f.id, "id", "", "AChecker web service ID (defaults to ACHECKER_ID)")
	cmd.Flags().StringVarP(&f.guide, "guide", "g", "", "guideline profile (defaults to ACHECKER_GUIDE)")
	cmd.Flags().StringVarP(&f.format, "format", "o", "text", "output format ("+strings.Join(render.Formats, ", ")+")")
	cmd.Flags().StringVar(&f.color, "color", "auto", "colorize text output (auto|on|off)")
	cmd.Flags().IntVarP(&f.concurrency, "concurrency", "c", 4, "pages checked at the same time")

	return cmd
}

func runCheck(cmd *cobra.Command, d *deps, f *checkFlags, uris []string) error {
	opts := checker.Options{ID: f.id, Guide: f.guide}
	if opts.ID == "" {
		opts.ID = d.cfg.ServiceID
	}
	if opts.Guide == "" {
		opts.Guide = d.cfg.Guide
	}

	entries := make([]core.Entry, len(uris))
	failures := make([]error, len(uris))

	var eg errgroup.Group
	eg.SetLimit(max(f.concurrency, 1))

	for i, uri := range uris {
		i, uri := i, uri
		eg.Go(func() error {
			o := opts
			o.URI = uri

			rep, err := d.checker.Validate(cmd.Context(), o)
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", uri, err)
				return nil
			}

			entries[i] = core.Entry{URI: uri, Guide: o.Guide, Report: rep}
			return nil
		})
	}
	_ = eg.Wait()

	var done []core.Entry
	for i := range uris {
		if failures[i] != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", failures[i])
			continue
		}
		done = append(done, entries[i])
	}

	if len(done) > 0 {
		if err := render.CreateReport(cmd.OutOrStdout(), f.format, useColor(f.color), done); err != nil {
			return err
		}
	}

	if len(done) < len(uris) {
		return errChecksFailed
	}
	return nil
}

func useColor(mode string) bool {
	switch strings.ToLower(mode) {
	case "on", "always", "true":
		return true
	case "off", "never", "false":
		return false
	default:
		return color.SupportColor()
	}
}
