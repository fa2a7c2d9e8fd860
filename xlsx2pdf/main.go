// Copyright 2025 Tamas Gulacsi. All rights reserved.

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/paginate"
	"github.com/UNO-SOFT/paginate/pdf"
	"github.com/UNO-SOFT/paginate/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	slog.SetDefault(logger)
	cfg := paginate.DefaultConfig()
	alternate := Color{RGB: cfg.AlternateFill}

	fs := flag.NewFlagSet("xlsx2pdf", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagOut := fs.String("o", "generated_pdfs.zip", "archive file name")
	flagDir := fs.String("d", "generated_pdfs", "output directory")
	flagColor := fs.String("alternate-color", alternate.String(), "alternate row color")
	flagLandscape := fs.Bool("L", true, "landscape orientation")
	flagFontSize := fs.Float64("f", cfg.FontSize, "font size")
	flagEnc := fs.String("charset", paginate.EncName, "csv charset name")
	flagBreaks := fs.String("breaks", "", "comma separated page break rows (csv input only)")

	app := ffcli.Command{Name: "xlsx2pdf", FlagSet: fs,
		ShortUsage: "xlsx2pdf [flags] file.xlsx",
		Options:    []ff.Option{ff.WithEnvVarPrefix("XLSX2PDF")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("input file name is required")
			}
			cfg.FontSize = *flagFontSize
			cfg.AlternateFill = alternate.RGB

			src, closeSrc, err := openSource(args[0], *flagEnc, *flagBreaks)
			if err != nil {
				return err
			}
			defer closeSrc()

			snap, err := paginate.NewSnapshot(src)
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}
			pages, err := paginate.ResolvePages(snap)
			if err != nil {
				if errors.Is(err, paginate.ErrNoBreaks) {
					slog.Warn("no page breaks detected, nothing to paginate", "file", args[0])
					return nil
				}
				return fmt.Errorf("resolve %q: %w", args[0], err)
			}
			slog.Debug("resolved", "pages", len(pages), "breaks", snap.Breaks)

			if err = os.MkdirAll(*flagDir, 0o755); err != nil {
				return fmt.Errorf("create output dir %q: %w", *flagDir, err)
			}
			rend := paginate.Renderer{
				Config: cfg,
				Logger: logger,
				NewSurface: func() paginate.Surface {
					return pdf.New(*flagLandscape)
				},
			}
			files := make([]string, 0, len(pages))
			for _, pg := range pages {
				if err = ctx.Err(); err != nil {
					return err
				}
				doc, err := rend.Render(snap, pg, *flagDir)
				if err != nil {
					return fmt.Errorf("render %s: %w", pg.Ref(), err)
				}
				files = append(files, doc.Path)
			}
			if err = paginate.BuildArchive(*flagOut, files); err != nil {
				return fmt.Errorf("package %q: %w", *flagOut, err)
			}
			slog.Info("done", "documents", len(files), "archive", *flagOut)
			return nil
		},
	}

	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-f") && len(a) > 2 && '0' <= a[2] && a[2] <= '9' {
			args = append(args, "-f", a[2:])
		} else {
			args = append(args, a)
		}
	}
	if err := app.Parse(args); err != nil {
		return err
	}

	if err := alternate.Parse(*flagColor); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

func openSource(fn, encName, breaks string) (paginate.Source, func() error, error) {
	if strings.HasSuffix(strings.ToLower(fn), ".csv") {
		rows, err := parseBreaks(breaks)
		if err != nil {
			return nil, nil, err
		}
		src, err := paginate.OpenCSVSource(fn, encName, rows)
		if err != nil {
			return nil, nil, err
		}
		return src, func() error { return nil }, nil
	}
	src, err := xlsx.Open(fn)
	if err != nil {
		return nil, nil, err
	}
	return src, src.Close, nil
}

func parseBreaks(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	rows := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("break row %q: %w", p, err)
		}
		rows = append(rows, n)
	}
	return rows, nil
}

type Color struct {
	paginate.RGB
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) < 3 {
		return fmt.Errorf("%q: need rrggbb", s)
	}
	c.R, c.G, c.B = int(b[0]), int(b[1]), int(b[2])
	return nil
}
