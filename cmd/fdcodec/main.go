// Command fdcodec batch-converts archived fiscal-document TLV files to and
// from their JSON mirror (spec.md §6.3/§6.4).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/fftoml"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagset := flag.NewFlagSet("fdcodec", flag.ExitOnError)
	var (
		mode     = flagset.String("mode", "", "conversion direction: tlv2json or json2tlv")
		dir      = flagset.String("dir", ".", "directory to scan for input files")
		outDir   = flagset.String("out", "", "output directory (defaults to -dir)")
		compress = flagset.String("compress", "none", "archive compression: none, zstd, s2, lz4")
		workers  = flagset.Int("workers", 4, "number of concurrent conversion workers")
		verbose  = flagset.Bool("verbose", false, "enable debug logging")
	)
	flagset.String("config", "", "path to a TOML config file")

	if err := ff.Parse(flagset, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(fftoml.Parser),
		ff.WithEnvVarPrefix("FDCODEC"),
	); err != nil {
		return err
	}

	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if !*verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	} else {
		logger = level.NewFilter(logger, level.AllowDebug())
	}

	cfg := Config{
		Mode:     *mode,
		Dir:      *dir,
		OutDir:   *outDir,
		Compress: *compress,
		Workers:  *workers,
	}
	if cfg.OutDir == "" {
		cfg.OutDir = cfg.Dir
	}

	return Run(cfg, logger)
}
