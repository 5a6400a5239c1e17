package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Streamlines-UNH/tide-maker/config"
	"github.com/Streamlines-UNH/tide-maker/ingest"
	"github.com/Streamlines-UNH/tide-maker/output"
	"github.com/Streamlines-UNH/tide-maker/place"
)

func newGenerateCmd() *cobra.Command {
	var fieldPath, configPath, outPath string
	var geojson bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Place evenly-spaced streamlines over a gridded flow field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, fieldPath, configPath, outPath, geojson)
		},
	}

	var flags *pflag.FlagSet = cmd.Flags()
	flags.StringVar(&fieldPath, "field", "", "path to the JSON flow field document (required)")
	flags.StringVar(&configPath, "config", "", "path to an optional place.Options config file")
	flags.StringVar(&outPath, "out", "", "path to write output (default: stdout)")
	flags.BoolVar(&geojson, "geojson", false, "emit GeoJSON FeatureCollection instead of raw records")
	cmd.MarkFlagRequired("field")

	return cmd
}

func runGenerate(cmd *cobra.Command, fieldPath, configPath, outPath string, geojson bool) error {
	ctx := cmd.Context()

	opts, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "streamline: loading config")
	}

	source := ingest.NewJSONFileSource(fieldPath)
	f, err := source.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "streamline: loading field")
	}

	driver, err := place.NewWithOptions(f, opts)
	if err != nil {
		return errors.Wrap(err, "streamline: initializing driver")
	}

	result, err := driver.Generate(ctx)
	if err != nil {
		return errors.Wrap(err, "streamline: generating streamlines")
	}

	summary := output.NewSummary(result)
	logrus.WithFields(logrus.Fields{
		"streamlines": summary.StreamlineCount,
		"meanPoints":  summary.MeanPointCount,
		"totalLength": summary.TotalLengthMetres,
	}).Info("streamline: generated")

	w := cmd.OutOrStdout()
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return errors.Wrapf(err, "streamline: creating %s", outPath)
		}
		defer file.Close()
		w = file
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if geojson {
		return errors.Wrap(enc.Encode(output.ToGeoJSON(result)), "streamline: encoding geojson")
	}
	return errors.Wrap(enc.Encode(result.Records()), "streamline: encoding records")
}
