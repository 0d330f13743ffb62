package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajack/tabx"
)

var (
	convertSheet      string
	convertFormat     string
	convertOut        string
	convertRestKey    string
	convertMinValues  int
	convertAbortAfter int
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.xlsx>",
	Short: "Extract a worksheet's data table as CSV or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := tabx.Open(args[0])
		if err != nil {
			return err
		}

		sheet := convertSheet
		if sheet == "" {
			sheet = cfg.Sheet
		}
		if sheet != "" {
			if err := reader.SetWorksheet(sheet); err != nil {
				return err
			}
		}

		opts := []tabx.ReadOption{
			tabx.WithMinValues(flagOrConfig(cmd, "min-values", convertMinValues, cfg.MinValues)),
			tabx.WithAbortAfter(flagOrConfig(cmd, "abort-after", convertAbortAfter, cfg.AbortAfter)),
		}
		restkey := convertRestKey
		if restkey == "" {
			restkey = cfg.RestKey
		}
		if restkey != "" {
			opts = append(opts, tabx.WithRestKey(restkey))
		}

		set, err := reader.Read(opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if convertOut != "" {
			f, err := os.Create(convertOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		format := convertFormat
		if format == "" {
			format = cfg.Format
		}
		switch format {
		case "csv":
			return writeCSV(out, set)
		case "json":
			return writeJSON(out, set)
		}
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertSheet, "sheet", "", "worksheet title (default: first)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "output format: csv or json")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file (default: stdout)")
	convertCmd.Flags().StringVar(&convertRestKey, "restkey", "", "key that collects excess row data")
	convertCmd.Flags().IntVar(&convertMinValues, "min-values", 0, "populated cells needed in a header row")
	convertCmd.Flags().IntVar(&convertAbortAfter, "abort-after", 0, "rows to examine before giving up on the header")
	rootCmd.AddCommand(convertCmd)
}

func flagOrConfig(cmd *cobra.Command, name string, flagValue, configValue int) int {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func writeCSV(out io.Writer, set *tabx.RecordSet) error {
	w := csv.NewWriter(out)
	fields := set.FieldNames()
	if err := w.Write(fields); err != nil {
		return err
	}
	for rec, ok := set.Next(); ok; rec, ok = set.Next() {
		row := make([]string, len(fields))
		for i, name := range fields {
			if v, ok := rec[name].(tabx.Value); ok {
				row[i] = v.String()
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(out io.Writer, set *tabx.RecordSet) error {
	var records []map[string]any
	for rec, ok := set.Next(); ok; rec, ok = set.Next() {
		records = append(records, rec.Native())
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}
