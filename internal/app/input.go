// internal/app/input.go
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"labtool/core/ingest"
	"labtool/core/table"
)

// inputOptions are the flags shared by every command that reads a
// measurement table.
type inputOptions struct {
	Sheet     string
	Delimiter string
	Header    bool
}

func (in *inputOptions) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&in.Sheet, "sheet", "", "XLSX sheet name (default first sheet)")
	fs.StringVar(&in.Delimiter, "delimiter", ",", "CSV field delimiter")
	fs.BoolVar(&in.Header, "header", true, "first row holds column names")
}

func (in *inputOptions) comma() (rune, error) {
	if in.Delimiter == `\t` {
		return '\t', nil
	}
	runes := []rune(in.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be one character, got %q", in.Delimiter)
	}
	return runes[0], nil
}

// load reads path into a table. XLSX and XLSM go through the workbook
// reader, "-" reads CSV from stdin, everything else is a CSV file.
func (in *inputOptions) load(cmd *cobra.Command, path string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xlsm" {
		return ingest.ReadXLSX(path, in.Sheet, ingest.XLSXOptions{Header: in.Header})
	}
	comma, err := in.comma()
	if err != nil {
		return nil, err
	}
	opt := ingest.CSVOptions{Comma: comma, Comment: '#', Header: in.Header}
	if path == "-" {
		return ingest.ReadCSV(cmd.InOrStdin(), opt)
	}
	return ingest.ReadCSVFile(path, opt)
}

// openOut returns the command stdout or the file the -o flag names.
func openOut(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
