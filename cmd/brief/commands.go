package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
	"github.com/gestion-eventos/briefd/pkg/generator"
	"github.com/gestion-eventos/briefd/pkg/render"
)

// Exit codes.
const (
	exitError   = 1
	exitInvalid = 2
)

func exitCode(err error) int {
	if errors.Is(err, brief.ErrInvalidInput) {
		return exitInvalid
	}
	return exitError
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a brief document from an input payload",
		Long: `Read the event and its proposals as JSON and write the brief.
Only APPROVED proposals contribute; missing data is rendered as
"Por confirmar" or "No definido".`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringP("in", "i", "-", "Input JSON file ('-' for stdin)")
	cmd.Flags().StringP("out", "o", "", "Output file or directory (default: brief file name in the current directory)")
	cmd.Flags().StringP("format", "f", string(document.FormatDOCX), "Output format (docx, text)")
	cmd.Flags().String("creator", "", "Document author metadata")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	creator, _ := cmd.Flags().GetString("creator")

	w, err := document.NewWriter(document.Format(format))
	if err != nil {
		return err
	}
	data, err := readInput(cmd, in)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	if creator != "" {
		opts.Creator = creator
	}
	res, err := generator.New(w, opts).Generate(data)
	if err != nil {
		return err
	}

	path := outputPath(out, res.FileName)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write brief: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d approved proposals, %d bytes)\n", path, res.Approved, len(res.Data))
	return nil
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the resolved brief fields as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _ := cmd.Flags().GetString("in")
			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			fields, err := generator.New(nil, render.DefaultOptions()).Preview(data)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fields)
		},
	}

	cmd.Flags().StringP("in", "i", "-", "Input JSON file ('-' for stdin)")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an input payload without rendering it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _ := cmd.Flags().GetString("in")
			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			input, err := brief.Parse(data)
			if err != nil {
				return err
			}
			approved := len(brief.FilterApproved(input.Proposals))
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d proposals, %d approved\n", len(input.Proposals), approved)
			return nil
		},
	}

	cmd.Flags().StringP("in", "i", "-", "Input JSON file ('-' for stdin)")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// outputPath resolves --out: empty means the current directory, an existing
// directory receives the default file name.
func outputPath(out, fileName string) string {
	if out == "" {
		return fileName
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, fileName)
	}
	return out
}
