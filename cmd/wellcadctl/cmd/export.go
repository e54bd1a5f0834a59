package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timzifer/wellcad/wellcad"
)

var (
	exportConfig  string
	exportLogFile string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.wcl> <out>",
	Short: "Export a borehole document",
	Long: `Exports a borehole document without prompting. The format follows the
extension of <out>: LAS, DLIS, EMF, CGM, JPG, PNG, TIF, BMP, WCL or PDF.

Examples:
  wellcadctl export Well1.wcl Well1.las
  wellcadctl export Well1.wcl Well1.pdf --config pdf.ini`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		dst, err := filepath.Abs(args[1])
		if err != nil {
			return err
		}
		app, cleanup, err := openLoggedHost(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		defer app.Close()

		bh, err := app.OpenBorehole(src)
		if err != nil {
			return fmt.Errorf("open %s: %w", src, err)
		}
		if bh == nil {
			return fmt.Errorf("open %s: %w", src, errNoDocument)
		}
		exportErr := bh.FileExport(dst, wellcad.WithConfig(exportConfig), exportLogFile)
		if err := app.CloseBorehole(false); err != nil && exportErr == nil {
			return fmt.Errorf("close %s: %w", src, err)
		}
		if exportErr != nil {
			return fmt.Errorf("export %s: %w", dst, exportErr)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", dst)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportConfig, "config", "", "export configuration file or inline parameters")
	exportCmd.Flags().StringVar(&exportLogFile, "log-file", "", "file receiving export errors reported by the host")
	rootCmd.AddCommand(exportCmd)
}
