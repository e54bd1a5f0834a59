package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timzifer/wellcad/wellcad"
)

var outputJSON bool

// LogInfo describes one log of a document.
type LogInfo struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// DocumentInfo summarises a borehole document.
type DocumentInfo struct {
	Name    string    `json:"name"`
	Version string    `json:"host_version"`
	Top     float64   `json:"top"`
	Bottom  float64   `json:"bottom"`
	Logs    []LogInfo `json:"logs"`
}

var infoCmd = &cobra.Command{
	Use:   "info <file.wcl>",
	Short: "Show a summary of a borehole document",
	Long: `Opens a borehole document read-only and prints its name, the host
version, the depth range and every log.

Examples:
  wellcadctl info Well1.wcl
  wellcadctl info Well1.wcl --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		app, cleanup, err := openLoggedHost(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		defer app.Close()

		bh, err := app.OpenBorehole(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if bh == nil {
			return fmt.Errorf("open %s: %w", path, errNoDocument)
		}
		info, err := describe(bh)
		closeErr := app.CloseBorehole(false)
		if err != nil {
			return err
		}
		if closeErr != nil {
			return fmt.Errorf("close %s: %w", path, closeErr)
		}

		out := cmd.OutOrStdout()
		if outputJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		fmt.Fprintf(out, "Document:  %s\n", info.Name)
		fmt.Fprintf(out, "Host:      WellCAD %s\n", info.Version)
		fmt.Fprintf(out, "Depth:     %g - %g\n", info.Top, info.Bottom)
		fmt.Fprintf(out, "Logs:      %d\n", len(info.Logs))
		for _, log := range info.Logs {
			fmt.Fprintf(out, "  %3d  %-24s %-16s %g - %g\n", log.Index, log.Name, log.Type, log.Top, log.Bottom)
		}
		return nil
	},
}

func describe(bh *wellcad.Borehole) (DocumentInfo, error) {
	var info DocumentInfo
	var err error
	if info.Name, err = bh.Name(); err != nil {
		return info, err
	}
	major, err := bh.VersionMajor()
	if err != nil {
		return info, err
	}
	minor, err := bh.VersionMinor()
	if err != nil {
		return info, err
	}
	build, err := bh.VersionBuild()
	if err != nil {
		return info, err
	}
	info.Version = fmt.Sprintf("%d.%d.%d", major, minor, build)
	if info.Top, err = bh.TopDepth(); err != nil {
		return info, err
	}
	if info.Bottom, err = bh.BottomDepth(); err != nil {
		return info, err
	}
	count, err := bh.NbOfLogs()
	if err != nil {
		return info, err
	}
	for i := 0; i < count; i++ {
		log, err := bh.Log(i)
		if err != nil {
			return info, err
		}
		entry := LogInfo{Index: i}
		if entry.Name, err = log.Name(); err != nil {
			return info, err
		}
		kind, err := log.Type()
		if err != nil {
			return info, err
		}
		entry.Type = kind.String()
		if entry.Top, err = log.TopDepth(); err != nil {
			return info, err
		}
		if entry.Bottom, err = log.BottomDepth(); err != nil {
			return info, err
		}
		info.Logs = append(info.Logs, entry)
	}
	return info, nil
}

func init() {
	infoCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}
