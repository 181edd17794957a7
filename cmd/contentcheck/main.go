// Command contentcheck validates a portfolio content file and reports how
// every gallery video will be embedded.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"neeleshreddy.com/portfolio/internal/portfolio"
)

type report struct {
	Filters  []portfolio.Filter      `json:"filters"`
	Items    []portfolio.GalleryItem `json:"items"`
	Projects int                     `json:"projects"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("contentcheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	file := flags.StringP("file", "f", "", "content file to check (default: embedded content)")
	asJSON := flags.Bool("json", false, "print the report as JSON")
	quiet := flags.BoolP("quiet", "q", false, "only report errors")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *quiet || *asJSON {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	catalog, err := portfolio.LoadPath(*file)
	if err != nil {
		fmt.Fprintf(stderr, "content check failed: %v\n", err)
		return 1
	}

	rep := report{
		Filters:  catalog.Filters(),
		Items:    catalog.GalleryItems(),
		Projects: len(catalog.Projects()),
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(stderr, "encode report: %v\n", err)
			return 1
		}
		return 0
	}
	if *quiet {
		return 0
	}

	printReport(stdout, rep)
	return 0
}

func printReport(w io.Writer, rep report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILTER\tPLATFORM\tEMBED\tTHUMBNAIL")
	for _, item := range rep.Items {
		thumb := item.ThumbnailURL
		if thumb == "" {
			thumb = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.FilterID, item.Platform, item.EmbedURL, thumb)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s gallery videos, %s filters, %s projects\n",
		humanize.Comma(int64(len(rep.Items))),
		humanize.Comma(int64(len(rep.Filters))),
		humanize.Comma(int64(rep.Projects)),
	)
}
