package main

import (
	"fmt"
	"os"

	catalogcmd "github.com/businessdatasolutions/beat-generator/internal/catalog"
	dbcmd "github.com/businessdatasolutions/beat-generator/internal/db"
	"github.com/businessdatasolutions/beat-generator/internal/generate"
	"github.com/businessdatasolutions/beat-generator/pkg/help"
	"github.com/urfave/cli/v2"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "beatgen.yaml",
			Usage: "Path to the config file",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "Override the Beats output directory",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "Path to source material (.md, .txt, .html)",
		},
		&cli.StringFlag{
			Name:  "content",
			Usage: "Inline source content (alternative to --source)",
		},
		&cli.StringFlag{
			Name:  "filename",
			Usage: "Filename hint for --content (drives format detection)",
		},
		&cli.StringFlag{
			Name:     "type",
			Usage:    "Template type: concept-tutorial or strategic-framework",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Beat folder name (kebab-case, derived from the source title when omitted)",
		},
		&cli.StringFlag{
			Name:  "audience",
			Usage: "Target audience description",
		},
		&cli.StringFlag{
			Name:  "focus",
			Usage: "Comma-separated topics to focus on (concept-tutorial)",
		},
		&cli.IntFlag{
			Name:  "scenarios",
			Usage: "Number of scenarios to request (concept-tutorial)",
		},
		&cli.StringFlag{
			Name:  "x-axis",
			Usage: "X-axis concept hint (strategic-framework)",
		},
		&cli.StringFlag{
			Name:  "y-axis",
			Usage: "Y-axis concept hint (strategic-framework)",
		},
		&cli.StringFlag{
			Name:  "instructions",
			Usage: "Extra instructions appended to the prompt",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "beatgen",
		Usage: "Generate interactive Beats from source material",
		Commands: []*cli.Command{
			{
				Name:   "prepare",
				Usage:  "Parse source material and write the prompt pair for manual model use",
				Flags:  append(globalFlags(), sourceFlags()...),
				Action: generate.PrepareAction,
			},
			{
				Name:  "finalize",
				Usage: "Validate a model response and save the Beat",
				Flags: append(globalFlags(),
					&cli.StringFlag{
						Name:  "prompts",
						Usage: "Path to the preparation file written by prepare",
					},
					&cli.StringFlag{
						Name:  "response",
						Usage: "Path to the model's JSON response",
					},
					&cli.StringFlag{
						Name:  "generation",
						Usage: "Generation ID to update in the history database",
					},
				),
				Action: generate.FinalizeAction,
			},
			{
				Name:  "generate",
				Usage: "Run the full pipeline against the Anthropic API (needs ANTHROPIC_API_KEY)",
				Flags: append(append(globalFlags(), sourceFlags()...),
					&cli.IntFlag{
						Name:  "max-attempts",
						Value: 2,
						Usage: "Model attempts before giving up on invalid content",
					},
				),
				Action: generate.GenerateAction,
			},
			{
				Name:  "catalog",
				Usage: "Inspect and maintain the Beat catalog",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List catalog entries",
						Flags:  globalFlags(),
						Action: catalogcmd.ListAction,
					},
					{
						Name:   "rebuild",
						Usage:  "Rebuild the catalog from metadata.json files on disk",
						Flags:  globalFlags(),
						Action: catalogcmd.RebuildAction,
					},
				},
			},
			{
				Name:  "db",
				Usage: "Query the generation history database",
				Subcommands: []*cli.Command{
					{
						Name:  "generations",
						Usage: "List recent generation runs",
						Flags: append(globalFlags(),
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum rows to show (0 for all)",
							},
							&cli.StringFlag{
								Name:  "beat",
								Usage: "Only show runs for this Beat ID",
							},
						),
						Action: dbcmd.GenerationsAction,
					},
					{
						Name:      "generation",
						Usage:     "Show one generation run",
						ArgsUsage: "<generation-id>",
						Flags:     globalFlags(),
						Action:    dbcmd.GenerationAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
