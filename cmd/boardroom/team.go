package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boardroom/internal/persona"
)

var teamFile string

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the persona roster",
	Long: `List the personas in the current team: their ids, names, roles and
the keywords that route requests to them.

With --file, validates and lists a YAML roster instead of the
configured one.`,
	RunE: runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamFile, "file", "", "Team YAML file to inspect")
}

func runTeam(cmd *cobra.Command, args []string) error {
	var defs []persona.Definition

	switch {
	case teamFile != "":
		loaded, err := persona.LoadTeam(teamFile)
		if err != nil {
			return err
		}
		defs = loaded
	default:
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defs, _, err = loadRoster(cfg)
		if err != nil {
			return err
		}
	}

	id := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	for _, def := range defs {
		id.Printf("%s", def.ID)
		dim.Printf("  %s, %s\n", def.Name, def.Role)
		if len(def.Keywords) > 0 {
			fmt.Printf("  routes on: %s\n", strings.Join(def.Keywords, ", "))
		}
		if len(def.Skills) > 0 {
			fmt.Printf("  skills: %s\n", strings.Join(def.Skills, ", "))
		}
		fmt.Println()
	}
	return nil
}
