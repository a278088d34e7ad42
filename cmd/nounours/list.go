package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List minigames and the zones that open them",
	Long:  `Shows every registered minigame and, for each hub zone, the minigame its door opens.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No minigames available.")
		return
	}

	fmt.Println("Minigames:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	config.SetConfigDir(flagConfigDir)
	hub, err := config.LoadHub(flagHubConfig)
	if err != nil {
		fmt.Printf("\n(hub config: %v, showing defaults)\n", err)
	}

	fmt.Println()
	fmt.Println("Zones:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %s\n", "Zone", "Label", "Minigame")
	fmt.Printf("  %-8s  %-10s  %s\n", "----", "-----", "--------")
	for _, z := range hub.Zones {
		id, note := z.Minigame, ""
		if id == "" || !registry.Exists(id) {
			id, note = hub.DefaultMinigame, " (default)"
		}
		fmt.Printf("  %-8s  %-10s  %s%s\n", z.Key, z.Label, registry.Title(id), note)
	}

	fmt.Println()
	fmt.Println("Run 'nounours' to play.")
}
