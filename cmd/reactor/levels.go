package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the levels of the campaign in play order, with each enemy's
hull and script length. Use --levels to list a custom directory.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxName := len("Name")
	maxEnemy := len("Enemy")
	for _, l := range app.levels {
		maxName = max(maxName, len(l.Name))
		maxEnemy = max(maxEnemy, len(l.EnemyName))
	}

	fmt.Printf("  %-3s  %-4s  %-*s  %-*s  %6s  %6s\n", "#", "ID", maxName, "Name", maxEnemy, "Enemy", "Hull", "Script")
	fmt.Printf("  %-3s  %-4s  %-*s  %-*s  %6s  %6s\n", "-", "--", maxName, "----", maxEnemy, "-----", "----", "------")

	for i, l := range app.levels {
		fmt.Printf("  %-3d  %-4s  %-*s  %-*s  %6.0f  %6d\n",
			i+1, l.ID, maxName, l.Name, maxEnemy, l.EnemyName, l.Hull, len(l.Script))
	}

	fmt.Println()
	fmt.Println("Run 'reactor play --level <#>' to start at a level.")
}
