package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"presets"},
	Short:   "List modes and balance presets",
	Long:    `Shows the registered modes and the balance each preset applies.`,
	Run:     runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-4s  %-8s  %-8s  %-5s  %s\n", "Name", "HP", "Contact", "Laser", "Heal", "Explosions")
	for _, p := range config.Presets() {
		cfg := config.DefaultShooterConfig()
		config.ApplyPreset(&cfg, p)
		heal := "off"
		if cfg.Pickups.HealOdds > 0 {
			heal = fmt.Sprintf("+%d", cfg.Pickups.HealAmount)
		}
		fmt.Printf("  %-8s  %-4d  %-8s  %-8s  %-5s  %v\n",
			p, cfg.Player.MaxHP,
			fmt.Sprintf("-%d/%dt", cfg.Combat.ContactDamage, cfg.Combat.ContactGraceTicks),
			fmt.Sprintf("-%d/%dt", cfg.Laser.Damage, cfg.Laser.GraceTicks),
			heal, cfg.Explosions.Enabled)
	}

	fmt.Println()
	fmt.Println("Run 'shooter play <id>' or 'shooter play --preset <name>' to play.")
}
