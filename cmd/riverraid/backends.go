package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riverraid/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available renderer backends",
	Long:  `Shows every backend that can be passed to --backend.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	width := len("Name")
	for _, b := range list {
		width = max(width, len(b.Name))
	}

	fmt.Printf("  %-*s  %s\n", width, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", width, "----", "-----------")
	for _, b := range list {
		fmt.Printf("  %-*s  %s\n", width, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'riverraid play --backend <name>' to use one.")
}
