package cmd

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "kinds",
		Short: "List view kinds and their identifiers",
		Long: `List every view payload kind in the closed set with its stable
128-bit identifier, in registry order.`,
		Usage: "ripple kinds",
		Run:   runKinds,
	})
}

func runKinds(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("kinds takes no arguments")
	}
	for _, e := range view.Kinds() {
		fmt.Printf("%-12s %s\n", e.Name, e.ID)
	}
	return nil
}
