package cmd

import (
	"fmt"
	"os"

	"github.com/go-ripple/ripple/cmd/ripple/internal/config"
	"github.com/go-ripple/ripple/cmd/ripple/internal/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "manifest",
		Short: "Generate the host-binding manifest",
		Long: `Generate the host-binding manifest: the closed view-kind table with
stable 128-bit type identifiers and payload field shapes.

Host-side binding generators consume the manifest to emit typed wrappers
for each payload kind. Configuration: optional ripple.yaml at the module
root (bindings.package, bindings.min_host_version, bindings.format).`,
		Usage: "ripple manifest [-o FILE] [--format yaml|json]",
		Run:   runManifest,
	})
}

func runManifest(args []string) error {
	out := ""
	format := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			i++
			out = args[i]
		case "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("--format requires yaml or json")
			}
			i++
			format = args[i]
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Format
	}

	m, err := manifest.Build(cfg.Package, cfg.MinHostVersion)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return m.Encode(w, format)
}
