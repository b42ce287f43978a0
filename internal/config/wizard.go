package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// contentMarkers are the paths that identify a content directory.
var contentMarkers = []string{"docs", "workflows", "N8N_AI_Platform_Replication_Guide.md"}

// detectContentDir checks a few common locations for the content tree.
func detectContentDir() string {
	for _, dir := range []string{"public/data", "data", "."} {
		for _, m := range contentMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to showcase! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()
	if dir := detectContentDir(); dir != "" {
		fmt.Printf("Detected content in: %s\n\n", dir)
		cfg.ContentDir = dir
	}

	// 1. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where is the content served from",
		Items: []string{
			"local directory",
			"remote URL",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Content directory",
			Default: cfg.ContentDir,
		}
		if cfg.ContentDir, err = dirPrompt.Run(); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Content base URL",
			Validate: func(s string) error {
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("must start with http:// or https://")
				}
				return nil
			},
		}
		if cfg.ContentURL, err = urlPrompt.Run(); err != nil {
			return nil, fmt.Errorf("content url: %w", err)
		}
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Selection policy.
	policyPrompt := promptui.Select{
		Label: "When a filter hides the selected entry",
		Items: []string{
			"retain: keep showing it in the detail pane",
			"clear:  drop the selection",
		},
	}
	policyIdx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("policy selection: %w", err)
	}
	cfg.SelectionPolicy = []string{"retain", "clear"}[policyIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
