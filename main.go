package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/deckbridge/internal/commands"
	"github.com/gerunddev/deckbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert", "render":
		commands.Convert(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "inspect":
		commands.Inspect(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "watch":
		commands.Watch(os.Args[2:])
	case "status":
		commands.Status(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("deckbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`deckbridge - Turn restricted markdown into presentation decks

Usage:
  deckbridge <command> [options]

Commands:
  convert     Parse a markdown file and send it to the renderer
  preview     Interactive slide-by-slide preview in the terminal
  inspect     Print the parsed components and projected slides
  diff        Compare the decks produced by two markdown files
  watch       Re-render a file every time it changes
  status      Show which files have been rendered and when
  version     Show version information
  help        Show this help message

Options:
  --dry-run           Print the deck JSON instead of rendering (convert)
  --out <file>        Write the deck JSON to a file (convert)
  --force             Render even if the file is unchanged (convert)
  --theme <file>      Font configuration YAML (convert, preview, inspect, diff)
  --renderer <url>    Override the renderer URL (convert, watch)
  --interval <dur>    Poll interval, e.g. 2s (watch)

Examples:
  deckbridge convert talk.md
  deckbridge convert talk.md --dry-run
  deckbridge convert talk.md --theme big-fonts.yaml
  deckbridge preview talk.md
  deckbridge diff talk-v1.md talk-v2.md
  deckbridge watch talk.md --interval 2s
  deckbridge status

Configuration:
  Config file: %s
  State file:  %s

For more information, visit: https://github.com/gerunddev/deckbridge
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
