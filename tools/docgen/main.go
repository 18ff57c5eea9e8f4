package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	simplecdkcmd "github.com/orien/simplecdk/cmd"
	"github.com/orien/simplecdk/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

func main() {
	outputDir := pflag.StringP("output", "o", filepath.Join("docs", "cli"), "directory to write the CLI reference to")
	pflag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	if err := cleanMarkdown(*outputDir); err != nil {
		log.Fatalf("clean output directory: %v", err)
	}

	root := simplecdkcmd.RootCommand()
	disableAutoGenTag(root)

	if err := doc.GenMarkdownTreeCustom(root, *outputDir, filePrepender, linkHandler); err != nil {
		log.Fatalf("generate markdown documentation: %v", err)
	}

	if err := writeIndex(root, *outputDir); err != nil {
		log.Fatalf("write index: %v", err)
	}
}

func cleanMarkdown(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func disableAutoGenTag(cmd *cobra.Command) {
	cmd.DisableAutoGenTag = true
	for _, child := range cmd.Commands() {
		disableAutoGenTag(child)
	}
}

// writeIndex lists every documented command with its short description
func writeIndex(root *cobra.Command, dir string) error {
	var sb strings.Builder
	sb.WriteString(header("simplecdk CLI reference"))
	sb.WriteString("# simplecdk CLI reference\n\n")
	fmt.Fprintf(&sb, "[`%s`](%s): %s\n\n", root.Name(), linkHandler(root.Name()+".md"), root.Short)

	for _, cmd := range root.Commands() {
		if !cmd.IsAvailableCommand() || cmd.IsAdditionalHelpTopicCommand() {
			continue
		}
		name := strings.ReplaceAll(cmd.CommandPath(), " ", "_")
		fmt.Fprintf(&sb, "- [`%s`](%s): %s\n", cmd.CommandPath(), linkHandler(name+".md"), cmd.Short)
	}

	return os.WriteFile(filepath.Join(dir, "README.md"), []byte(sb.String()), 0o644)
}

func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return header(strings.ReplaceAll(base, "_", " "))
}

func header(title string) string {
	return fmt.Sprintf("---\ntitle: %q\ngenerator: %s\n---\n\n<!-- Generated by tools/docgen. Do not edit. -->\n\n", title, version.Generator())
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(base, " ", "-")
	return strings.ToLower(base)
}
