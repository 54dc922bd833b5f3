package main

import (
	"dsatrack/internal/di"
	"dsatrack/internal/patterns"
	"dsatrack/internal/structures"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:          "dsatrack",
	Short:        "DSA problem tracker with revision analytics",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var tagCmd = &cobra.Command{
	Use:   "tag [title]",
	Short: "Print the patterns a problem would be tagged with",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTag,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "also log to the console")

	tagCmd.Flags().String("title", "", "problem title")
	tagCmd.Flags().String("topic", "", "problem topic")
	tagCmd.Flags().StringSlice("tags", nil, "comma separated tags")

	rootCmd.AddCommand(serveCmd, tagCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := di.InitApp(&flags)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return app.Run()
}

func runTag(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	topic, _ := cmd.Flags().GetString("topic")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	if len(args) == 1 {
		title = args[0]
	}
	if strings.TrimSpace(title+topic+strings.Join(tags, "")) == "" {
		return fmt.Errorf("nothing to tag: pass a title, --topic or --tags")
	}

	matched := patterns.Default().Match(patterns.ProblemText{Title: title, Topic: topic, Tags: tags})
	out := cmd.OutOrStdout()
	if len(matched) == 0 {
		fmt.Fprintln(out, "no patterns matched")
		return nil
	}
	for _, name := range matched {
		fmt.Fprintln(out, name)
	}
	return nil
}
