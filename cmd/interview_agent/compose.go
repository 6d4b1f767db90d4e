package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/interview"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose an interviewer system prompt from a config file",
	Long:  "Read an interview configuration from a JSON file and print the composed system prompt. Useful for inspecting what the model will be instructed with.",
	RunE:  runCompose,
}

var (
	composeInputFile string
	composeShowMeta  bool
)

func init() {
	composeCmd.Flags().StringVarP(&composeInputFile, "in", "i", "", "Path to interview config JSON file (required)")
	composeCmd.Flags().BoolVar(&composeShowMeta, "meta", false, "Print resolved company, title and priority order to stderr")
	_ = composeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(composeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg interview.InterviewRequestConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg = cfg.Sanitized()
	if err := cfg.Validate(); err != nil {
		return err
	}

	prompt := interview.NewComposer().Compose(cfg, "")
	fmt.Println(prompt.Text)

	if composeShowMeta {
		fmt.Fprintf(os.Stderr, "company: %s\ntitle: %s\npriority order: %v\n",
			prompt.Company, prompt.Title, prompt.Order)
	}
	return nil
}
