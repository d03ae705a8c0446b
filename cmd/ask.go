package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/tutor"
)

// askCmd is a one-shot tutoring question from the terminal, useful for
// smoke-testing a provider configuration without running the server.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		question := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		llmCfg := resolveLLMConfig()
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), llmCfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}

		agent := tutor.NewAgent(provider)
		resp := agent.Process(llm.WithPurpose(cmd.Context(), "ask"), tutor.Request{
			Messages: []tutor.Message{{Role: tutor.RoleUser, Content: question}},
		})

		fmt.Println(resp.ResponseText)

		if len(resp.Metadata.SuggestedNextSteps) > 0 {
			fmt.Println("\nSuggested next steps:")
			for _, step := range resp.Metadata.SuggestedNextSteps {
				fmt.Printf("  - %s\n", step)
			}
		}

		if !resp.Success {
			return fmt.Errorf("tutor request failed")
		}
		return nil
	},
}
