package cli

import (
	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	var text, lang string

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate text via the configured translator",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"text":            text,
				"target_language": lang,
			}
			var result TranslateResult

			if err := client.Post("/api/v1/translate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to translate (required)")
	cmd.Flags().StringVar(&lang, "lang", "", "Target language (required)")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}
