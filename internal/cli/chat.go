package cli

import (
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Direct message commands",
	}

	cmd.AddCommand(newChatSendCmd())
	cmd.AddCommand(newChatHistoryCmd())
	cmd.AddCommand(newChatThreadsCmd())

	return cmd
}

func newChatSendCmd() *cobra.Command {
	var to, body string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a direct message",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"receiver": to,
				"body":     body,
			}
			var result Message

			if err := client.Post("/api/v1/chat/messages", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Receiver identity (required)")
	cmd.Flags().StringVar(&body, "body", "", "Message body (required)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func newChatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <identity>",
		Short: "Show the conversation with another player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ThreadHistory

			if err := client.Get("/api/v1/chat/threads/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newChatThreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threads",
		Short: "List all conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ThreadList

			if err := client.Get("/api/v1/chat/threads", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
