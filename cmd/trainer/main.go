// Package main は単語練習用のターミナルクライアントです。
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jindam_vocab/internal/client"
	"jindam_vocab/internal/config"
	"jindam_vocab/internal/game"
	"jindam_vocab/internal/tui"
)

var (
	serverURL  string
	clientID   string
	configPath string
	seed       uint64
	listDate   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trainer",
		Short:         "중국어 예문 조립 훈련",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainerCmd,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (default: client.base_url in config)")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "vocabulary namespace sent as X-Client-ID")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing config.yaml")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed (0: random)")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newDatesCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// newAPIClient は設定ファイルとフラグから API クライアントを作ります
func newAPIClient() (*client.APIClient, error) {
	if err := config.LoadConfig(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	base := config.Cfg.Client.BaseURL
	if serverURL != "" {
		base = serverURL
	}
	// TUI の画面を崩さないようにログは捨てる
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.NewAPIClient(base,
		client.WithClientID(clientID),
		client.WithTimeout(config.Cfg.ClientTimeout()),
		client.WithLogger(logger),
	), nil
}

func runTrainerCmd(cmd *cobra.Command, _ []string) error {
	api, err := newAPIClient()
	if err != nil {
		return err
	}

	var shuffler game.Shuffler
	if seed != 0 {
		shuffler = game.NewSeededShuffler(seed)
	}
	session := client.NewSession(api, slog.New(slog.NewTextHandler(io.Discard, nil)))

	p := tea.NewProgram(tui.NewModel(session, shuffler), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run trainer: %w", err)
	}
	return nil
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "서버 연결 상태 확인",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			resp, err := api.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", client.UserMessage(err), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (v%s, %s)\n", resp.Message, resp.Version, resp.API)
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "단어장 목록",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			words, err := api.ListWords(cmd.Context(), listDate)
			if err != nil {
				return fmt.Errorf("%s: %w", client.UserMessage(err), err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWORD\tPINYIN\tMEANING\tDATE\tEXAMPLES")
			for _, e := range words {
				date := e.Date
				if t := e.DateTime(); !t.IsZero() {
					date = t.Local().Format(time.DateOnly)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", e.ID, e.Word, e.Pinyin, e.Meaning, date, len(e.Examples))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&listDate, "date", "", "filter by date (YYYY-MM-DD)")
	return cmd
}

func newDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "단어를 저장한 날짜 목록",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			dates, err := api.ListDates(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", client.UserMessage(err), err)
			}
			for _, d := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "단어장에서 단어 삭제",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := api.DeleteWord(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", client.UserMessage(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "삭제되었습니다:", args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "브라우저에서 내보낸 단어장(JSON 배열) 가져오기",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			api, err := newAPIClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			result, err := api.ImportWords(ctx, data)
			if err != nil {
				return fmt.Errorf("%s: %w", client.UserMessage(err), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported=%d skipped=%d total=%d\n", result.Imported, result.Skipped, result.Total)
			return nil
		},
	}
}
