package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskflow-pro/config"
	"taskflow-pro/internal/auth"
	authUC "taskflow-pro/internal/auth/usecase"
	"taskflow-pro/internal/chat"
	chatMemory "taskflow-pro/internal/chat/repository/memory"
	chatUC "taskflow-pro/internal/chat/usecase"
	"taskflow-pro/internal/model"
	subMemory "taskflow-pro/internal/subscription/repository/memory"
	subUC "taskflow-pro/internal/subscription/usecase"
	taskRepo "taskflow-pro/internal/task/repository/sqldb"
	taskUC "taskflow-pro/internal/task/usecase"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/log"
)

func chatCmd() *cobra.Command {
	var (
		email  string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send one message to the assistant as a local user",
		Long: `Talks to the assistant against the configured database. The local
user is treated as premium, so tasks created here land in that user's list.

Examples:
  taskflow chat "what's due today?"
  taskflow chat "add call the bank tomorrow at 10am" --email me@example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.Database.Driver = config.DriverSQLite
				cfg.Database.SQLitePath = dbPath
			}

			l := log.Init(log.ZapConfig{Level: "error", Mode: cfg.Logger.Mode, Encoding: cfg.Logger.Encoding})
			db, err := openDatabase(ctx, l, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			dm, err := datemath.NewParser(cfg.App.Timezone)
			if err != nil {
				return err
			}

			email = strings.ToLower(strings.TrimSpace(email))
			sc := model.Scope{UserID: authUC.UserID(email), Email: email}

			sub := subUC.New(l, subMemory.New(1))
			if _, err := sub.Change(ctx, sc, model.TierPremium); err != nil {
				return err
			}
			tasks := taskUC.New(l, taskRepo.New(db, cfg.Database.Driver, l), sub, nil, "", dm)
			assistant := chatUC.New(l, tasks, sub, chatMemory.New(chat.HistorySize, 1, 0), dm)

			out, err := assistant.Reply(ctx, sc, chat.ReplyInput{Text: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Message.Text)
			if out.Action != nil && out.Action.Type == chat.ActionAddTask {
				fmt.Fprintf(cmd.OutOrStdout(), "(task %s created)\n", out.Action.Task.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", auth.DemoEmail, "local user email")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite path, overrides the configured database")

	return cmd
}
