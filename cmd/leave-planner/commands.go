package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/leave-planner/internal/daemon"
	"github.com/username/leave-planner/internal/locale"
	"github.com/username/leave-planner/internal/report"
	"github.com/username/leave-planner/internal/web"
)

// resolveLang turns the --lang flag into a language, falling back to the config default
func resolveLang(flag, configured string) (locale.Lang, error) {
	if flag == "" {
		lang, _ := locale.Parse(configured)
		if lang == "" {
			lang = locale.Turkish
		}
		return lang, nil
	}
	lang, ok := locale.Parse(flag)
	if !ok {
		return "", fmt.Errorf("unsupported language %q (use tr or en)", flag)
	}
	return lang, nil
}

func planCmd() *cobra.Command {
	var maxLeaves int
	var lang string
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the suggested leave days and the resulting long breaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, table, err := loadPlanner(cmd.Context())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("max-leaves") {
				maxLeaves = cfg.Planner.DefaultMaxLeaves
			}
			language, err := resolveLang(lang, cfg.Server.DefaultLang)
			if err != nil {
				return err
			}
			messages := language.Messages()

			summary, err := report.Build(p, table, maxLeaves)
			if err != nil {
				return fmt.Errorf("failed to compute plan: %w", err)
			}

			logger.Info("Plan computed",
				zap.Int("max_leaves", maxLeaves),
				zap.Int("proposed", len(summary.ProposedLeaves)),
				zap.Int("periods", len(summary.Periods)),
				zap.Int("total_consecutive_days", summary.TotalConsecutiveDays))

			if err := report.WriteText(cmd.OutOrStdout(), summary.Localize(messages)); err != nil {
				return err
			}

			if xlsxPath != "" {
				if err := writeXLSXFile(xlsxPath, summary, messages); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", xlsxPath)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLeaves, "max-leaves", "n", 14, "Maximum number of leave days (1-30)")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language: tr or en (default from config)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also export the plan to this xlsx file")

	return cmd
}

func writeXLSXFile(path string, summary *report.Summary, messages *locale.Messages) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := report.WriteXLSX(f, summary, messages); err != nil {
		return err
	}

	logger.Info("Plan exported", zap.String("path", path))
	return f.Close()
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, table, err := loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			defaultLang, _ := locale.Parse(cfg.Server.DefaultLang)
			srv := web.NewServer(p, table, web.Options{
				DefaultMaxLeaves: cfg.Planner.DefaultMaxLeaves,
				DefaultLang:      defaultLang,
			}, logger)

			d := daemon.NewDaemon(srv.Router(), cfg.Server, logger)
			return d.Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the loaded public holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, table, err := loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			language, err := resolveLang(lang, cfg.Server.DefaultLang)
			if err != nil {
				return err
			}
			messages := language.Messages()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", messages.HolidaysTitle)
			for _, h := range table.Entries() {
				days := make([]string, 0, len(h.Dates))
				for _, d := range h.Dates {
					days = append(days, messages.FormatLong(d))
				}
				fmt.Fprintf(out, "- %s: %s\n", h.Name, strings.Join(days, "; "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Output language: tr or en (default from config)")

	return cmd
}
