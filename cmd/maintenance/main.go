package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/Rohith-AI-HUB/webhook-repo/config"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/usecase"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/storage"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/timefmt"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "maintenance",
		Usage: "Manage the webhook event store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.yaml (default: search ./config, ., /etc/app/)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "purge",
				Usage: "delete events older than the retention window",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Value: event.DefaultRetentionDays,
						Usage: "retention window in days",
					},
				},
				Action: func(c *cli.Context) error {
					return withUseCase(c, func(ctx context.Context, uc event.UseCase) error {
						return purge(ctx, uc, c.Int("days"), out)
					})
				},
			},
			{
				Name:  "stats",
				Usage: "print event counts and the most active authors",
				Action: func(c *cli.Context) error {
					return withUseCase(c, func(ctx context.Context, uc event.UseCase) error {
						return stats(ctx, uc, out)
					})
				},
			},
			{
				Name:  "recent",
				Usage: "print the latest events",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "number of events",
					},
				},
				Action: func(c *cli.Context) error {
					return withUseCase(c, func(ctx context.Context, uc event.UseCase) error {
						return recent(ctx, uc, c.Int("limit"), out)
					})
				},
			},
		},
	}
}

// withUseCase opens the configured store for the duration of one command.
func withUseCase(c *cli.Context, fn func(ctx context.Context, uc event.UseCase) error) error {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
	})

	ctx := c.Context
	repo, err := storage.Open(ctx, cfg.Store, cfg.Webhook.VerifySSL, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	return fn(ctx, usecase.New(repo, logger, usecase.Config{Timeout: cfg.Store.Timeout}))
}

func purge(ctx context.Context, uc event.UseCase, days int, out io.Writer) error {
	removed, err := uc.PurgeOlderThan(ctx, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "removed %d events older than %d days\n", removed, days)
	return nil
}

func stats(ctx context.Context, uc event.UseCase, out io.Writer) error {
	s, err := uc.Statistics(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "total\t%d\n", s.TotalCount)
	types := lo.Keys(s.ByType)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Fprintf(out, "%s\t%d\n", t, s.ByType[t])
	}
	for i, a := range s.TopAuthors {
		fmt.Fprintf(out, "#%d\t%s\t%d\n", i+1, a.Author, a.Count)
	}
	return nil
}

func recent(ctx context.Context, uc event.UseCase, limit int, out io.Writer) error {
	res, err := uc.Recent(ctx, event.RecentInput{Limit: limit})
	if err != nil {
		return err
	}
	for _, e := range res.Events {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", timefmt.Format(e.Timestamp), e.EventType, e.Author, e.Repository)
	}
	return nil
}
