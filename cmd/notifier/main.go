package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wttnotify/wttnotify/internal/metadata"
	"github.com/wttnotify/wttnotify/internal/notify"
	"github.com/wttnotify/wttnotify/internal/pkg/config"
	"github.com/wttnotify/wttnotify/internal/pkg/logging"
	"github.com/wttnotify/wttnotify/internal/report"
	"github.com/wttnotify/wttnotify/internal/results/wtt"
)

const defaultConfigPath = "configs/production.yaml"

// Exit codes are an observable contract: the scheduler that runs this job
// distinguishes "nothing to do" from the hard failure modes.
const (
	exitOK               = 0
	exitFatal            = 1
	exitMetadataUnusable = 2
	exitEventsMissing    = 3
	exitBlockFailed      = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", defaultConfigPath, "Path to YAML config file")
	flag.Parse()

	logging.SetupLogger("notifier")

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return exitFatal
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Spreadsheet metadata tier, mandatory in strict mode.
	var source metadata.Source
	if cfg.Metadata.EventsXLSX != "" {
		xlsx, err := metadata.LoadXLSX(cfg.Metadata.EventsXLSX)
		if err != nil {
			if cfg.Metadata.Strict {
				slog.Error("Event metadata mapping required but not usable", "error", err)
				return exitMetadataUnusable
			}
			slog.Warn("Event metadata mapping not usable, continuing without it", "error", err)
		} else {
			slog.Info("Event metadata mapping loaded", "path", cfg.Metadata.EventsXLSX, "events", xlsx.Len())
			source = xlsx
		}
	} else if cfg.Metadata.Strict {
		slog.Error("Strict mode requires metadata.events_xlsx")
		return exitMetadataUnusable
	}

	client := wtt.NewClient(cfg)

	eventIDs, err := client.DiscoverLatestEventIDs(ctx)
	if err != nil {
		slog.Error("Event discovery failed", "error", err)
		return exitFatal
	}
	if len(eventIDs) == 0 {
		slog.Info("No completed events")
		return exitOK
	}
	slog.Info("Discovered completed events", "count", len(eventIDs), "ids", strings.Join(eventIDs, ","))

	if cfg.Metadata.Strict {
		var missing []string
		for _, eid := range eventIDs {
			if _, ok := source.Lookup(eid); !ok {
				missing = append(missing, eid)
			}
		}
		if len(missing) > 0 {
			slog.Error("Event ids missing from metadata mapping", "ids", strings.Join(missing, ","))
			return exitEventsMissing
		}
	}

	var api *metadata.APISource
	if cfg.WTT.MetadataAPIURL != "" {
		api = metadata.NewAPISource(cfg)
	}
	resolver := &metadata.HeaderResolver{Source: source, API: api, Strict: cfg.Metadata.Strict}

	blocks := make([]string, 0, len(eventIDs))
	for _, eid := range eventIDs {
		block, err := buildEventBlock(ctx, eid, client, resolver, cfg)
		if err != nil {
			if cfg.Metadata.Strict {
				slog.Error("Failed to build report block", "event_id", eid, "error", err)
				return exitBlockFailed
			}
			slog.Warn("Failed to build report block, substituting placeholder", "event_id", eid, "error", err)
			block = metadata.PlaceholderHeader + "\n(results unavailable)"
		}
		blocks = append(blocks, block)
	}

	message := report.Assemble(blocks, cfg.Report.DividerWidth)
	slog.Info("Message preview", "message", "\n"+message)

	notifier, err := notify.NewTelegramNotifier(cfg)
	if err != nil {
		slog.Error("Failed to create notifier", "error", err)
		return exitFatal
	}

	messageIDs, err := notifier.Send(message)
	if errors.Is(err, notify.ErrRateLimited) {
		slog.Warn("Rate limited by Telegram, report not delivered")
		return exitOK
	}
	if err != nil {
		slog.Error("Failed to deliver report", "error", err)
		return exitFatal
	}
	slog.Info("Report delivered", "message_ids", messageIDs)
	return exitOK
}

// buildEventBlock resolves one event end to end: header, payload, normalized
// matches, rendered block.
func buildEventBlock(ctx context.Context, eventID string, client *wtt.Client, resolver *metadata.HeaderResolver, cfg *config.Config) (string, error) {
	header, err := resolver.Resolve(ctx, eventID)
	if err != nil {
		return "", err
	}

	payload, err := client.ResolvePayload(ctx, eventID)
	if err != nil {
		return "", err
	}

	matches := wtt.NormalizeMatches(payload)
	return report.BuildEventBlock(header, matches, cfg.Report.Nation, cfg.Report.NoMatchNotice), nil
}
