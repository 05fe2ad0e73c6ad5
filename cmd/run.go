package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/app"
	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/llm"
	"github.com/abhisek/elan/internal/screen"
	"github.com/abhisek/elan/internal/speech"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the tutor (default when no command is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	runCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := commandContext(cmd)
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	eventRepo := e.store.EventRepo()
	deps := screen.Deps{
		Ctx:      ctx,
		Progress: e.progress,
		Content:  content.Unavailable{},
		Speaker:  newSpeaker(ctx, e),
		Exams:    eventRepo,
		History:  eventRepo,
		Log:      e.log,
	}

	provider, err := newContentProvider(ctx, e)
	if err != nil {
		e.log.Warn("LLM provider not configured", "error", err)
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Only the built-in A1 vocabulary will be available.")
	} else {
		deps.Content = provider
		deps.ContentReady = true
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(ctx, deps, app.Options{Splash: !noSplash})
}

// newContentProvider discovers an LLM key and wraps the provider in the
// content service.
func newContentProvider(ctx context.Context, e *environment) (*content.Service, error) {
	cfg, ok := llm.Discover(e.cfg.LLM)
	if !ok {
		return nil, fmt.Errorf("no API key found (set GEMINI_API_KEY or ELAN_%s_API_KEY)", strings.ToUpper(string(cfg.Provider)))
	}
	provider, err := llm.NewProvider(ctx, cfg, e.store.EventRepo(), e.log)
	if err != nil {
		return nil, err
	}
	e.log.Info("LLM provider ready", "provider", cfg.Provider, "model", provider.ModelID())
	return content.NewService(provider, e.cfg.Content), nil
}

func newSpeaker(ctx context.Context, e *environment) speech.Speaker {
	return speech.New(ctx, e.cfg.SpeechConfig(), e.log)
}
