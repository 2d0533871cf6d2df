package main

import (
	"context"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ivannivi/E1324/internal/blacklist"
	"github.com/Ivannivi/E1324/internal/config"
	"github.com/Ivannivi/E1324/internal/e621"
	"github.com/Ivannivi/E1324/internal/llm"
	"github.com/Ivannivi/E1324/internal/session"
	"github.com/Ivannivi/E1324/internal/store"
	"github.com/Ivannivi/E1324/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	repo, err := store.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatalf("storage write check failed (%v). Verify E1324_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	st := store.New(repo)
	if err := st.Load(ctx); err != nil {
		log.Fatalf("cannot load local state: %v", err)
	}

	rules, err := st.LoadBlacklist(ctx)
	if err != nil {
		log.Fatalf("cannot load blacklist: %v", err)
	}
	engine := blacklist.NewEngine(rules, func(rules []blacklist.Rule) error {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer saveCancel()
		return st.SaveBlacklist(saveCtx, rules)
	})

	client := e621.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	holder := session.NewHolder(client, st, engine)
	translator := llm.NewTranslator(func() string { return st.Settings().GeminiAPIKey })

	model := tui.NewModel(client, translator, st, engine, holder)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
