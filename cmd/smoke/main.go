// Command smoke drives a running resume service through pkg/client. Without
// RESUME_API_URL it starts an in-memory service on a local port first.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	httpadapter "github.com/capsloque-org/ResumeBuilder/internal/adapter/http"
	repo "github.com/capsloque-org/ResumeBuilder/internal/adapter/repository"
	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/usecase"
	"github.com/capsloque-org/ResumeBuilder/pkg/client"
	"github.com/capsloque-org/ResumeBuilder/pkg/infrastructure"
)

const localAddr = "127.0.0.1:3999"

func startLocal(log *slog.Logger) func() {
	docs := usecase.NewDocuments(repo.NewMemoryRepo(), domain.DefaultIDs, log)
	sessions := usecase.NewRegistry(usecase.SessionFactory(docs, nil, usecase.SessionDeps{
		Clock: usecase.SystemClock{},
		Sync:  usecase.DefaultSyncConfig(),
		Log:   log,
	}))
	h := httpadapter.NewHandler(docs, sessions, nil, 0, log)
	app := httpadapter.NewApp(h, httpadapter.Options{Log: log})
	go func() {
		if err := app.Listen(localAddr); err != nil {
			log.Error("local server failed", "error", err)
		}
	}()
	time.Sleep(200 * time.Millisecond)
	return func() {
		_ = app.Shutdown()
		sessions.Close(context.Background())
	}
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := client.NewFromEnv()
	if os.Getenv("RESUME_API_URL") == "" {
		stop := startLocal(log)
		defer stop()
		c.BaseURL = "http://" + localAddr
	}
	if c.UserID == "" {
		c.UserID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, c, log); err != nil {
		fmt.Printf("smoke failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("smoke completed")
}

func run(ctx context.Context, c *client.Client, log *slog.Logger) error {
	templates, err := c.Templates(ctx)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	fmt.Printf("templates: %d\n", len(templates))

	// Server-side session driven over HTTP.
	actions := []editor.Action{
		editor.UpdatePersonal{Field: "fullName", Value: "Smoke Test"},
		editor.UpdatePersonal{Field: "city", Value: "Lisbon"},
		editor.UpdateEntry{Section: domain.SectionExperience, Index: 0, Field: "company", Value: "Acme"},
		editor.AddSkill{Category: 0, Skill: "Go"},
		editor.SetTemplate{Template: domain.TemplateModern},
	}
	for _, a := range actions {
		if _, err := c.Dispatch(ctx, a); err != nil {
			return fmt.Errorf("dispatch %s: %w", a.Type(), err)
		}
	}
	st, err := c.SaveNow(ctx)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if st.Notice != nil {
		fmt.Printf("save: %s\n", st.Notice.Message)
	}
	html, err := c.Preview(ctx, 0.8)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	fmt.Printf("preview: %d bytes\n", len(html))

	// Local session synchronizing against the service as its remote replica.
	dir, err := os.MkdirTemp("", "resume-smoke")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	s := usecase.NewSession(uuid.MustParse(c.UserID), usecase.SessionDeps{
		Remote: c,
		Local:  infrastructure.NewFileCache(filepath.Join(dir, "cache")),
		Clock:  usecase.SystemClock{},
		Sync:   usecase.DefaultSyncConfig(),
		Log:    log,
	})
	res := s.Load(ctx)
	fmt.Printf("local session loaded from %s: %s\n", res.Source, s.Document().PersonalInfo.Location)
	if _, err := s.Dispatch(editor.UpdatePersonal{Field: "summary", Value: "Edited **offline** first."}); err != nil {
		return err
	}
	s.Close(ctx)

	raw, err := c.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	fmt.Printf("stored document: %d bytes\n", len(raw))
	return nil
}
