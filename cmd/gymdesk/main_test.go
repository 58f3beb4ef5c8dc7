package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mmynk/gymdesk/internal/config"
	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/storage/flatfile"
)

func newTestRoot(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	cfg := config.Load()
	root := rootCommand(ctx, &cfg)
	root.AddCommand(listCommand(ctx, &cfg), migrateCommand(ctx, &cfg))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root, &out
}

func TestBackendFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("GYM_BACKEND", "postgres")
	dir := t.TempDir()

	store := flatfile.New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := store.SavePlans(context.Background(), []models.Plan{
		{ID: 1, Name: "Basic", Price: 29.99, Description: "Gym floor"},
	}); err != nil {
		t.Fatalf("SavePlans failed: %v", err)
	}

	t.Run("bad environment backend is rejected", func(t *testing.T) {
		root, _ := newTestRoot(t, "--data-dir", dir, "list", "plans")
		if err := root.Execute(); err == nil {
			t.Fatal("Expected an unknown backend error")
		}
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		root, out := newTestRoot(t, "--data-dir", dir, "--backend", "file", "list", "plans")
		if err := root.Execute(); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !strings.Contains(out.String(), "ID: 1 | Basic | 29.99 DT/month") {
			t.Errorf("Unexpected list output:\n%s", out.String())
		}
	})

	t.Run("unknown record set is rejected", func(t *testing.T) {
		root, _ := newTestRoot(t, "--data-dir", dir, "--backend", "file", "list", "trainers")
		if err := root.Execute(); err == nil {
			t.Fatal("Expected an invalid argument error")
		}
	})
}
