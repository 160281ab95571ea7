package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"urlprof/core"
)

func TestRenderURL(t *testing.T) {
	t.Run("should leave plain urls untouched", func(st *testing.T) {
		engine := &core.TemplateEngineImpl{}
		got, err := engine.RenderURL("http://example.com/a?b=c")
		if err != nil {
			st.Fatal(err)
		}
		if got != "http://example.com/a?b=c" {
			st.Fatalf("unexpected url %q", got)
		}
	})

	t.Run("should render process environment", func(st *testing.T) {
		st.Setenv("URLPROF_TEST_HOST", "Example.com")
		engine := &core.TemplateEngineImpl{}
		engine.LoadEnv(filepath.Join(st.TempDir(), "missing.env"))

		got, err := engine.RenderURL(`http://{{ .Env.URLPROF_TEST_HOST | lower }}/health`)
		if err != nil {
			st.Fatal(err)
		}
		if got != "http://example.com/health" {
			st.Fatalf("unexpected url %q", got)
		}
	})

	t.Run("should render dotenv values", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "test.env")
		if err := os.WriteFile(path, []byte("URLPROF_DOTENV_PATH=/status\n"), 0644); err != nil {
			st.Fatal(err)
		}
		engine := &core.TemplateEngineImpl{}
		engine.LoadEnv(path)

		got, err := engine.RenderURL(`http://example.com{{ .Env.URLPROF_DOTENV_PATH }}`)
		if err != nil {
			st.Fatal(err)
		}
		if got != "http://example.com/status" {
			st.Fatalf("unexpected url %q", got)
		}
	})

	t.Run("should fail on missing keys", func(st *testing.T) {
		engine := &core.TemplateEngineImpl{}
		engine.LoadEnv(filepath.Join(st.TempDir(), "missing.env"))

		if _, err := engine.RenderURL(`http://{{ .Env.URLPROF_NOT_SET_ANYWHERE }}/`); err == nil {
			st.Fatalf("expected an error")
		}
	})

	t.Run("should fail on bad templates", func(st *testing.T) {
		engine := &core.TemplateEngineImpl{}
		if _, err := engine.RenderURL(`http://{{ .Env.X /`); err == nil {
			st.Fatalf("expected an error")
		}
	})
}
