package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/facescan/internal/config"
	"github.com/nao1215/facescan/internal/faceapi"
	"github.com/nao1215/facescan/internal/imagefile"
)

// scenario is one end-to-end run described in testdata/scenarios.yaml.
type scenario struct {
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Status   int     `yaml:"status"`
	Body     string  `yaml:"body"`
	Stdout   string  `yaml:"stdout"`
	Edges    [][]int `yaml:"edges"`
	Interior [][]int `yaml:"interior"`
}

// sourceGray is the fill color of generated input images.
const sourceGray = 50

func loadScenarios(t *testing.T) []scenario {
	t.Helper()

	data, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("failed to read scenarios: %v", err)
	}
	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse scenarios: %v", err)
	}
	return doc.Scenarios
}

// setupWorkDir switches to a fresh directory containing people.jpg.
func setupWorkDir(t *testing.T, w, h int) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: sourceGray, G: sourceGray, B: sourceGray, A: 255})
		}
	}

	f, err := os.Create(config.DefaultInputPath)
	if err != nil {
		t.Fatalf("failed to create input: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}
	return dir
}

// fakeService answers every detect call with status and body and counts calls.
func fakeService(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/face/v1.2/detect" || r.Header.Get(faceapi.SubscriptionKeyHeader) == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runRoot executes the root command and returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// luma returns the 8-bit luminance of the pixel at (x, y).
func luma(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return int((299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000)
}

// TestAnalyzeScenarios runs the whole command against a fake service.
// These tests change the working directory and environment and cannot run in parallel.
func TestAnalyzeScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			var calls atomic.Int32
			srv := fakeService(t, sc.Status, sc.Body, &calls)
			t.Setenv(config.EnvServiceKey, "test-key")
			t.Setenv(config.EnvServiceEndpoint, srv.URL)
			setupWorkDir(t, sc.Width, sc.Height)

			stdout, _, err := runRoot(t)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != sc.Stdout {
				t.Errorf("stdout:\n%q\nwant:\n%q", stdout, sc.Stdout)
			}
			if calls.Load() != 1 {
				t.Errorf("expected exactly one service call, got %d", calls.Load())
			}

			f, err := os.Open(config.DefaultOutputPath)
			if err != nil {
				t.Fatalf("expected output file: %v", err)
			}
			defer f.Close()
			img, err := jpeg.Decode(f)
			if err != nil {
				t.Fatalf("output is not a jpeg: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, sc.Width, sc.Height) {
				t.Errorf("bounds = %v, want %dx%d", img.Bounds(), sc.Width, sc.Height)
			}

			// JPEG keeps luminance at full resolution, so a light green
			// outline on dark gray stays clearly brighter than its surroundings.
			for _, p := range sc.Edges {
				if l := luma(img, p[0], p[1]); l < 120 {
					t.Errorf("edge pixel %v has luma %d, want a drawn outline", p, l)
				}
			}
			for _, p := range sc.Interior {
				if l := luma(img, p[0], p[1]); l < sourceGray-8 || l > sourceGray+8 {
					t.Errorf("pixel %v has luma %d, want about %d", p, l, sourceGray)
				}
			}
		})
	}
}

// TestAnalyzeFailures tests that failures propagate and leave no output.
func TestAnalyzeFailures(t *testing.T) {
	t.Run("rejected key", func(t *testing.T) {
		var calls atomic.Int32
		srv := fakeService(t, http.StatusUnauthorized,
			`{"error":{"code":"401","message":"Access denied due to invalid subscription key."}}`, &calls)
		t.Setenv(config.EnvServiceKey, "wrong-key")
		t.Setenv(config.EnvServiceEndpoint, srv.URL)
		setupWorkDir(t, 20, 20)

		stdout, _, err := runRoot(t)
		if !errors.Is(err, faceapi.ErrRemoteCall) {
			t.Fatalf("expected ErrRemoteCall, got %v", err)
		}
		if !strings.Contains(err.Error(), "check "+config.EnvServiceKey) {
			t.Errorf("expected a hint naming %s, got %v", config.EnvServiceKey, err)
		}
		if stdout != "" {
			t.Errorf("expected no stdout, got %q", stdout)
		}
		if _, err := os.Stat(config.DefaultOutputPath); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected no output file, got %v", err)
		}
	})

	t.Run("missing input image", func(t *testing.T) {
		var calls atomic.Int32
		srv := fakeService(t, http.StatusOK, "[]", &calls)
		t.Setenv(config.EnvServiceKey, "test-key")
		t.Setenv(config.EnvServiceEndpoint, srv.URL)
		t.Chdir(t.TempDir())

		_, _, err := runRoot(t)
		if !errors.Is(err, imagefile.ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
		if strings.Contains(err.Error(), "check "+config.EnvServiceKey) {
			t.Errorf("expected no credential hint for a local failure, got %v", err)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no service call, got %d", calls.Load())
		}
	})

	t.Run("credentials from .env file", func(t *testing.T) {
		var calls atomic.Int32
		srv := fakeService(t, http.StatusOK, "[]", &calls)
		t.Setenv(config.EnvServiceKey, "")
		t.Setenv(config.EnvServiceEndpoint, "")
		if err := os.Unsetenv(config.EnvServiceKey); err != nil {
			t.Fatal(err)
		}
		if err := os.Unsetenv(config.EnvServiceEndpoint); err != nil {
			t.Fatal(err)
		}
		dir := setupWorkDir(t, 20, 20)

		env := "AI_SERVICE_KEY=file-key\nAI_SERVICE_ENDPOINT=" + srv.URL + "\n"
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0600); err != nil {
			t.Fatal(err)
		}

		if _, _, err := runRoot(t); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected one service call, got %d", calls.Load())
		}
	})

	t.Run("verbose logs never contain the key", func(t *testing.T) {
		var calls atomic.Int32
		srv := fakeService(t, http.StatusOK, "[]", &calls)
		t.Setenv(config.EnvServiceKey, "0123456789abcdef0123456789abcdef")
		t.Setenv(config.EnvServiceEndpoint, srv.URL)
		setupWorkDir(t, 20, 20)

		_, stderr, err := runRoot(t, "--verbose")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, "starting analysis") || !strings.Contains(stderr, "read_image") {
			t.Errorf("expected debug logs naming the steps on stderr, got %q", stderr)
		}
		if bytes.Contains([]byte(stderr), []byte("0123456789abcdef0123456789abcdef")) {
			t.Errorf("key leaked into logs: %s", stderr)
		}
	})
}
