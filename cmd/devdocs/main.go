package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/download"
	"github.com/fwojciec/devdocs/fs"
	"github.com/fwojciec/devdocs/github"
	"github.com/fwojciec/devdocs/goldmark"
	devslog "github.com/fwojciec/devdocs/slog"
	"github.com/fwojciec/devdocs/sqlite"
	"github.com/fwojciec/devdocs/zip"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Load .env if present; ignore when missing.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path and documentation root. Set before calling Run().
	DBPath  string
	DocsDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	TopicService    devdocs.TopicService
	DocumentService devdocs.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DocsDir: defaultDocsDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		DocsDir: m.DocsDir,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("devdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'devdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DEVDOCS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.TopicService = sqlite.NewTopicService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Topics = m.TopicService
	deps.Documents = m.DocumentService

	// DEVDOCS_DEBUG wraps the fetcher and syncer with logging decorators.
	var logger *slog.Logger
	if os.Getenv("DEVDOCS_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var fetcher devdocs.ArchiveFetcher = github.NewFetcher()
	if logger != nil {
		fetcher = devslog.NewLoggingFetcher(fetcher, logger)
	}

	var syncer devdocs.TopicSyncer = &download.Syncer{
		Fetcher:   fetcher,
		Extractor: zip.NewExtractor(),
		Topics:    m.TopicService,
		Documents: m.DocumentService,
	}
	if logger != nil {
		syncer = devslog.NewLoggingSyncer(syncer, logger)
	}
	deps.Syncer = syncer
	deps.Renderer = goldmark.NewRenderer()

	if err := seedDefaultTopics(ctx, deps); err != nil {
		return fmt.Errorf("failed to seed default topics: %w", err)
	}

	return kongCtx.Run(deps)
}

// defaultTopics are registered on first run against an empty database. They
// are not synced automatically; that stays an explicit user action.
var defaultTopics = []struct {
	name      string
	sourceURL string
	subfolder string
}{
	{"Laravel Docs", "https://github.com/laravel/docs", ""},
	{"Python Docs", "https://github.com/python/cpython", "Doc"},
	{"Vue.js Docs", "https://github.com/vuejs/docs", "src"},
}

func seedDefaultTopics(ctx context.Context, deps *Dependencies) error {
	topics, err := deps.Topics.FindTopics(ctx, devdocs.TopicFilter{})
	if err != nil {
		return err
	}
	if len(topics) > 0 {
		return nil
	}

	for _, seed := range defaultTopics {
		dir, err := fs.TopicDir(deps.DocsDir, seed.name)
		if err != nil {
			return err
		}
		topic := &devdocs.Topic{
			Name:      seed.name,
			SourceURL: seed.sourceURL,
			Subfolder: seed.subfolder,
			LocalPath: dir,
		}
		if err := deps.Topics.CreateTopic(ctx, topic); err != nil {
			return err
		}
	}

	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("DEVDOCS_DB"); path != "" {
		return path
	}
	dir := configDir()
	return filepath.Join(dir, "devdocs.db")
}

func defaultDocsDir() string {
	if path := os.Getenv("DEVDOCS_DIR"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "docs")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devdocs"
	}
	dir := filepath.Join(home, ".devdocs")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
