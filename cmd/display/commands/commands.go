package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/l-sayginsoy/drk-display/internal/adapters/repository"
	"github.com/l-sayginsoy/drk-display/internal/adapters/weather"
	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/config"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/database"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/server"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the display server",
		Long:  "Start the display server with the kiosk routes, the admin API and the websocket stream",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage database migrations for the postgres storage driver (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewContentCommand creates the content management command
func NewContentCommand() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Content document commands",
		Long:  "Inspect and manage the stored content document",
	}

	contentCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored content document",
		Run: func(cmd *cobra.Command, args []string) {
			showContent()
		},
	})

	contentCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Replace the stored content document with the defaults",
		Run: func(cmd *cobra.Command, args []string) {
			resetContent()
		},
	})

	contentCmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import a content document from a JSON file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			importContent(args[0])
		},
	})

	contentCmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Export the stored content document to a JSON file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exportContent(args[0])
		},
	})

	return contentCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the drk-display version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("drk-display v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	repo, db, cleanup, err := openRepository(cfg)
	if err != nil {
		appLogger.Fatalw("Failed to open content storage", "error", err)
	}
	defer cleanup()

	weatherProvider := weather.NewHTTPProvider(cfg.Weather)

	srv, err := server.New(cfg, repo, weatherProvider, db, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			appLogger.Errorw("Server shutdown failed", "error", err)
		}
	}()

	appLogger.Infow("Starting display server",
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
		"environment", cfg.App.Environment,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLogger.Fatalw("Server failed to start", "error", err)
	}
}

// openRepository selects the content store by the configured storage driver.
// The returned database handle is nil for the file driver.
func openRepository(cfg *config.Config) (ports.ContentRepository, *database.DB, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewPostgresContentRepository(db.DB), db, func() { db.Close() }, nil
	default:
		return repository.NewFileContentRepository(cfg.Storage.Path), nil, func() {}, nil
	}
}

func runMigration(direction string) {
	m, db := newMigrator()
	defer db.Close()

	var err error
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	m, db := newMigrator()
	defer db.Close()

	version, dirty, err := m.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func newMigrator() (*migrate.Migrate, *database.DB) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Storage.Driver != "postgres" {
		log.Fatal("Migrations only apply to the postgres storage driver")
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	return m, db
}

func showContent() {
	repo, cleanup := mustOpenRepository()
	defer cleanup()

	ctx := context.Background()
	raw, err := repo.Load(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrDocumentNotFound) {
			fmt.Println("No content document stored yet; the server would start with the defaults.")
			return
		}
		log.Fatalf("Failed to load content document: %v", err)
	}

	doc, err := entities.ReconcileDocument(raw)
	if err != nil {
		log.Fatalf("Stored content document is unparsable: %v", err)
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode content document: %v", err)
	}
	fmt.Println(string(pretty))
}

func resetContent() {
	repo, cleanup := mustOpenRepository()
	defer cleanup()

	raw, err := json.Marshal(entities.DefaultDocument())
	if err != nil {
		log.Fatalf("Failed to encode default document: %v", err)
	}

	if err := repo.Save(context.Background(), raw); err != nil {
		log.Fatalf("Failed to reset content document: %v", err)
	}
	fmt.Println("Content document reset to defaults")
}

func importContent(path string) {
	repo, cleanup := mustOpenRepository()
	defer cleanup()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	// Reconciling normalizes the payload onto the full document shape, so a
	// partial or slightly damaged export imports cleanly.
	doc, err := entities.ReconcileDocument(raw)
	if err != nil {
		log.Fatalf("File is not a content document: %v", err)
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("Failed to encode content document: %v", err)
	}

	if err := repo.Save(context.Background(), normalized); err != nil {
		log.Fatalf("Failed to save content document: %v", err)
	}
	fmt.Printf("Imported content document from %s\n", path)
}

func exportContent(path string) {
	repo, cleanup := mustOpenRepository()
	defer cleanup()

	raw, err := repo.Load(context.Background())
	if err != nil {
		if errors.Is(err, entities.ErrDocumentNotFound) {
			log.Fatal("No content document stored yet")
		}
		log.Fatalf("Failed to load content document: %v", err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("Exported content document to %s\n", path)
}

func mustOpenRepository() (ports.ContentRepository, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, _, cleanup, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open content storage: %v", err)
	}
	return repo, cleanup
}
