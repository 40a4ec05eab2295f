package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgebound/crafting-api/internal/handlers/ws"
	"github.com/forgebound/crafting-api/internal/orchestrators/crafting"
	"github.com/forgebound/crafting-api/internal/pkg/clock"
	"github.com/forgebound/crafting-api/internal/pkg/idgen"
	redisclient "github.com/forgebound/crafting-api/internal/redis"
	"github.com/forgebound/crafting-api/internal/registry"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
	"github.com/forgebound/crafting-api/internal/repositories/inventory"
)

var (
	serverPort   int
	redisAddress string
	inMemory     bool
	dataDir      string
	menuLabel    string
	targetTag    string
	gridColumns  int
	visibleRows  int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the crafting WebSocket server",
	Long:  `Start the crafting server: load the entity registry, connect the party inventory store, and serve crafting sessions on /ws.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis endpoint for inventory and craft history")
	serverCmd.Flags().BoolVar(&inMemory, "in-memory", false, "use in-memory stores instead of Redis")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "directory holding the entity definition files")
	serverCmd.Flags().StringVar(&menuLabel, "menu-label", ws.DefaultMenuLabel, "heading sent with every catalog")
	serverCmd.Flags().StringVar(&targetTag, "target-tag", crafting.DefaultTargetTag, "tag that marks an entity as targetable")
	serverCmd.Flags().IntVar(&gridColumns, "columns", 2, "catalog grid columns")
	serverCmd.Flags().IntVar(&visibleRows, "visible-rows", 4, "catalog grid rows visible at once")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	reg, err := registry.NewFileStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load entity registry: %w", err)
	}

	inventoryRepo, craftLogRepo, err := buildRepositories(ctx)
	if err != nil {
		return err
	}

	service, err := crafting.NewOrchestrator(&crafting.Config{
		Registry:      reg,
		InventoryRepo: inventoryRepo,
		CraftLogRepo:  craftLogRepo,
		TargetTag:     targetTag,
	})
	if err != nil {
		return fmt.Errorf("failed to create crafting orchestrator: %w", err)
	}

	wsHandler, err := ws.NewHandler(&ws.HandlerConfig{
		Service:     service,
		Columns:     gridColumns,
		VisibleRows: visibleRows,
		MenuLabel:   menuLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", serverPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Crafting server starting",
			"port", serverPort,
			"data_dir", dataDir,
			"in_memory", inMemory)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down crafting server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown did not finish, forcing close",
				"error", err)
			_ = srv.Close()
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildRepositories wires either the Redis-backed stores or, with
// --in-memory, throwaway stores for local development without Redis.
func buildRepositories(ctx context.Context) (inventory.Repository, craftlog.Repository, error) {
	if inMemory {
		logRepo, err := craftlog.NewMemoryRepository(&craftlog.MemoryConfig{
			Clock:       clock.New(),
			IDGenerator: idgen.NewUUID("craft"),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create craft log store: %w", err)
		}
		return inventory.NewMemoryRepository(), logRepo, nil
	}

	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("redis at %s is unreachable: %w", redisAddress, err)
	}

	inventoryRepo, err := inventory.NewRedisRepository(&inventory.Config{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}

	logRepo, err := craftlog.NewRedisRepository(&craftlog.Config{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("craft"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create craft log repository: %w", err)
	}

	return inventoryRepo, logRepo, nil
}
