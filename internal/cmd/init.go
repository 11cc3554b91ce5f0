package cmd

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/config"
	"github.com/fineduguide/fineduguide/core/file_store"
	"github.com/fineduguide/fineduguide/internal/dao"
	"github.com/fineduguide/fineduguide/internal/service"
)

// init wires up all components before the server starts
func init() {
	ctx := context.Background()

	// Validate configuration before initializing components
	g.Log().Info(ctx, "Validating application configuration...")
	err := config.ValidateConfiguration(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Configuration validation failed:\n%v", err)
	}

	// Initialize database
	err = dao.InitDB()
	if err != nil {
		g.Log().Fatalf(ctx, "Database connection initialization failed: %v", err)
	}

	// Initialize object storage
	err = file_store.InitObjectStore(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Object storage initialization failed: %v", err)
	}

	// Initialize vector database and make sure the chunk collection exists
	store, err := service.VectorStore(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Vector store initialization failed: %v", err)
	}
	if err = store.CreateDatabaseIfNotExists(ctx); err != nil {
		g.Log().Fatalf(ctx, "Vector database creation failed: %v", err)
	}
	if err = store.EnsureCollection(ctx, service.CollectionName(ctx)); err != nil {
		g.Log().Fatalf(ctx, "Vector collection initialization failed: %v", err)
	}

	g.Log().Info(ctx, "✓ All components initialized successfully")
}
