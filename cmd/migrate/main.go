package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"go.uber.org/zap"

	"github.com/murkotick/order-processing-service/internal/pkg/config"
)

// Applies the schema under migrations/ to the configured Spanner database
// (typically the emulator for local dev). The target database comes from
// the same config surface as the server, so SHOP_SPANNER_DATABASE or a
// -config file selects it.
//
// Usage (emulator):
//
//	set SPANNER_EMULATOR_HOST=localhost:9010
//	set SHOP_SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	migrationsDir := flag.String("migrations", "migrations", "directory holding the DDL files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ddlPath := filepath.Join(*migrationsDir, "001_initial_schema.sql")
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		logger.Fatal("read DDL", zap.String("path", ddlPath), zap.Error(err))
	}
	if len(stmts) == 0 {
		logger.Fatal("no DDL statements found", zap.String("path", ddlPath))
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatal("database admin client", zap.Error(err))
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.Spanner.Database,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatal("UpdateDatabaseDdl", zap.Error(err))
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatal("UpdateDatabaseDdl wait", zap.Error(err))
	}

	logger.Info("schema applied",
		zap.Int("statements", len(stmts)),
		zap.String("database", cfg.Spanner.Database))
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Normalize line endings for Windows-authored files.
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
