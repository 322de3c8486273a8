// Command reconcile recalcula el stock de cada par (producto, sucursal) desde sus entradas
// y corrige las filas desfasadas. Usa la misma configuración que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/storage"
	"github.com/jhoicas/agro-inventario-api/pkg/config"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

func main() {
	productID := flag.String("product-id", "", "Optional: limit to one product (uuid)")
	branchID := flag.String("branch-id", "", "Optional: limit to one branch (uuid)")
	dryRun := flag.Bool("dry-run", false, "Report drift without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	for name, v := range map[string]string{"product-id": *productID, "branch-id": *branchID} {
		if s := strings.TrimSpace(v); s != "" {
			if _, err := uuid.Parse(s); err != nil {
				log.Fatal().Err(err).Str("flag", name).Msg("el flag debe ser un uuid")
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	ledger := inventory.NewStockLedgerUseCase(backend.TxRunner, backend.Repos, log)
	results, err := ledger.Reconcile(ctx, inventory.ReconcileInput{
		ProductID: strings.TrimSpace(*productID),
		BranchID:  strings.TrimSpace(*branchID),
		DryRun:    *dryRun,
	})
	if err != nil {
		backend.Close()
		log.Fatal().Err(err).Msg("reconciliación fallida")
	}

	changed := 0
	for _, r := range results {
		if r.Action == inventory.ReconcileUnchanged {
			continue
		}
		changed++
		fmt.Printf("%-9s product=%s branch=%s previous=%d recomputed=%d\n",
			r.Action, r.ProductID, r.BranchID, r.Previous, r.Recomputed)
	}
	mode := "applied"
	if *dryRun {
		mode = "dry run"
	}
	fmt.Printf("stock reconcile complete (%s): %d pairs checked, %d changed\n", mode, len(results), changed)
}
