package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"necesitovisa/config"
	"necesitovisa/services"
)

func main() {
	csvPath := flag.String("csv", "", "path to the passport-index matrix CSV (default: <data-dir>/passport-index-matrix.csv)")
	publish := flag.Bool("publish", false, "publish generated artifacts to configured storage after building")
	flag.Parse()

	cfg := config.Load()

	source := *csvPath
	if source == "" {
		source = filepath.Join(cfg.DataDir, "passport-index-matrix.csv")
	}

	builder := &services.DatasetBuilder{
		OutDir:     cfg.GeneratedDir,
		MinColumns: services.DefaultMinMatrixColumns,
	}

	log.Printf("Building visa dataset from %s", source)
	result, err := builder.BuildFromFile(source)
	if err != nil {
		// A failed build must never leave the impression of success: the
		// previous artifacts stay untouched and the exit code is non-zero.
		log.Fatalf("[CRITICAL] Dataset build failed: %v", err)
	}

	log.Printf("Dataset build complete: %d origins written to %s (run %s)",
		result.Origins, cfg.GeneratedDir, result.RunID)

	if *publish {
		services.InitializeStorage(cfg)
		count, err := services.PublishGeneratedArtifacts(context.Background(), services.Storage, cfg.GeneratedDir, "generated")
		if err != nil {
			log.Fatalf("[CRITICAL] Publish failed after %d artifacts: %v", count, err)
		}
		log.Printf("Published %d artifacts", count)
	}
}
