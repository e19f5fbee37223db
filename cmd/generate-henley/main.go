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
	out := flag.String("out", "", "overlay output path (default: <generated-dir>/henley/visa-matrix.json)")
	offline := flag.Bool("offline", false, "read PDFs from the local PDF directory instead of downloading")
	allowEmpty := flag.Bool("allow-empty", false, "accept a run that yields no entries")
	flag.Parse()

	cfg := config.Load()

	options, err := services.LoadHenleyOptions(cfg.HenleyConfigPath)
	if err != nil {
		log.Fatalf("[CRITICAL] Invalid henley configuration: %v", err)
	}
	if *offline || cfg.HenleyOffline {
		options.Offline = true
		options.LocalPDFDir = cfg.HenleyPDFDir
	}
	if *allowEmpty || cfg.AllowEmptyDataset {
		options.AllowEmpty = true
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(cfg.GeneratedDir, "henley", "visa-matrix.json")
	}

	pipeline := services.NewHenleyPipeline(options, outPath)
	dataset, err := pipeline.Run(context.Background())
	if err != nil {
		log.Fatalf("[CRITICAL] Henley pipeline failed: %v", err)
	}

	log.Printf("Henley overlay written to %s (%d origins)", outPath, len(dataset.Matrix))
}
