// Command tavscrape-sync runs the local party sync relay. It watches the
// Script Extender drop directory for party snapshots and serves them to the
// browser app over HTTP.
package main

import (
	"flag"
	"log"

	"tavscrape/config"
	"tavscrape/relay"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file path (default ~/.tavscrape/config.yaml)")
		seDir      = flag.String("se-dir", "", "Script Extender directory (overrides config)")
		addr       = flag.String("addr", "", "listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if *seDir != "" {
		cfg.ScriptExtenderDir = *seDir
	}
	if *addr != "" {
		cfg.RelayAddr = *addr
	}

	log.Printf("INFO: to publish party data, run the dump script in the Script Extender console")
	log.Printf("INFO: the relay picks up party_sync.json within a couple of seconds of each dump")

	srv := relay.NewServer(cfg.ScriptExtenderDir)
	if err := srv.Run(cfg.RelayAddr); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
