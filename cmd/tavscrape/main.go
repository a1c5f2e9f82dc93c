// Command tavscrape scrapes Baldur's Gate 3 gear and build guide data into
// the JSON files the companion browser app reads. Each flag selects one
// scrape phase; phases are independent and re-runnable, and -all chains the
// core ones in dependency order.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"tavscrape"
	"tavscrape/builds"
	"tavscrape/changes"
	"tavscrape/config"
	"tavscrape/fetch"
	"tavscrape/store"
	"tavscrape/wiki"
)

func main() {
	var (
		configPath   = flag.String("config", "", "config file path (default ~/.tavscrape/config.yaml)")
		dataDir      = flag.String("data", "", "data directory (overrides config)")
		doGear       = flag.Bool("gear", false, "scrape gear items from the wiki")
		doBuilds     = flag.Bool("builds", false, "scrape the build guide catalog")
		doCrossref   = flag.Bool("crossref", false, "tag gear items with the builds that recommend them")
		doCharCreate = flag.Bool("char-create", false, "enrich builds with character-creation recommendations")
		doBlurbs     = flag.Bool("blurbs", false, "enrich builds with their guide intro blurbs")
		doLevelPlans = flag.Bool("level-plans", false, "enrich builds with level-up plans")
		doGearRecs   = flag.Bool("gear-recs", false, "enrich builds with per-act gear recommendations")
		doAll        = flag.Bool("all", false, "run gear, builds, char-create, and crossref")
		doUpdates    = flag.Bool("check-updates", false, "report scraped wiki pages edited since their last fetch")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *doAll {
		*doGear = true
		*doBuilds = true
		*doCharCreate = true
		*doCrossref = true
	}

	anyPhase := *doGear || *doBuilds || *doCrossref || *doCharCreate ||
		*doBlurbs || *doLevelPlans || *doGearRecs || *doUpdates
	if !anyPhase {
		printUsage()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	locs, err := tavscrape.LoadLocations(cfg.LocationsPath())
	if err != nil {
		log.Fatalf("ERROR: failed to load locations table: %v", err)
	}

	fetchLog, err := store.NewFetchLog(cfg.FetchLogPath)
	if err != nil {
		log.Fatalf("ERROR: failed to open fetch log: %v", err)
	}
	defer fetchLog.Close()

	client := fetch.NewClient(time.Duration(cfg.GearDelayMS) * time.Millisecond)
	client.SetRecorder(fetchLog)

	gearStore, err := store.NewGearStore(cfg.GearDir())
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	buildStore := store.NewBuildStore(cfg.BuildsPath())

	wikiDelay := time.Duration(cfg.GearDelayMS) * time.Millisecond
	guideDelay := time.Duration(cfg.BuildDelayMS) * time.Millisecond

	if *doGear {
		log.Printf("INFO: === scraping gear ===")
		client.Delay = wikiDelay
		if _, err := wiki.ScrapeAllGear(client, locs, gearStore); err != nil {
			log.Fatalf("ERROR: gear scrape failed: %v", err)
		}
	}

	if *doBuilds {
		log.Printf("INFO: === scraping builds ===")
		client.Delay = guideDelay
		if _, err := builds.ScrapeAll(client, buildStore); err != nil {
			log.Fatalf("ERROR: build scrape failed: %v", err)
		}
	}

	if *doCharCreate {
		log.Printf("INFO: === enriching char-create ===")
		client.Delay = guideDelay
		if err := builds.EnrichCharCreate(client, buildStore); err != nil {
			log.Fatalf("ERROR: char-create enrichment failed: %v", err)
		}
	}

	if *doCrossref {
		log.Printf("INFO: === cross-referencing gear against builds ===")
		communityStore := store.NewBuildStore(cfg.CommunityBuildsPath())
		if err := runCrossref(gearStore, buildStore, communityStore); err != nil {
			log.Fatalf("ERROR: crossref failed: %v", err)
		}
	}

	if *doBlurbs {
		log.Printf("INFO: === enriching blurbs ===")
		client.Delay = guideDelay
		if err := builds.EnrichBlurbs(client, buildStore); err != nil {
			log.Fatalf("ERROR: blurb enrichment failed: %v", err)
		}
	}

	if *doLevelPlans {
		log.Printf("INFO: === enriching level plans ===")
		client.Delay = guideDelay
		if err := builds.EnrichLevelPlans(client, buildStore); err != nil {
			log.Fatalf("ERROR: level-plan enrichment failed: %v", err)
		}
	}

	if *doGearRecs {
		log.Printf("INFO: === enriching gear recommendations ===")
		client.Delay = wikiDelay
		if err := builds.EnrichGearRecs(client, buildStore); err != nil {
			log.Fatalf("ERROR: gear-recs enrichment failed: %v", err)
		}
	}

	if *doUpdates {
		log.Printf("INFO: === checking for wiki updates ===")
		if err := runCheckUpdates(fetchLog); err != nil {
			log.Fatalf("ERROR: update check failed: %v", err)
		}
	}

	log.Printf("INFO: done")
}

// runCrossref re-tags the stored gear files from the stored builds file plus
// the optional hand-maintained community builds file. It needs both scrape
// phases to have run at least once.
func runCrossref(gearStore *store.GearStore, buildStore, communityStore *store.BuildStore) error {
	gear, err := gearStore.LoadAll()
	if err != nil {
		return fmt.Errorf("load gear (run -gear first?): %w", err)
	}
	allBuilds, err := buildStore.Load()
	if err != nil {
		return fmt.Errorf("load builds (run -builds first?): %w", err)
	}
	community, err := communityStore.LoadOptional()
	if err != nil {
		return fmt.Errorf("load community builds: %w", err)
	}
	if len(community) > 0 {
		log.Printf("INFO: merged %d community builds", len(community))
		allBuilds = append(allBuilds, community...)
	}

	tagged := tavscrape.CrossReference(gear, allBuilds)
	return gearStore.Flush(tagged)
}

func runCheckUpdates(fetchLog *store.FetchLog) error {
	updates, err := changes.Check(changes.RecentChangesFeed, fetchLog)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		log.Printf("INFO: no scraped pages have changed")
		return nil
	}
	for _, u := range updates {
		log.Printf("INFO: stale: %s (edited %s, fetched %s) %s",
			u.Title, u.EditedAt.Format(time.RFC3339), u.LastFetched.Format(time.RFC3339), u.PageURL)
	}
	log.Printf("INFO: %d page(s) changed since last fetch", len(updates))
	return nil
}

func printUsage() {
	fmt.Println("tavscrape - BG3 gear and build scraper")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tavscrape [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tavscrape -all                 Full scrape: gear, builds, char-create, crossref")
	fmt.Println("  tavscrape -gear                Re-scrape gear only")
	fmt.Println("  tavscrape -crossref            Re-tag gear from the current builds file")
	fmt.Println("  tavscrape -check-updates       List wiki pages edited since their last fetch")
}
