package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kokoro/pkg/config"
	"kokoro/pkg/filter"
	"kokoro/pkg/hotconfig"
	"kokoro/pkg/prompts"
)

func main() {
	// Load settings.yml
	settings, err := config.LoadSettings("settings.yml")
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Load .env for overrides
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if dir := os.Getenv("KOKORO_PROMPTS_DIR"); dir != "" {
		settings.PromptsDir = dir
	}
	if dir := os.Getenv("KOKORO_DATA_DIR"); dir != "" {
		settings.DataDir = dir
	}

	// Build the configuration library
	library, err := prompts.NewLibrary(settings.Paths())
	if err != nil {
		log.Fatalf("Failed to build config library: %v", err)
	}

	// First load. Keys that fail here stay retryable on access, so this is
	// only fatal when nothing at all could be loaded.
	failed := library.Store().ReloadAll()
	for key, loadErr := range failed {
		log.Printf("Initial load failed for %q: %v", key, loadErr)
	}
	if len(failed) == len(library.Store().Keys()) {
		log.Fatalf("No configuration could be loaded from %s and %s", settings.PromptsDir, settings.DataDir)
	}

	logSummary(library)

	// Optional OS-level change notifications; polling on access still works
	// without them.
	if settings.Watch.Enabled {
		notifier, err := hotconfig.NewNotifier(library.Store())
		if err != nil {
			log.Printf("File notifications unavailable, relying on polling: %v", err)
		} else {
			defer notifier.Close()
			log.Println("Watching configuration files for changes")
		}
	}

	contentFilter := filter.New(library, settings.Filter.Keywords...)
	contentFilter.SetReplacement(settings.Filter.Replacement)

	log.Println("Configuration core is running. Press CTRL-C to exit.")

	// SIGHUP forces a full reload, for operators who want an edit picked up
	// before anything touches the key.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for received := range sc {
		if received == syscall.SIGHUP {
			log.Println("SIGHUP received, reloading all configuration")
			for key, loadErr := range library.Store().ReloadAll() {
				log.Printf("Reload failed for %q: %v", key, loadErr)
			}
			logSummary(library)
			continue
		}
		break
	}

	log.Println("Shutting down")
}

func logSummary(library *prompts.Library) {
	if chars, err := library.Characters(); err == nil {
		log.Printf("Loaded %d characters", len(chars.ByID))
	}
	if groups, err := library.ResponseGroups(); err == nil {
		log.Printf("Loaded %d response groups", len(groups))
	}
	if words, err := library.SensitiveWords(); err == nil {
		log.Printf("Loaded %d sensitive words", words.Len())
	}
}
