package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/atharvix/Browser-Vigilant/pkg/cache"
	"github.com/atharvix/Browser-Vigilant/pkg/config"
	"github.com/atharvix/Browser-Vigilant/pkg/features"
	"github.com/atharvix/Browser-Vigilant/pkg/httputil"
	"github.com/atharvix/Browser-Vigilant/pkg/telemetry"
)

const Version = "0.1.0"

// Extractor bundles the serving-layer pieces around the pure engine.
// The cache is optional and the gateway degrades gracefully without it.
type Extractor struct {
	config *config.Config
	cache  *cache.VectorCache // nil when Redis is absent or disabled
	sem    *httputil.Semaphore
}

// ExtractResult is the HTTP response for a single extraction.
type ExtractResult struct {
	RequestID string    `json:"request_id"`
	URL       string    `json:"url"`
	Features  []float32 `json:"features"`
	Cached    bool      `json:"cached"`
	LatencyMs float64   `json:"latency_ms"`
}

func NewExtractor(cfg *config.Config) *Extractor {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	e := &Extractor{
		config: cfg,
		sem:    httputil.NewSemaphore(cfg.MaxConcurrent),
	}

	// Optional Redis cache - serving-layer only, never required.
	if cfg.EnableCache {
		vc, err := cache.New(cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Printf("○ Vector cache disabled (init failed: %v)", err)
		} else {
			e.cache = vc
			log.Printf("✓ Vector cache enabled (redis %s)", cfg.RedisAddr)
		}
	} else {
		log.Println("○ Vector cache disabled")
	}

	return e
}

// Extract computes the feature vector for url, consulting the cache first.
func (e *Extractor) Extract(ctx context.Context, url string) *ExtractResult {
	start := time.Now()
	result := &ExtractResult{
		RequestID: uuid.NewString(),
		URL:       url,
	}

	if e.cache != nil {
		if vec, found, err := e.cache.Get(ctx, url); err == nil && found {
			result.Features = vec
			result.Cached = true
			result.LatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
			return result
		}
	}

	result.Features = features.ExtractFeatures(url)
	if e.cache != nil {
		if err := e.cache.Set(ctx, url, result.Features); err != nil {
			log.Printf("[WARN] cache set failed: %v", err)
		}
	}

	result.LatencyMs = float64(time.Since(start).Microseconds()) / 1000.0
	telemetry.TrackScan("url", result.LatencyMs)
	return result
}

// ExtractBatch runs bounded-concurrency extraction, preserving input order.
func (e *Extractor) ExtractBatch(ctx context.Context, urls []string) []*ExtractResult {
	results := make([]*ExtractResult, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		if err := e.sem.Acquire(ctx); err != nil {
			// Context gone: fill the remainder synchronously so callers
			// still get one vector per input.
			for j := i; j < len(urls); j++ {
				results[j] = e.Extract(context.Background(), urls[j])
			}
			break
		}
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			defer e.sem.Release()
			results[idx] = e.Extract(ctx, u)
		}(i, url)
	}

	wg.Wait()
	return results
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "serve":
		cfg := config.NewDefaultConfig()
		if len(os.Args) > 2 {
			cfg.Port = os.Args[2]
		}
		cfg.MustValidate()
		runHTTPServer(cfg)
	case "extract":
		if len(os.Args) < 3 {
			fmt.Println("Usage: vigilant extract <url>")
			os.Exit(1)
		}
		runCLIExtract(os.Args[2])
	case "form-action":
		if len(os.Args) < 4 {
			fmt.Println("Usage: vigilant form-action <action-url> <page-host>")
			os.Exit(1)
		}
		fmt.Printf("%.1f\n", features.AnalyzeFormAction(os.Args[2], os.Args[3]))
	case "filename":
		if len(os.Args) < 3 {
			fmt.Println("Usage: vigilant filename <name>")
			os.Exit(1)
		}
		fmt.Printf("%.2f\n", features.ScoreFilename(os.Args[2]))
	case "version":
		fmt.Printf("Browser Vigilant v%s\n", Version)
		fmt.Println("URL feature extraction engine")
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Browser Vigilant v%s - URL feature extraction engine\n\n", Version)
	fmt.Println("Usage:")
	fmt.Println("  vigilant serve [port]                  Start HTTP server (default: 3000)")
	fmt.Println("  vigilant extract <url>                 Print the 56-slot feature vector")
	fmt.Println("  vigilant form-action <url> <host>      Score a form action against a page host")
	fmt.Println("  vigilant filename <name>               Score a download filename")
	fmt.Println("  vigilant version                       Show version")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  vigilant extract \"https://paypa1.com/login\"")
	fmt.Println("  vigilant form-action \"https://evil.net/post\" bank.com")
	fmt.Println("  vigilant filename invoice.pdf.exe")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  VIGILANT_PORT            HTTP listen port")
	fmt.Println("  VIGILANT_ENABLE_CACHE    Cache vectors in Redis (true/false)")
	fmt.Println("  VIGILANT_REDIS_ADDR      Redis address (default: localhost:6379)")
	fmt.Println("  VIGILANT_CONFIG_DIR      Directory holding vigilant_tables.yaml")
}

// ============================================================================
// HTTP Server Mode
// ============================================================================

func runHTTPServer(cfg *config.Config) {
	extractor := NewExtractor(cfg)

	app := fiber.New(fiber.Config{
		AppName: "Browser Vigilant",
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": Version,
			"cache":   extractor.cache != nil,
			"batch":   extractor.sem.Stats(),
		})
	})

	// The slot-name schema, in contract order. Classifier hosts verify
	// against this at startup instead of trusting positional agreement.
	app.Get("/schema", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"size":  features.VectorSize,
			"slots": features.SlotNames(),
		})
	})

	app.Post("/extract", func(c fiber.Ctx) error {
		var req struct {
			URL string `json:"url"`
		}
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		if req.URL == "" {
			return c.Status(400).JSON(fiber.Map{"error": "url field is required"})
		}
		return c.JSON(extractor.Extract(c.Context(), req.URL))
	})

	app.Post("/extract/batch", func(c fiber.Ctx) error {
		var req struct {
			URLs []string `json:"urls"`
		}
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		if len(req.URLs) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "urls field is required"})
		}
		if len(req.URLs) > cfg.BatchLimit {
			return c.Status(413).JSON(fiber.Map{
				"error": fmt.Sprintf("batch exceeds limit of %d urls", cfg.BatchLimit),
			})
		}
		return c.JSON(fiber.Map{
			"results": extractor.ExtractBatch(c.Context(), req.URLs),
		})
	})

	app.Post("/form-action", func(c fiber.Ctx) error {
		var req struct {
			Action   string `json:"action"`
			PageHost string `json:"page_host"`
		}
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		score := features.AnalyzeFormAction(req.Action, req.PageHost)
		telemetry.TrackScan("form_action", 0)
		return c.JSON(fiber.Map{
			"request_id": uuid.NewString(),
			"score":      score,
		})
	})

	app.Post("/filename", func(c fiber.Ctx) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		if req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "name field is required"})
		}
		score := features.ScoreFilename(req.Name)
		telemetry.TrackScan("filename", 0)
		return c.JSON(fiber.Map{
			"request_id": uuid.NewString(),
			"score":      score,
		})
	})

	log.Printf("[STARTUP] Browser Vigilant v%s listening on :%s", Version, cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] server failed: %v", err)
	}
}

// ============================================================================
// CLI Mode
// ============================================================================

func runCLIExtract(url string) {
	vec := features.ExtractFeatures(url)
	var b strings.Builder
	for i, v := range vec {
		fmt.Fprintf(&b, "%-26s %g\n", features.SlotName(i), v)
	}
	fmt.Print(b.String())
}
