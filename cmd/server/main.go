package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "membuddy/internal/adapters/email"
	web "membuddy/internal/adapters/http"
	"membuddy/internal/adapters/http/perf"
	"membuddy/internal/adapters/storage"
	faqStore "membuddy/internal/adapters/storage/faq"
	feedbackStore "membuddy/internal/adapters/storage/feedback"
	memberStore "membuddy/internal/adapters/storage/member"
	paymentStore "membuddy/internal/adapters/storage/payment"
	"membuddy/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("MEMBUDDY_DB", "membuddy.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultCapacity)
	timedDB := storage.NewTimedDB(db, collector)

	// Member reads go through a TTL cache; every write path invalidates it.
	cacheTTL := memberStore.DefaultCacheTTL
	if v := os.Getenv("MEMBUDDY_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cacheTTL = time.Duration(secs) * time.Second
		}
	}
	members := memberStore.NewCachedStore(memberStore.NewSQLiteStore(timedDB), cacheTTL, time.Now)

	payments := paymentStore.NewSQLiteStore(timedDB)
	feedbacks := feedbackStore.NewSQLiteStore(timedDB)
	faqs := faqStore.NewSQLiteStore(timedDB)

	stores := &web.Stores{
		MemberStore:   members,
		PaymentStore:  payments,
		FeedbackStore: feedbacks,
		FAQStore:      faqs,
	}

	// Seed demo members, payments, and FAQ entries outside production
	if os.Getenv("MEMBUDDY_ENV") != "production" {
		seedDeps := orchestrators.SeedDemoDeps{
			MemberStore:  members,
			PaymentStore: payments,
			FAQStore:     faqs,
			Now:          time.Now,
		}
		if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo seed data loaded (dev mode)")
	}

	// Configure email sender
	resendKey := os.Getenv("MEMBUDDY_RESEND_KEY")
	emailFrom := envOrDefault("MEMBUDDY_RESEND_FROM", "Membuddy <noreply@membuddy.example>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom))
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		if os.Getenv("MEMBUDDY_ENV") == "production" {
			log.Println("WARNING: MEMBUDDY_RESEND_KEY is not set — receipt delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set MEMBUDDY_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + /api/perf)
	mux := web.NewMux(stores, collector)

	// Start server
	addr := envOrDefault("MEMBUDDY_ADDR", ":8080")
	log.Printf("Membuddy %s starting on %s (env=%s)", version, addr, envOrDefault("MEMBUDDY_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
