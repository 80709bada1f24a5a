package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"membuddy/internal/adapters/email"
	web "membuddy/internal/adapters/http"
	"membuddy/internal/adapters/http/middleware"
	"membuddy/internal/adapters/http/perf"
	"membuddy/internal/adapters/storage"
	faqStore "membuddy/internal/adapters/storage/faq"
	feedbackStore "membuddy/internal/adapters/storage/feedback"
	memberStore "membuddy/internal/adapters/storage/member"
	paymentStore "membuddy/internal/adapters/storage/payment"
	"membuddy/internal/application/orchestrators"

	_ "modernc.org/sqlite"
)

// testApp wires a real sqlite database, the HTTP mux and a headless
// browser for end-to-end console tests.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
}

// newTestApp boots the full stack on a random local port and seeds the
// demo dataset. Cleanup is registered on t.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "membuddy_test.db")
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init database: %v", err)
	}

	stores := &web.Stores{
		MemberStore:   memberStore.NewSQLiteStore(db),
		PaymentStore:  paymentStore.NewSQLiteStore(db),
		FeedbackStore: feedbackStore.NewSQLiteStore(db),
		FAQStore:      faqStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	if err := orchestrators.ExecuteSeedDemo(ctx, orchestrators.SeedDemoDeps{
		MemberStore:  stores.MemberStore,
		PaymentStore: stores.PaymentStore,
		FAQStore:     stores.FAQStore,
		Now:          time.Now,
	}); err != nil {
		t.Fatalf("seed demo data: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)

	// The CSRF middleware rejects posts from origins it does not know
	// about, so register the ephemeral test port before building the mux.
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("localhost:%d", port),
		fmt.Sprintf("127.0.0.1:%d", port),
	)

	web.SetEmailSender(email.NewNoopSender())
	web.RateLimitPerSecond = 1000
	mux := web.NewMux(stores, perf.NewCollector(perf.DefaultCapacity))

	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "test server: %v\n", err)
		}
	}()

	// Wait for the server to accept requests.
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(baseURL + "/")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not become ready: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Skipf("chromium not available: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
	}
	t.Cleanup(func() {
		app.Browser.Close()
		app.PW.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.Server.Shutdown(shutdownCtx)
		app.DB.Close()
	})
	return app
}

// newPage opens a fresh browser page pointed at the console.
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	if _, err := page.Goto(a.BaseURL + "/"); err != nil {
		t.Fatalf("goto console: %v", err)
	}
	return page
}
