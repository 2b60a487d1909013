package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pw "github.com/playwright-community/playwright-go"

	"github.com/edocta/consulta-vehicular/config"
)

// Pauses between portal steps. The portal runs client-side scripts after
// most interactions and needs a moment to settle.
const (
	waitShort  = 300 * time.Millisecond
	waitMedium = 800 * time.Millisecond
	waitLong   = 1100 * time.Millisecond
	waitXLong  = 1800 * time.Millisecond
	waitXXLong = 2000 * time.Millisecond
)

const (
	termsTimeout   = 20 * time.Second
	resultsTimeout = 10 * time.Second

	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var launchArgs = []string{
	"--disable-gpu",
	"--disable-dev-shm-usage",
	"--disable-setuid-sandbox",
	"--no-sandbox",
	"--disable-accelerated-2d-canvas",
	"--disable-web-security",
	"--disable-features=site-per-process",
}

var resultMarkers = []string{"Marca:", "Modelo:", "TOTAL", "SUBTOTAL"}

// PortalClient drives the ICVNL statement portal with a headless Chromium
type PortalClient struct {
	cfg *config.Config
}

// NewPortalClient creates a new portal client
func NewPortalClient(cfg *config.Config) *PortalClient {
	slog.Info("portal client initialized",
		"url", cfg.PortalURL,
		"headless", cfg.Headless,
		"proxy", cfg.ProxyLabel(),
	)
	return &PortalClient{cfg: cfg}
}

// FetchStatementText walks the portal form for plate and returns the visible
// text of the statement page. A fresh browser is launched for every call and
// always torn down before returning.
func (c *PortalClient) FetchStatementText(ctx context.Context, plate string) (string, error) {
	pwInstance, err := pw.Run()
	if err != nil {
		return "", fmt.Errorf("failed to start playwright: %w", err)
	}
	defer func() {
		if err := pwInstance.Stop(); err != nil {
			slog.Warn("failed to stop playwright", "error", err)
		}
	}()

	browser, err := pwInstance.Chromium.Launch(c.launchOptions())
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	browserCtx, err := browser.NewContext(c.contextOptions())
	if err != nil {
		return "", fmt.Errorf("failed to create browser context: %w", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return "", fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultNavigationTimeout(millis(c.cfg.NavigationTimeout))
	page.SetDefaultTimeout(millis(c.cfg.ElementTimeout))

	return c.walk(ctx, page, plate)
}

func (c *PortalClient) walk(ctx context.Context, page pw.Page, plate string) (string, error) {
	log := slog.With("placa", plate)

	log.Info("navigating to portal", "url", c.cfg.PortalURL)
	if _, err := page.Goto(c.cfg.PortalURL, pw.PageGotoOptions{
		WaitUntil: pw.WaitUntilStateNetworkidle,
		Timeout:   pw.Float(millis(c.cfg.NavigationTimeout)),
	}); err != nil {
		return "", fmt.Errorf("failed to navigate to portal: %w", err)
	}
	if err := pause(ctx, waitMedium); err != nil {
		return "", err
	}

	terms, err := visible(
		page.GetByRole(pw.AriaRole("checkbox"), pw.PageGetByRoleOptions{Name: "Acepto bajo protesta de decir"}),
		page.Locator(`input[type="checkbox"]`),
		termsTimeout,
	)
	if err != nil {
		return "", fmt.Errorf("terms checkbox not found: %w", err)
	}
	if err := terms.Check(); err != nil {
		return "", fmt.Errorf("failed to accept terms: %w", err)
	}
	log.Debug("terms accepted")
	if err := pause(ctx, waitShort); err != nil {
		return "", err
	}

	plateField, err := visible(
		page.GetByRole(pw.AriaRole("textbox"), pw.PageGetByRoleOptions{Name: "Placa"}),
		page.Locator(`[placeholder*="Placa"]`),
		c.cfg.ElementTimeout,
	)
	if err != nil {
		return "", fmt.Errorf("plate field not found: %w", err)
	}
	if err := fill(plateField, plate); err != nil {
		return "", fmt.Errorf("failed to enter plate: %w", err)
	}
	log.Debug("plate entered")
	if err := pause(ctx, waitShort); err != nil {
		return "", err
	}

	// The form only enables its buttons once this container receives a click.
	activator := page.Locator("div:nth-child(4)").First()
	if err := activator.WaitFor(waitVisible(c.cfg.ElementTimeout)); err != nil {
		log.Warn("form activator not found, continuing", "error", err)
	} else if err := activator.Click(); err != nil {
		log.Warn("form activator click failed, continuing", "error", err)
	}
	if err := pause(ctx, waitLong); err != nil {
		return "", err
	}

	if err := c.clickButton(page, "Consultar"); err != nil {
		return "", err
	}
	log.Debug("query submitted")
	if err := pause(ctx, waitXLong); err != nil {
		return "", err
	}
	if err := pause(ctx, waitLong); err != nil {
		return "", err
	}

	emailField, err := visible(
		page.GetByRole(pw.AriaRole("textbox"), pw.PageGetByRoleOptions{Name: "Email"}),
		page.Locator(`[placeholder*="Email"]`),
		c.cfg.ElementTimeout,
	)
	if err != nil {
		return "", fmt.Errorf("email field not found: %w", err)
	}
	if err := fill(emailField, c.cfg.Email); err != nil {
		return "", fmt.Errorf("failed to enter email: %w", err)
	}
	log.Debug("email entered")
	if err := pause(ctx, waitShort); err != nil {
		return "", err
	}

	if err := c.clickButton(page, "Ver estado de cuenta"); err != nil {
		return "", err
	}
	log.Info("loading statement")
	if err := pause(ctx, waitXXLong); err != nil {
		return "", err
	}

	body := page.Locator("body")
	if err := body.WaitFor(waitVisible(resultsTimeout)); err != nil {
		log.Warn("statement body not visible, extracting anyway", "error", err)
	}

	text, err := body.TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read statement text: %w", err)
	}

	if hasResultMarkers(text) {
		log.Info("statement detected", "chars", len(text))
	} else {
		log.Warn("no statement markers on page, continuing", "chars", len(text))
	}

	return text, nil
}

func (c *PortalClient) clickButton(page pw.Page, name string) error {
	button, err := visible(
		page.GetByRole(pw.AriaRole("button"), pw.PageGetByRoleOptions{Name: name}),
		page.Locator(fmt.Sprintf(`button:has-text(%q)`, name)),
		c.cfg.ElementTimeout,
	)
	if err != nil {
		return fmt.Errorf("button %q not found: %w", name, err)
	}
	if err := button.Click(); err != nil {
		return fmt.Errorf("failed to click %q: %w", name, err)
	}
	return nil
}

func (c *PortalClient) launchOptions() pw.BrowserTypeLaunchOptions {
	opts := pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(c.cfg.Headless),
		Args:     launchArgs,
		Proxy:    c.proxy(),
	}
	if c.cfg.BrowserPath != "" {
		opts.ExecutablePath = pw.String(c.cfg.BrowserPath)
	}
	return opts
}

func (c *PortalClient) contextOptions() pw.BrowserNewContextOptions {
	return pw.BrowserNewContextOptions{
		Viewport:          &pw.Size{Width: 1920, Height: 1080},
		UserAgent:         pw.String(desktopUserAgent),
		IgnoreHttpsErrors: pw.Bool(true),
		Proxy:             c.proxy(),
	}
}

func (c *PortalClient) proxy() *pw.Proxy {
	if c.cfg.ProxyServer == "" {
		return nil
	}
	p := &pw.Proxy{Server: c.cfg.ProxyServer}
	if c.cfg.ProxyUsername != "" {
		p.Username = pw.String(c.cfg.ProxyUsername)
		p.Password = pw.String(c.cfg.ProxyPassword)
	}
	return p
}

// visible waits for primary, then for the first match of fallback.
func visible(primary, fallback pw.Locator, timeout time.Duration) (pw.Locator, error) {
	if err := primary.WaitFor(waitVisible(timeout)); err == nil {
		return primary, nil
	}
	alt := fallback.First()
	if err := alt.WaitFor(waitVisible(timeout)); err != nil {
		return nil, err
	}
	return alt, nil
}

func fill(field pw.Locator, value string) error {
	if err := field.Click(); err != nil {
		return err
	}
	return field.Fill(value)
}

func waitVisible(timeout time.Duration) pw.LocatorWaitForOptions {
	return pw.LocatorWaitForOptions{
		State:   pw.WaitForSelectorStateVisible,
		Timeout: pw.Float(millis(timeout)),
	}
}

func hasResultMarkers(text string) bool {
	for _, marker := range resultMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// pause sleeps for d unless ctx is cancelled first.
func pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
