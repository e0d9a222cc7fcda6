package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter paper, matching the generated documents' US-letter layout.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11.0
	printTimeout      = 60 * time.Second
)

// ChromeEngine prints HTML to PDF with headless Chrome.
type ChromeEngine struct {
	execPath string
}

// NewChromeEngine constructs a ChromeEngine. execPath may be empty to use
// the default browser discovery.
func NewChromeEngine(execPath string) *ChromeEngine {
	return &ChromeEngine{execPath: execPath}
}

// PrintHTML writes the page to a temp file and prints it via CDP.
func (e *ChromeEngine) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	printCtx, cancelPrint := context.WithTimeout(browserCtx, printTimeout)
	defer cancelPrint()

	tmpDir, err := os.MkdirTemp("", "tailor-render-")
	if err != nil {
		return nil, fmt.Errorf("render temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write render input: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(printCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}

var _ Engine = (*ChromeEngine)(nil)
