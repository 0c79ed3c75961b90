package wardneed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ImportFromURL populates ward_needs from a published needs-assessment site.
// The index page links one page per sector (`a.sector-link`, link text is
// the sector name); each sector page carries a `table.needs` whose rows are
// ward | county | score. Sector pages are fetched concurrently and inserted
// per sector; the combined rows are returned.
func (s *Service) ImportFromURL(ctx context.Context, indexURL string) ([]*domain.WardNeed, error) {
	doc, base, err := fetchDocument(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index page: %w", err)
	}

	type sectorLink struct {
		sector string
		url    string
	}

	var links []sectorLink
	doc.Find("a.sector-link").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		sector := strings.TrimSpace(a.Text())
		if sector == "" {
			return
		}
		links = append(links, sectorLink{sector: sector, url: resolveURL(base, href)})
	})
	if len(links) == 0 {
		return nil, fmt.Errorf("no sector links on %s", indexURL)
	}

	imported := make([]*domain.WardNeed, 0, 64)
	importedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)

	for _, link := range links {
		link := link
		eg.Go(func() error {
			needs, err := s.importSector(egCtx, link.sector, link.url, base.Host)
			if err != nil {
				return fmt.Errorf("sector %s: %w", link.sector, err)
			}

			if err := s.store.InsertWardNeeds(egCtx, needs); err != nil {
				return fmt.Errorf("insert sector %s: %w", link.sector, err)
			}
			logger.Infof(egCtx, "imported %d ward needs for sector %s", len(needs), link.sector)

			importedMx.Lock()
			defer importedMx.Unlock()
			imported = append(imported, needs...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return imported, nil
}

func (s *Service) importSector(ctx context.Context, sector, pageURL, sourceHost string) ([]*domain.WardNeed, error) {
	doc, _, err := fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var needs []*domain.WardNeed
	doc.Find("table.needs tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return true
		}

		score, parseErr := parseScore(cells.Eq(2).Text())
		if parseErr != nil {
			err = fmt.Errorf("parse score for ward %q: %w", cells.Eq(0).Text(), parseErr)
			return false
		}

		source := sourceHost
		updated := now
		needs = append(needs, &domain.WardNeed{
			Ward:        strings.TrimSpace(cells.Eq(0).Text()),
			County:      strings.TrimSpace(cells.Eq(1).Text()),
			Sector:      sector,
			Score:       score,
			DataSource:  &source,
			LastUpdated: &updated,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return needs, nil
}

// parseScore accepts "90", "90.5" and the comma-decimal "90,5" that some
// published tables use, rounding to two places.
func parseScore(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	return d.Round(2).InexactFloat64(), nil
}

func fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, *url.URL, error) {
	var resp *http.Response
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = http.DefaultClient.Do(req)
			if httpErr != nil {
				return httpErr
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	return doc, resp.Request.URL, nil
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
