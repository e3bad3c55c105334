// Package news aggregates feed items, translates the newest ones and builds the endpoint response.
// Failures never escape this package: feeds that fail contribute nothing, translations that fail
// keep the original text, and a collection with no data at all falls back to the demo dataset.
package news

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/ainews/pkg/domain"
	"github.com/umputun/ainews/pkg/feed"
	"github.com/umputun/ainews/pkg/translate"
)

//go:generate moq -out mocks/reader.go -pkg mocks -skip-ensure -fmt goimports . FeedReader
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator

// LastUpdatedLayout is the format of the lastUpdated response field
const LastUpdatedLayout = "2006/01/02 15:04:05"

// FeedReader fetches and parses a single feed
type FeedReader interface {
	Read(ctx context.Context, feedURL string) ([]domain.NewsItem, error)
}

// Translator translates a title and summary pair
type Translator interface {
	Enabled() bool
	Translate(ctx context.Context, title, summary string) (translate.Result, error)
}

// recommended aggregation settings, the config layer defaults to the same values
const (
	DefaultTop        = 20
	DefaultBatchSize  = 3
	DefaultBatchDelay = time.Second
)

// Config holds aggregation settings. Zero Top and BatchDelay are honoured as is.
type Config struct {
	FeedURLs   []string      // feeds to read, TechCrunch AI and The Verge AI if empty
	Top        int           // newest items to translate, 0 disables translation
	BatchSize  int           // items translated concurrently, DefaultBatchSize if not positive
	BatchDelay time.Duration // pause between batches, 0 for no pause
	CacheTTL   time.Duration // how long a live response is reused, 0 disables caching
	MockTTL    time.Duration // how long a demo response is reused, 0 disables caching
}

// Service collects news from feeds
type Service struct {
	reader     FeedReader
	translator Translator
	cfg        Config
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error

	flight  singleflight.Group
	mu      sync.Mutex
	cached  *domain.Response
	expires time.Time
}

// NewService makes a news service
func NewService(reader FeedReader, translator Translator, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if len(cfg.FeedURLs) == 0 {
		cfg.FeedURLs = feed.URLs
	}
	return &Service{reader: reader, translator: translator, cfg: cfg, now: time.Now, sleep: sleepCtx}
}

// News returns the current response, reusing a cached one while it is fresh.
// Concurrent callers with a stale cache share a single collection.
func (s *Service) News(ctx context.Context) domain.Response {
	if resp, ok := s.fromCache(); ok {
		return resp
	}

	// collection is detached from the caller so one cancelled request doesn't break the shared result
	v, _, _ := s.flight.Do("news", func() (interface{}, error) {
		if resp, ok := s.fromCache(); ok {
			return resp, nil
		}
		resp := s.Collect(context.WithoutCancel(ctx))
		s.toCache(resp)
		return resp, nil
	})
	return cloneResponse(v.(domain.Response))
}

// Collect fetches all feeds, sorts and translates items. It never fails:
// no data or an unexpected panic results in the demo response.
func (s *Service) Collect(ctx context.Context) (resp domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] news collection panic: %v", r)
			resp = s.demoResponse()
		}
	}()

	items := s.fetchAll(ctx)
	if len(items) == 0 {
		log.Printf("[WARN] no news items fetched, using demo data")
		return s.demoResponse()
	}

	sortByDate(items)

	top := min(max(s.cfg.Top, 0), len(items))
	translated := s.translateItems(ctx, items[:top])
	copy(items, translated)

	log.Printf("[INFO] collected %d items, %d translation candidates", len(items), top)
	return domain.Response{
		Success:       true,
		Data:          items,
		IsMock:        false,
		LastUpdated:   s.now().Format(LastUpdatedLayout),
		GeminiEnabled: s.translator.Enabled(),
	}
}

// fetchAll reads all feeds concurrently, a failed feed contributes no items
func (s *Service) fetchAll(ctx context.Context) []domain.NewsItem {
	results := make([][]domain.NewsItem, len(s.cfg.FeedURLs))

	var g errgroup.Group
	for i, url := range s.cfg.FeedURLs {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[WARN] feed %s reader panic: %v", url, r)
				}
			}()
			items, err := s.reader.Read(ctx, url)
			if err != nil {
				log.Printf("[WARN] failed to fetch feed %s: %v", url, err)
				return nil
			}
			log.Printf("[DEBUG] fetched %d items from %s", len(items), url)
			results[i] = items
			return nil
		})
	}
	_ = g.Wait() // per-feed errors are already handled

	var all []domain.NewsItem
	for _, items := range results {
		all = append(all, items...)
	}
	return all
}

func (s *Service) demoResponse() domain.Response {
	now := s.now()
	return domain.Response{
		Success:       true,
		Data:          feed.DemoItems(now),
		IsMock:        true,
		LastUpdated:   now.Format(LastUpdatedLayout),
		GeminiEnabled: s.translator.Enabled(),
	}
}

// sortByDate orders items newest first. Zero dates compare as the oldest possible time,
// equal dates keep their merge order.
func sortByDate(items []domain.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
}

func (s *Service) fromCache() (domain.Response, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || !s.now().Before(s.expires) {
		return domain.Response{}, false
	}
	return cloneResponse(*s.cached), true
}

func (s *Service) toCache(resp domain.Response) {
	ttl := s.cfg.CacheTTL
	if resp.IsMock {
		ttl = s.cfg.MockTTL
	}
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cached := cloneResponse(resp)
	s.cached = &cached
	s.expires = s.now().Add(ttl)
}

// cloneResponse copies the item slice, callers get their own data and can't alter the cached response
func cloneResponse(resp domain.Response) domain.Response {
	resp.Data = slices.Clone(resp.Data)
	return resp
}

func (s *Service) String() string {
	return fmt.Sprintf("news service: %d feeds, top %d, batch %d, delay %v",
		len(s.cfg.FeedURLs), s.cfg.Top, s.cfg.BatchSize, s.cfg.BatchDelay)
}
