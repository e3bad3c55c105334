package news

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/umputun/ainews/pkg/domain"
	"github.com/umputun/ainews/pkg/translate"
)

// translateItems translates items in fixed-size batches. Items within a batch are translated
// concurrently, batches run one after another with a fixed pause in between, if configured.
// The returned slice has the same order as the input.
func (s *Service) translateItems(ctx context.Context, items []domain.NewsItem) []domain.NewsItem {
	res := make([]domain.NewsItem, len(items))
	copy(res, items)
	if len(res) == 0 || !s.translator.Enabled() {
		return res
	}

	for start := 0; start < len(res); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(res))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res[i] = s.translateItem(ctx, res[i])
			}()
		}
		wg.Wait()

		if end < len(res) && s.cfg.BatchDelay > 0 {
			if err := s.sleep(ctx, s.cfg.BatchDelay); err != nil {
				log.Printf("[WARN] translation interrupted after %d items: %v", end, err)
				return res
			}
		}
	}
	return res
}

// translateItem returns a copy of item with translated text, or the item unchanged on failure
func (s *Service) translateItem(ctx context.Context, item domain.NewsItem) (res domain.NewsItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] translation panic for %q: %v", item.Title, r)
			item.Translated = false
			res = item
		}
	}()

	tr, err := s.translator.Translate(ctx, item.Title, item.Summary)
	if err != nil {
		if !errors.Is(err, translate.ErrDisabled) {
			log.Printf("[WARN] can't translate %q: %v", item.Title, err)
		}
		item.Translated = false
		return item
	}
	item.Title, item.Summary, item.Translated = tr.Title, tr.Summary, true
	return item
}

// sleepCtx pauses for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
