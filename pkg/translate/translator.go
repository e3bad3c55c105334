// Package translate translates news titles and summaries with a generative model.
// Successful translations are memoized by the exact (title, summary) pair.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

var (
	// ErrDisabled is returned when no model credential is configured
	ErrDisabled = errors.New("translation disabled")
	// ErrUpstream is returned when the model call itself fails
	ErrUpstream = errors.New("translation call failed")
	// ErrMalformed is returned when the model reply is not the expected json
	ErrMalformed = errors.New("malformed translation reply")
)

// DefaultLanguage is the target language of translations
const DefaultLanguage = "简体中文"

// Generator produces a text completion for a single prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is a translated title and summary pair
type Result struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Config defines translator behavior
type Config struct {
	Language  string  // target language, DefaultLanguage if empty
	CacheSize int     // max memoized pairs, 1000 if zero
	RateLimit float64 // max upstream calls per second, 0 for unlimited
}

type memoKey struct {
	title   string
	summary string
}

// Translator translates news items, memoizing successful results
type Translator struct {
	gen      Generator
	memo     *lru.Cache[memoKey, Result]
	limiter  *rate.Limiter
	language string
}

// New makes a translator. A nil generator makes a disabled translator returning ErrDisabled.
func New(gen Generator, cfg Config) (*Translator, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1000
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	memo, err := lru.New[memoKey, Result](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("make translation cache: %w", err)
	}

	res := &Translator{gen: gen, memo: memo, language: cfg.Language}
	if cfg.RateLimit > 0 {
		res.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return res, nil
}

// Enabled reports whether translation will be attempted
func (t *Translator) Enabled() bool {
	return t != nil && t.gen != nil
}

// Translate returns the translated pair. Errors are one of ErrDisabled, ErrUpstream or ErrMalformed,
// failed translations are not memoized.
func (t *Translator) Translate(ctx context.Context, title, summary string) (Result, error) {
	if !t.Enabled() {
		return Result{}, ErrDisabled
	}

	key := memoKey{title: title, summary: summary}
	if cached, ok := t.memo.Get(key); ok {
		return cached, nil
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("%w: rate limiter: %w", ErrUpstream, err)
		}
	}

	reply, err := t.gen.Generate(ctx, t.buildPrompt(title, summary))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	res, err := parseReply(reply)
	if err != nil {
		log.Printf("[WARN] can't parse translation reply %q: %v", reply, err)
		return Result{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	// keep originals for fields the model left empty
	if res.Title == "" {
		res.Title = title
	}
	if res.Summary == "" {
		res.Summary = summary
	}

	t.memo.Add(key, res)
	return res, nil
}

// CacheLen returns the number of memoized translations
func (t *Translator) CacheLen() int {
	return t.memo.Len()
}

// buildPrompt creates a translation prompt asking for a strict json reply
func (t *Translator) buildPrompt(title, summary string) string {
	var sb strings.Builder
	sb.WriteString("你是一个科技新闻翻译专家，请将以下 AI 科技新闻的标题和摘要翻译成专业、简洁的")
	sb.WriteString(t.language)
	sb.WriteString("，保持术语准确（如 LLM、Transformer 等不翻译或括号保留）。\n\n")
	sb.WriteString("Title: ")
	sb.WriteString(title)
	sb.WriteString("\nSummary: ")
	sb.WriteString(summary)
	sb.WriteString("\n\n请严格以 JSON 格式返回，不要包含任何 Markdown 格式（如 ```json），")
	sb.WriteString(`只返回纯 JSON 字符串，包含 "title" 和 "summary" 两个字段。`)
	return sb.String()
}

// fencedObject matches a json object inside a code fence, anywhere in the reply
var fencedObject = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// parseReply decodes the json reply. A json object wrapped in a code fence is extracted even with
// text around the fence, an unfenced reply must be the object itself.
func parseReply(reply string) (Result, error) {
	clean := strings.TrimSpace(reply)
	if m := fencedObject.FindStringSubmatch(clean); m != nil {
		clean = m[1]
	}
	if !strings.HasPrefix(clean, "{") {
		return Result{}, errors.New("reply is not a json object")
	}

	var res Result
	if err := json.Unmarshal([]byte(clean), &res); err != nil {
		return Result{}, fmt.Errorf("decode json: %w", err)
	}
	return res, nil
}
