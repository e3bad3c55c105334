package feed

import (
	"time"

	"github.com/umputun/ainews/pkg/domain"
)

// URLs of the upstream feeds, fixed by design
var URLs = []string{
	"https://techcrunch.com/category/artificial-intelligence/feed/",
	"https://www.theverge.com/rss/artificial-intelligence/index.xml",
}

// DemoItems returns the fixed demo dataset shown when no live data is available.
// Publish times are relative to now, one day apart.
func DemoItems(now time.Time) []domain.NewsItem {
	day := 24 * time.Hour
	return []domain.NewsItem{
		{
			Title:     "OpenAI 发布具备增强推理能力的 GPT-5 模型（演示数据）",
			Link:      "https://openai.com",
			Published: now,
			Summary:   "这是一条演示数据，因无法连接实时 RSS 源而显示。OpenAI 宣布了其最新的语言模型，具备更强的逻辑推理能力...",
			Source:    "TechCrunch (演示)",
			Category:  domain.CategoryModelRelease,
		},
		{
			Title:     "Google DeepMind 攻克重大生物学难题（演示数据）",
			Link:      "https://deepmind.google",
			Published: now.Add(-day),
			Summary:   "DeepMind 的 AlphaFold 3 成功预测了复杂的生物分子结构，将加速药物研发进程...",
			Source:    "The Verge (演示)",
			Category:  domain.CategoryIndustry,
		},
		{
			Title:     "Anthropic 推出 Claude 3.5 Sonnet（演示数据）",
			Link:      "https://anthropic.com",
			Published: now.Add(-2 * day),
			Summary:   "新模型在编程和推理等多项基准测试中表现优异，超越了 GPT-4 的部分能力...",
			Source:    "TechCrunch (演示)",
			Category:  domain.CategoryModelRelease,
		},
		{
			Title:     "Meta 发布 Llama 4 开源模型（演示数据）",
			Link:      "https://ai.meta.com",
			Published: now.Add(-3 * day),
			Summary:   "Meta 继续推行开源策略，发布了拥有 4000 亿参数的 Llama 4，性能大幅提升...",
			Source:    "The Verge (演示)",
			Category:  domain.CategoryDevTools,
		},
	}
}
