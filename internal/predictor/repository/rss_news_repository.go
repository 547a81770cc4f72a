package repository

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"golang-stock-trend/internal/entity"
	"golang-stock-trend/pkg/logger"

	"github.com/mmcdole/gofeed"
)

type rssNewsRepository struct {
	log    *logger.Logger
	parser *gofeed.Parser
}

// NewRSSNewsRepository creates a HeadlineRepository backed by the Google
// News RSS feed. It needs no credential.
func NewRSSNewsRepository(log *logger.Logger) HeadlineRepository {
	return &rssNewsRepository{
		log:    log,
		parser: gofeed.NewParser(),
	}
}

func (r *rssNewsRepository) GetHeadlines(ctx context.Context, query string, maxCount int) ([]string, error) {
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en", url.QueryEscape(query+" stock"))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("%w: %v", entity.ErrHeadlineSourceUnavailable, err)
	}

	// Most recent first
	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	headlines := make([]string, 0, maxCount)
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		headlines = append(headlines, item.Title)
		if len(headlines) >= maxCount {
			break
		}
	}

	r.log.DebugContext(ctx, "Fetched headlines from Google News RSS",
		logger.StringField("query", query), logger.IntField("count", len(headlines)))

	return headlines, nil
}
