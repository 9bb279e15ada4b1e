package service

import (
	"fmt"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/logger"
	"github.com/neofinance/neofin/pkg/news"
)

type NewsService struct{}

// NewNewsService creates a new news service
func NewNewsService() *NewsService {
	return &NewsService{}
}

// Fetch assembles the news feed: primary source first, supplemented from
// the fallback when the primary comes up short, fallback alone when the
// primary fails outright. A fallback failure after a usable primary fetch
// is not fatal.
func (s *NewsService) Fetch() ([]api.Article, error) {
	primary, err := api.GetNews()
	if err != nil {
		logger.Warn("Primary news source failed, trying fallback", "error", err)
		fallback, fbErr := api.GetNewsFallback()
		if fbErr != nil {
			logger.Error("Fallback news source failed", "error", fbErr)
			return nil, fmt.Errorf("could not load finance news")
		}
		return news.Merge(news.WithImages(fallback), nil, news.DefaultLimit), nil
	}

	usable := news.WithImages(primary)
	if len(usable) >= news.DefaultLimit {
		return usable[:news.DefaultLimit], nil
	}

	fallback, fbErr := api.GetNewsFallback()
	if fbErr != nil {
		logger.Warn("Failed to supplement from fallback", "error", fbErr)
		return usable, nil
	}

	return news.Merge(usable, news.WithImages(fallback), news.DefaultLimit), nil
}

// Show fetches and renders the news feed
func (s *NewsService) Show() error {
	articles, err := s.Fetch()
	if err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	if len(articles) == 0 {
		fmt.Println("No finance news right now.")
		return nil
	}

	formatter.PrintInfo("Latest Finance News")
	fmt.Printf("\n")
	for _, art := range articles {
		fmt.Printf("%s\n", formatter.Bold.Sprint(art.Title))
		if art.Description != "" {
			fmt.Printf("  %s\n", art.Description)
		}
		fmt.Printf("  %s | %s\n\n", art.Source, art.URL)
	}

	return nil
}
