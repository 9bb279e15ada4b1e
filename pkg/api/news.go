package api

import (
	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/logger"
)

// GetNews fetches the primary finance news feed
func GetNews() ([]Article, error) {
	return getArticles("/news/")
}

// GetNewsFallback fetches the fallback news feed
func GetNewsFallback() ([]Article, error) {
	return getArticles("/news/fallback/")
}

func getArticles(path string) ([]Article, error) {
	logger.Debug("Fetching news", "path", path)

	resp, err := client.GetClient().
		R().
		Get(path)

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var newsResp NewsResponse
	if err := json.Unmarshal(resp.Body(), &newsResp); err != nil {
		return nil, err
	}

	logger.Debug("News fetched", "path", path, "count", len(newsResp.Articles))
	return newsResp.Articles, nil
}
