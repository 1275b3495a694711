package services

import (
	"context"
	"strings"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type ArticleService struct {
	repo domain.ArticleRepository
}

func NewArticleService(repo domain.ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
	}
}

func (s *ArticleService) Search(ctx context.Context, query string) ([]domain.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterArticles(articles, strings.TrimSpace(query)), nil
}
