package usecase

import (
	"context"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// GetURLsByUserID возвращает все ссылки пользователя, включая деактивированные
func (u *LinkUsecase) GetURLsByUserID(ctx context.Context, userID string) ([]model.LinkResponse, error) {
	links, err := u.repo.GetLinksByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("failed to get links by user ID",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, wrapError(err)
	}

	u.logger.Debug("user links loaded",
		zap.String("user_id", userID),
		zap.Int("count", len(links)),
	)

	return u.toLinkResponses(links), nil
}

// GetPublicURLs возвращает все активные ссылки
func (u *LinkUsecase) GetPublicURLs(ctx context.Context) ([]model.LinkResponse, error) {
	links, err := u.repo.GetActiveLinks(ctx)
	if err != nil {
		u.logger.Error("failed to get active links", zap.Error(err))
		return nil, wrapError(err)
	}

	return u.toLinkResponses(links), nil
}

func (u *LinkUsecase) toLinkResponses(links []model.Link) []model.LinkResponse {
	responses := make([]model.LinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, u.toLinkResponse(link))
	}
	return responses
}

func (u *LinkUsecase) toLinkResponse(link model.Link) model.LinkResponse {
	shortURL, err := u.buildShortURL(link.Code)
	if err != nil {
		shortURL = ""
	}

	return model.LinkResponse{
		ShortCode:   link.Code.String(),
		ShortURL:    shortURL,
		OriginalURL: link.OriginalURL.String(),
		Title:       link.Title,
		Description: link.Description,
		VisitCount:  link.VisitCount,
		IsActive:    link.Active,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}
