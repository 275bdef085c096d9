package usecase

import (
	"context"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// GetStats возвращает статистику по ссылкам пользователя, а при пустом userID по всем ссылкам
func (u *LinkUsecase) GetStats(ctx context.Context, userID string) (model.StatsResponse, error) {
	stats, err := u.repo.GetStats(ctx, userID)
	if err != nil {
		u.logger.Error("failed to get stats",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return model.StatsResponse{}, wrapError(err)
	}

	return model.StatsResponse{
		TotalLinks:  stats.TotalLinks,
		ActiveLinks: stats.ActiveLinks,
		TotalVisits: stats.TotalVisits,
		TopLinks:    u.toLinkResponses(stats.TopLinks),
	}, nil
}
