package usecase

import (
	"context"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// DeleteURLs принимает запрос на деактивацию ссылок пользователя и выполняет его в фоне.
// Чужие, неизвестные и уже неактивные коды молча пропускаются
func (u *LinkUsecase) DeleteURLs(codes []string, userID string) error {
	if len(codes) == 0 {
		return nil
	}

	modelCodes := make([]model.Code, len(codes))
	for i, code := range codes {
		modelCodes[i] = model.Code(code)
	}

	u.pending.Add(1)
	go func() {
		defer u.pending.Done()
		u.deleteURLsAsync(modelCodes, userID)
	}()

	return nil
}

// deleteURLsAsync отбирает коды пользователя пулом воркеров и деактивирует их одним батчем.
// Запрос уже завершён, поэтому используется собственный контекст с таймаутом
func (u *LinkUsecase) deleteURLsAsync(codes []model.Code, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
	defer cancel()

	validator := func(code model.Code) bool {
		return u.repo.IsOwnedBy(ctx, code, userID)
	}

	processor := func(validCodes []model.Code) {
		err := u.repo.DeactivateLinks(ctx, validCodes, userID)
		if err != nil {
			u.logger.Error("failed to deactivate links batch",
				zap.String("user_id", userID),
				zap.Int("requested", len(codes)),
				zap.Int("valid", len(validCodes)),
				zap.Error(err),
			)
			return
		}

		u.logger.Info("links deactivated",
			zap.String("user_id", userID),
			zap.Int("requested", len(codes)),
			zap.Int("valid", len(validCodes)),
		)
	}

	u.asyncProcessor.ProcessWithWorkers(codes, validator, processor)
}
