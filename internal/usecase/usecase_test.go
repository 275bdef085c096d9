package usecase

import (
	"testing"

	"github.com/avc-dev/link-shortener/internal/config"
	"github.com/avc-dev/link-shortener/internal/mocks"
	"go.uber.org/zap/zaptest"
)

type testDeps struct {
	repo      *mocks.MockLinkRepository
	allocator *mocks.MockLinkAllocator
	resolver  *mocks.MockLinkResolver
}

func newTestUsecase(t *testing.T) (*LinkUsecase, testDeps) {
	t.Helper()

	deps := testDeps{
		repo:      mocks.NewMockLinkRepository(t),
		allocator: mocks.NewMockLinkAllocator(t),
		resolver:  mocks.NewMockLinkResolver(t),
	}

	uc := NewLinkUsecase(deps.repo, deps.allocator, deps.resolver, config.NewDefaultConfig(), zaptest.NewLogger(t))

	return uc, deps
}
