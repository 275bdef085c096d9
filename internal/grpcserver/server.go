package grpcserver

import (
	"context"
	"errors"
	"net"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/service"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// UserTokenMetadataKey ключ метаданных с тем же JWT, что и в куке user_token
const UserTokenMetadataKey = "user-token"

// LinkUsecase сценарии, доступные через gRPC
type LinkUsecase interface {
	CreateShortURLFromString(ctx context.Context, urlString string, userID string) (string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetStats(ctx context.Context, userID string) (model.StatsResponse, error)
}

// Server реализация ShortenerServer поверх сценариев
type Server struct {
	usecase     LinkUsecase
	authService *service.AuthService
	logger      *zap.Logger
}

// New создает gRPC сервис. authService может быть nil, тогда все вызовы анонимны
func New(usecase LinkUsecase, authService *service.AuthService, logger *zap.Logger) *Server {
	return &Server{
		usecase:     usecase,
		authService: authService,
		logger:      logger,
	}
}

// NewGRPCServer создает grpc.Server с логирующим интерсептором и зарегистрированным сервисом
func NewGRPCServer(srv *Server, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(logger)))
	s.RegisterService(&ServiceDesc, srv)
	return s
}

// Serve обслуживает соединения на lis до остановки сервера
func Serve(s *grpc.Server, lis net.Listener) error {
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) Shorten(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	shortURL, err := s.usecase.CreateShortURLFromString(ctx, in.GetValue(), s.userID(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(shortURL), nil
}

func (s *Server) Resolve(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	originalURL, err := s.usecase.GetOriginalURL(ctx, in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(originalURL), nil
}

// Stats возвращает статистику вызывающего пользователя, для анонимного вызова по всем ссылкам
func (s *Server) Stats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats, err := s.usecase.GetStats(ctx, s.userID(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	topLinks := make([]any, 0, len(stats.TopLinks))
	for _, link := range stats.TopLinks {
		topLinks = append(topLinks, map[string]any{
			"short_code":   link.ShortCode,
			"short_url":    link.ShortURL,
			"original_url": link.OriginalURL,
			"visit_count":  link.VisitCount,
		})
	}

	result, err := structpb.NewStruct(map[string]any{
		"total_links":  stats.TotalLinks,
		"active_links": stats.ActiveLinks,
		"total_visits": stats.TotalVisits,
		"top_links":    topLinks,
	})
	if err != nil {
		s.logger.Error("failed to build stats struct", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to encode stats")
	}

	return result, nil
}

// userID берёт владельца из метаданных; невалидный токен означает анонимный вызов
func (s *Server) userID(ctx context.Context) string {
	if s.authService == nil {
		return ""
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	tokens := md.Get(UserTokenMetadataKey)
	if len(tokens) == 0 {
		return ""
	}

	userID, err := s.authService.ValidateJWT(tokens[0])
	if err != nil {
		s.logger.Debug("invalid user token in metadata", zap.Error(err))
		return ""
	}

	return userID
}

// toStatus переводит ошибку сценария в gRPC статус
func toStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrTitleTooLong),
		errors.Is(err, usecase.ErrDescriptionTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrURLNotFound):
		return status.Error(codes.NotFound, "link not found")
	case errors.Is(err, usecase.ErrCapacityExhausted):
		return status.Error(codes.ResourceExhausted, "no free short code available")
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
