package directory

import (
	"context"
	"errors"
	"fmt"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("directory service: internal error")

// Service read-only сервис справочника имен для автодополнения
type Service struct {
	namesRepo NamesRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(namesRepo NamesRepository, logger Logger) *Service {
	return &Service{
		namesRepo: namesRepo,
		logger:    logger,
	}
}

// ListNames возвращает список известных имен
func (s *Service) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.namesRepo.ListNames(ctx)
	if err != nil {
		s.logger.Error("ListNames: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListNames - repository error: %v", ErrInternal, err)
	}

	return names, nil
}
