package names

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store файловый справочник имен для автодополнения на клиенте
//
// Read-only зависимость: сервис никогда не пишет в справочник после
// инициализации. Если файла нет, он создается с дефолтным списком имен
type Store struct {
	mu    sync.RWMutex
	names []string
}

// NewStore загружает справочник имен из файла
// Отсутствующий файл создается с переданным дефолтным списком
func NewStore(path string, defaults []string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := seed(path, defaults); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	return &Store{names: names}, nil
}

// ListNames возвращает копию списка известных имен
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)
	return names, nil
}

// seed создает файл справочника с дефолтным списком имен
func seed(path string, defaults []string) error {
	if defaults == nil {
		defaults = []string{}
	}

	data, err := json.MarshalIndent(defaults, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSeed, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSeed, err)
	}

	return nil
}
