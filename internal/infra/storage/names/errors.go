package names

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения файла справочника имен
	ErrLoad = errors.New("names.storage: failed to load directory file")

	// ErrSeed возвращается при ошибке создания файла справочника с дефолтными именами
	ErrSeed = errors.New("names.storage: failed to seed directory file")
)
