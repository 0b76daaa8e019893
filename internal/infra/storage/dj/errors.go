package dj

import "errors"

var (
	// ErrDJNotFound возвращается, когда запись ростера не найдена
	ErrDJNotFound = errors.New("dj.repository: dj not found")

	// ErrDuplicateName возвращается при попытке занять уже существующее имя
	ErrDuplicateName = errors.New("dj.repository: display name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dj.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dj.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dj.repository: failed to scan row")
)
