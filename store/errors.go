package store

import (
	"errors"
	"fmt"

	"github.com/gocql/gocql"
)

// ErrNotInitialized : une opération est partie avant que la session Scylla ne
// soit établie. Fatal pour la requête, pas pour le process.
var ErrNotInitialized = errors.New("store: session ScyllaDB non initialisée")

// ValidationError couvre tout ce qui est détecté AVANT le moindre appel
// storage : limit hors bornes, curseur malformé, before+after simultanés.
// Jamais réessayé, renvoyé tel quel à l'appelant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// StorageUnavailableError : le niveau de consistance demandé n'a pas pu
// réunir assez de réplicas. Transitoire ; le store ne retente jamais lui-même.
type StorageUnavailableError struct {
	Level gocql.Consistency
	Err   error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable at consistency %s: %v", e.Level, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// wrapStorageError classe les erreurs gocql : réplicas insuffisants et
// timeouts de coordination deviennent StorageUnavailableError, le reste
// remonte inchangé.
func wrapStorageError(level gocql.Consistency, err error) error {
	if err == nil {
		return nil
	}

	var unavailable *gocql.RequestErrUnavailable
	var writeTimeout *gocql.RequestErrWriteTimeout
	var readTimeout *gocql.RequestErrReadTimeout
	switch {
	case errors.As(err, &unavailable),
		errors.As(err, &writeTimeout),
		errors.As(err, &readTimeout),
		errors.Is(err, gocql.ErrNoConnections):
		return &StorageUnavailableError{Level: level, Err: err}
	}
	return err
}
