package repository

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound dikembalikan lookup by id yang tidak menemukan baris.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate dikembalikan saat constraint unik (code/nip/nis) dilanggar.
	ErrDuplicate = errors.New("repository: duplicate value")
)

// translate memetakan error driver ke error sentinel repository.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicate
	}
	return err
}
