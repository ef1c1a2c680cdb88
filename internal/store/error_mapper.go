package store

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"go-hrgen/internal/shared/apperror"
)

var errDuplicateRun = apperror.New("DATASET_ALREADY_LOADED", "a dataset with these identifiers is already loaded", http.StatusConflict)

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return errDuplicateRun
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return errDuplicateRun
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "failed to persist dataset", http.StatusInternalServerError)
}
