package server

import (
	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
)

func isNotFound(err error) bool {
	return errors.IsNotFound(err) || repository.IsRecordNotFound(err)
}
