package logger

import (
	"errors"
)

var (
	// ErrServiceNameIsEmpty error if log config field servicename is empty.
	ErrServiceNameIsEmpty = errors.New("log config servicename can not be empty")

	// ErrAppNameIsEmpty error if log config field appname is empty.
	ErrAppNameIsEmpty = errors.New("log config appname can not be empty")
)
