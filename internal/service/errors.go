package service

import "errors"

var (
	// ErrValidationNoSerialNumber is returned by [PollService.Poll] when
	// the serial number is empty. The HTTP layer normally rejects such
	// requests before the service is reached.
	ErrValidationNoSerialNumber = errors.New("no serial number was given")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
