package client

import "errors"

var (
	ErrNilConfig   = errors.New("client config is nil")
	ErrNilServices = errors.New("client services are nil")
)
