package storage

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/shelfstats/pkg/storage Storage
