package testutil

import (
	"github.com/arthur-debert/pkgflag/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockCache is a testify mock of types.MetadataCache.
type MockCache struct {
	mock.Mock
}

var _ types.MetadataCache = (*MockCache)(nil)

func (m *MockCache) Describe(namespace string) (string, error) {
	args := m.Called(namespace)
	return args.String(0), args.Error(1)
}

func (m *MockCache) WhatIs(identifier, pkg, restrict string) []string {
	args := m.Called(identifier, pkg, restrict)
	return args.Get(0).([]string)
}

func (m *MockCache) GlobWhatIs(identifier, restrict string) []string {
	args := m.Called(identifier, restrict)
	return args.Get(0).([]string)
}
