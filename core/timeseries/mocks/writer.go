package mocks

import (
	"context"

	"bas-manager/core/timeseries"

	"github.com/stretchr/testify/mock"
)

// Writer is a mock implementation of timeseries.Writer
type Writer struct {
	mock.Mock
}

func (m *Writer) WritePoints(ctx context.Context, points []timeseries.Point) error {
	args := m.Called(ctx, points)
	return args.Error(0)
}

func (m *Writer) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Writer) Close() {
	m.Called()
}
