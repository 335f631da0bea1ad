package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type Clock struct {
	mock.Mock
}

func NewClock(t interface {
	mock.TestingT
	Cleanup(func())
}) *Clock {
	m := &Clock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Clock) CurrentDay(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *Clock) Advance(ctx context.Context, day int) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type ImageStorage struct {
	mock.Mock
}

func NewImageStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageStorage {
	m := &ImageStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	return m.Called(ctx, key, contentType, body, size).Error(0)
}

type TextService struct {
	mock.Mock
}

func NewTextService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TextService {
	m := &TextService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TextService) Moderate(ctx context.Context, adText string) (bool, string, error) {
	args := m.Called(ctx, adText)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *TextService) Generate(ctx context.Context, productName, targetAction, targetAudience string) (string, error) {
	args := m.Called(ctx, productName, targetAction, targetAudience)
	return args.String(0), args.Error(1)
}
