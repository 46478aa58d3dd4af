// Package mocks provides test doubles for the streetview client.
package mocks

import (
	"context"

	streetview "github.com/sells-group/campus-imagery-cli/pkg/streetview"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Metadata provides a mock function with given fields: ctx, location
func (_m *MockClient) Metadata(ctx context.Context, location string) (*streetview.Metadata, error) {
	ret := _m.Called(ctx, location)

	if len(ret) == 0 {
		panic("no return value specified for Metadata")
	}

	var r0 *streetview.Metadata
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*streetview.Metadata, error)); ok {
		return rf(ctx, location)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *streetview.Metadata); ok {
		r0 = rf(ctx, location)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*streetview.Metadata)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, location)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Image provides a mock function with given fields: ctx, location
func (_m *MockClient) Image(ctx context.Context, location string) (*streetview.Image, error) {
	ret := _m.Called(ctx, location)

	if len(ret) == 0 {
		panic("no return value specified for Image")
	}

	var r0 *streetview.Image
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*streetview.Image, error)); ok {
		return rf(ctx, location)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *streetview.Image); ok {
		r0 = rf(ctx, location)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*streetview.Image)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, location)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
