// Package mocks provides test doubles for the bot client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	bot "github.com/sells-group/directory-cli/pkg/bot"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Status provides a mock function with given fields: ctx
func (_m *MockClient) Status(ctx context.Context) (*bot.Status, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Status")
	}

	var r0 *bot.Status
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*bot.Status, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *bot.Status); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*bot.Status)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Progress provides a mock function with given fields: ctx
func (_m *MockClient) Progress(ctx context.Context) ([]bot.BusinessProgress, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Progress")
	}

	var r0 []bot.BusinessProgress
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]bot.BusinessProgress, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []bot.BusinessProgress); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]bot.BusinessProgress)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Summary provides a mock function with given fields: ctx
func (_m *MockClient) Summary(ctx context.Context) (*bot.Summary, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Summary")
	}

	var r0 *bot.Summary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*bot.Summary, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *bot.Summary); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*bot.Summary)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Logs provides a mock function with given fields: ctx, sinceID
func (_m *MockClient) Logs(ctx context.Context, sinceID string) ([]bot.LogEntry, error) {
	ret := _m.Called(ctx, sinceID)

	if len(ret) == 0 {
		panic("no return value specified for Logs")
	}

	var r0 []bot.LogEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]bot.LogEntry, error)); ok {
		return rf(ctx, sinceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []bot.LogEntry); ok {
		r0 = rf(ctx, sinceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]bot.LogEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sinceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
