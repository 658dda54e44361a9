package vcs_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// runnerMock is a testify mock for the CommandRunner
type runnerMock struct {
	mock.Mock
}

func (r *runnerMock) Run(ctx context.Context, args ...string) ([]byte, error) {
	callArgs := r.Called(ctx, args)
	var out []byte
	if callArgs.Get(0) != nil {
		out = callArgs.Get(0).([]byte)
	}
	return out, callArgs.Error(1)
}
