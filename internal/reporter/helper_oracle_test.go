package reporter_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// oracleMock is a testify mock for vcs.Oracle
type oracleMock struct {
	mock.Mock
}

func (o *oracleMock) IsWorkingTree(ctx context.Context) (bool, error) {
	args := o.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (o *oracleMock) CommitCount(ctx context.Context) (string, error) {
	args := o.Called(ctx)
	return args.String(0), args.Error(1)
}

func (o *oracleMock) ShortHash(ctx context.Context) (string, error) {
	args := o.Called(ctx)
	return args.String(0), args.Error(1)
}

// newWorkingTreeOracle returns a mock answering every query successfully.
func newWorkingTreeOracle(count, hash string) *oracleMock {
	m := new(oracleMock)
	m.On("IsWorkingTree", mock.Anything).Return(true, nil)
	m.On("CommitCount", mock.Anything).Return(count, nil)
	m.On("ShortHash", mock.Anything).Return(hash, nil)
	return m
}
