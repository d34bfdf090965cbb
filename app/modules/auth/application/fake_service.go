package authservice

import "context"

// FakeService is a programmable stub of Service for handler tests.
type FakeService struct {
	AuthenticateFunc func(ctx context.Context, rawToken string) (int64, error)
}

func (f *FakeService) Authenticate(ctx context.Context, rawToken string) (int64, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, rawToken)
	}
	return 0, ErrInvalidToken
}

var _ Service = (*FakeService)(nil)
