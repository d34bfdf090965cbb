package scorehandlers

import (
	"context"

	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
)

// FakeService is a programmable stub of scoreservice.Service.
type FakeService struct {
	ListPinnedFunc func(ctx context.Context, req scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error)
	PinFunc        func(ctx context.Context, req scoreservice.PinRequest) error
	UnpinFunc      func(ctx context.Context, req scoreservice.PinRequest) error
}

func (f *FakeService) ListPinned(ctx context.Context, req scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error) {
	if f.ListPinnedFunc != nil {
		return f.ListPinnedFunc(ctx, req)
	}
	return nil, nil
}

func (f *FakeService) Pin(ctx context.Context, req scoreservice.PinRequest) error {
	if f.PinFunc != nil {
		return f.PinFunc(ctx, req)
	}
	return nil
}

func (f *FakeService) Unpin(ctx context.Context, req scoreservice.PinRequest) error {
	if f.UnpinFunc != nil {
		return f.UnpinFunc(ctx, req)
	}
	return nil
}

// FakeUserService is a programmable stub of userservice.Service.
type FakeUserService struct {
	ResolveUserFunc func(ctx context.Context, lookup userservice.UserLookup) (int64, error)
}

func (f *FakeUserService) ResolveUser(ctx context.Context, lookup userservice.UserLookup) (int64, error) {
	if f.ResolveUserFunc != nil {
		return f.ResolveUserFunc(ctx, lookup)
	}
	return 0, userservice.ErrUserNotFound
}

var (
	_ scoreservice.Service = (*FakeService)(nil)
	_ userservice.Service  = (*FakeUserService)(nil)
)
