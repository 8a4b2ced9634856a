package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beichen-observer/internal/logger"
	"github.com/MKhiriev/beichen-observer/internal/mock"
)

func TestClientAuthService_LoginReplacesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(serverAdapter, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		serverAdapter.EXPECT().Logout(ctx).Return(nil),
		serverAdapter.EXPECT().Login(ctx).Return("token", nil),
	)

	assert.NoError(t, svc.Login(ctx))
}

func TestClientAuthService_LoginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(serverAdapter, logger.Nop())
	ctx := context.Background()
	rejected := errors.New("rejected")

	serverAdapter.EXPECT().Logout(ctx).Return(errors.New("store is read-only"))
	serverAdapter.EXPECT().Login(ctx).Return("", rejected)

	assert.ErrorIs(t, svc.Login(ctx), rejected)
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().Logout(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}
