package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/league_admission/internal/apperror"
	userModel "github.com/festy23/league_admission/internal/user/model"
	"github.com/festy23/league_admission/internal/user/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Upsert(ctx context.Context, user *userModel.User) (*userModel.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*userModel.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_UpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("trims names", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zaptest.NewLogger(t).Sugar())
		expected := &userModel.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"}

		mockRepo.On("Upsert", ctx, expected).Return(expected, nil)

		resp, err := svc.UpsertProfile(ctx, 1, &userModel.UpsertProfileRequest{FirstName: "  Ada ", LastName: " Lovelace"})

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.DisplayName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank first name", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zaptest.NewLogger(t).Sugar())

		resp, err := svc.UpsertProfile(ctx, 1, &userModel.UpsertProfileRequest{FirstName: "   "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zaptest.NewLogger(t).Sugar())

		_, err := svc.UpsertProfile(ctx, 0, &userModel.UpsertProfileRequest{FirstName: "Ada"})

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zaptest.NewLogger(t).Sugar())
		mockRepo.On("GetByID", ctx, int64(2)).Return(&userModel.User{ID: 2, FirstName: "Grace"}, nil)

		resp, err := svc.GetProfile(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "Grace", resp.DisplayName)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zaptest.NewLogger(t).Sugar())
		mockRepo.On("GetByID", ctx, int64(2)).Return(nil, userModel.ProfileMissing(2))

		resp, err := svc.GetProfile(ctx, 2)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperror.ErrProfileMissing)
	})
}
