package delete_history_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safeqr/domain"
	"safeqr/mocks"
	"safeqr/utils/errors"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestDeleteHistoryUsecase_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	generationID := uuid.New()

	historyPort := mocks.NewMockHistoryPort(ctrl)
	historyPort.EXPECT().
		DeleteGeneration(gomock.Any(), userID, generationID).
		Return(nil)

	usecase := NewDeleteHistoryUsecase(historyPort)
	err := usecase.Execute(authedContext(userID), generationID)
	require.NoError(t, err)
}

func TestDeleteHistoryUsecase_Execute_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewDeleteHistoryUsecase(mocks.NewMockHistoryPort(ctrl))
	err := usecase.Execute(context.Background(), uuid.New())

	require.Error(t, err)
	appErr, ok := err.(*errors.AppContextError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeAuth, appErr.Code)
}

func TestDeleteHistoryUsecase_Execute_NilID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usecase := NewDeleteHistoryUsecase(mocks.NewMockHistoryPort(ctrl))
	err := usecase.Execute(authedContext(uuid.New()), uuid.Nil)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppContextError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
}

func TestDeleteHistoryUsecase_Execute_PortError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	generationID := uuid.New()

	historyPort := mocks.NewMockHistoryPort(ctrl)
	historyPort.EXPECT().
		DeleteGeneration(gomock.Any(), userID, generationID).
		Return(errors.NewDatabaseContextError(
			"failed to delete generation", "gateway", "HistoryGateway", "delete_generation", nil, nil))

	usecase := NewDeleteHistoryUsecase(historyPort)
	err := usecase.Execute(authedContext(userID), generationID)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppContextError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeDatabase, appErr.Code)
}
