package commands_test

import (
	"errors"
	"testing"

	"capacity/internal/core/application/usecases/commands"
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDeleteCommand(t *testing.T, bootcampID int64) commands.DeleteCapacitiesByBootcampCommand {
	t.Helper()
	cmd, err := commands.NewDeleteCapacitiesByBootcampCommand(&bootcampID)
	require.NoError(t, err)
	return cmd
}

func newDeleteHandler(repo *MockCapacityRepository, svc *MockTechnologyService) commands.DeleteCapacitiesByBootcampCommandHandler {
	return commands.NewDeleteCapacitiesByBootcampCommandHandler(repo, svc, discardLogger())
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_CascadeAndDetach(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := mustDeleteCommand(t, 42)
	exclusive := mustCapacity(t, 1, "Exclusive")
	shared := mustCapacity(t, 2, "Shared")

	repo := new(MockCapacityRepository)
	svc := new(MockTechnologyService)
	repo.On("FindByBootcamp", ctx, cmd.BootcampID()).
		Return([]*capacity.Capacity{exclusive, shared}, nil).Once()

	repo.On("CountBootcampsByCapacityID", mock.Anything, forID(1)).Return(int64(1), nil).Once()
	svc.On("DeleteTechnologiesByCapacity", mock.Anything, forID(1)).
		Return([]kernel.ID{kernel.MustNewID(10), kernel.MustNewID(11)}, nil).Once()
	repo.On("Delete", mock.Anything, forID(1)).Return(nil).Once()

	repo.On("CountBootcampsByCapacityID", mock.Anything, forID(2)).Return(int64(3), nil).Once()
	repo.On("DeleteCapacityBootcampRelation", mock.Anything, forID(2), forID(42)).Return(nil).Once()

	h := newDeleteHandler(repo, svc)

	// Act
	ids, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, int64(1), ids[0].Value())
	assert.Equal(t, int64(2), ids[1].Value())
	repo.AssertNotCalled(t, "Delete", mock.Anything, forID(2))
	repo.AssertNotCalled(t, "DeleteCapacityBootcampRelation", mock.Anything, forID(1), mock.Anything)
	svc.AssertNotCalled(t, "DeleteTechnologiesByCapacity", mock.Anything, forID(2))
	repo.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_TechnologiesDetachedBeforeDelete(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := mustDeleteCommand(t, 42)

	repo := new(MockCapacityRepository)
	svc := new(MockTechnologyService)
	repo.On("FindByBootcamp", ctx, cmd.BootcampID()).
		Return([]*capacity.Capacity{mustCapacity(t, 1, "Exclusive")}, nil).Once()
	mock.InOrder(
		repo.On("CountBootcampsByCapacityID", mock.Anything, forID(1)).Return(int64(1), nil).Once(),
		svc.On("DeleteTechnologiesByCapacity", mock.Anything, forID(1)).Return([]kernel.ID{}, nil).Once(),
		repo.On("Delete", mock.Anything, forID(1)).Return(nil).Once(),
	)

	h := newDeleteHandler(repo, svc)

	// Act
	ids, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, ids, 1)
	repo.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_BootcampNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := mustDeleteCommand(t, 42)

	repo := new(MockCapacityRepository)
	svc := new(MockTechnologyService)
	repo.On("FindByBootcamp", ctx, cmd.BootcampID()).Return([]*capacity.Capacity{}, nil).Once()

	h := newDeleteHandler(repo, svc)

	// Act
	ids, err := h.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrBootcampNotFound)
	assert.Nil(t, ids)
	repo.AssertNotCalled(t, "CountBootcampsByCapacityID", mock.Anything, mock.Anything)
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_TechnologyServiceFailure(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := mustDeleteCommand(t, 42)
	remoteErr := errors.New("technology service unavailable")

	repo := new(MockCapacityRepository)
	svc := new(MockTechnologyService)
	repo.On("FindByBootcamp", ctx, cmd.BootcampID()).
		Return([]*capacity.Capacity{mustCapacity(t, 1, "Exclusive")}, nil).Once()
	repo.On("CountBootcampsByCapacityID", mock.Anything, forID(1)).Return(int64(1), nil).Once()
	svc.On("DeleteTechnologiesByCapacity", mock.Anything, forID(1)).Return(nil, remoteErr).Once()

	h := newDeleteHandler(repo, svc)

	// Act
	ids, err := h.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, remoteErr)
	assert.Nil(t, ids)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_StoreFailures(t *testing.T) {
	storeErr := errors.New("store down")

	t.Run("listing fails", func(t *testing.T) {
		ctx := t.Context()
		cmd := mustDeleteCommand(t, 42)
		repo := new(MockCapacityRepository)
		repo.On("FindByBootcamp", ctx, cmd.BootcampID()).Return(nil, storeErr).Once()
		h := newDeleteHandler(repo, new(MockTechnologyService))

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, storeErr)
	})

	t.Run("count fails", func(t *testing.T) {
		ctx := t.Context()
		cmd := mustDeleteCommand(t, 42)
		repo := new(MockCapacityRepository)
		repo.On("FindByBootcamp", ctx, cmd.BootcampID()).
			Return([]*capacity.Capacity{mustCapacity(t, 1, "Exclusive")}, nil).Once()
		repo.On("CountBootcampsByCapacityID", mock.Anything, forID(1)).Return(int64(0), storeErr).Once()
		h := newDeleteHandler(repo, new(MockTechnologyService))

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, storeErr)
		repo.AssertNotCalled(t, "DeleteCapacityBootcampRelation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteCapacitiesByBootcampCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	repo := new(MockCapacityRepository)
	h := newDeleteHandler(repo, new(MockTechnologyService))

	_, err := h.Handle(t.Context(), commands.DeleteCapacitiesByBootcampCommand{})

	require.ErrorIs(t, err, commands.ErrDeleteCapacitiesByBootcampCommandIsNotConstructed)
	repo.AssertNotCalled(t, "FindByBootcamp", mock.Anything, mock.Anything)
}
