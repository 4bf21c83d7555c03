package commands

import (
	"context"
	"errors"

	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/ports"
	"capacity/internal/pkg/errs"
)

// AssociateCapacityWithBootcampCommandHandler links a capacity to a bootcamp and
// reports the capacity with its current technologies.
//
// The duplicate check and the insert are two separate store calls; the store's
// unique (bootcamp, capacity) constraint rejects the loser of a concurrent race.
type AssociateCapacityWithBootcampCommandHandler struct {
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService
}

func NewAssociateCapacityWithBootcampCommandHandler(
	capacityRepo ports.CapacityRepository,
	technologyService ports.TechnologyService,
) AssociateCapacityWithBootcampCommandHandler {
	return AssociateCapacityWithBootcampCommandHandler{
		capacityRepo:      capacityRepo,
		technologyService: technologyService,
	}
}

func (h *AssociateCapacityWithBootcampCommandHandler) Handle(
	ctx context.Context,
	cmd AssociateCapacityWithBootcampCommand,
) (responses.AssociateCapacityWithBootcampResponse, error) {
	if err := cmd.Validate(); err != nil {
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	c, err := h.capacityRepo.FindByID(ctx, cmd.CapacityID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return responses.AssociateCapacityWithBootcampResponse{}, ErrCapacityNotFound
		}
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	_, err = h.capacityRepo.FindByBootcampIDAndCapacityID(ctx, cmd.BootcampID(), c.ID())
	switch {
	case err == nil:
		return responses.AssociateCapacityWithBootcampResponse{}, ErrAssociationAlreadyExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	assoc, err := capacity.NewCapacityBootcamp(cmd.BootcampID(), c.ID())
	if err != nil {
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	saved, err := h.capacityRepo.AssociateCapacityBootcamp(ctx, assoc)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return responses.AssociateCapacityWithBootcampResponse{}, ErrAssociationAlreadyExists
		}
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	techs, err := h.technologyService.FindByCapacityID(ctx, c.ID())
	if err != nil {
		return responses.AssociateCapacityWithBootcampResponse{}, err
	}

	return responses.NewAssociateCapacityWithBootcampResponse(c, techs, saved), nil
}
