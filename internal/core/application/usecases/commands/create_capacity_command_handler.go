package commands

import (
	"context"
	"errors"
	"log/slog"

	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/technology"
	"capacity/internal/core/ports"
	"capacity/internal/pkg/errs"
	"capacity/internal/pkg/fanout"
)

// CreateCapacityCommandHandler creates a capacity and associates its technologies.
//
// The command already carries a valid technology set (see NewCreateCapacityCommand).
// The handler then checks, in order and before writing anything:
//  1. capacity name not taken
//  2. every name present in the technology catalog
//
// A name taken between step 1 and the insert is caught by the store's unique
// constraint and reported as ErrDuplicateCapacityName too.
//
// The capacity is then saved and each technology associated with it, up to
// MaxTechnologies calls in flight. The workflow is not transactional: when an
// association fails the saved capacity and the associations already made stay in place.
type CreateCapacityCommandHandler struct {
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService
	logger            *slog.Logger
}

func NewCreateCapacityCommandHandler(
	capacityRepo ports.CapacityRepository,
	technologyService ports.TechnologyService,
	logger *slog.Logger,
) CreateCapacityCommandHandler {
	return CreateCapacityCommandHandler{
		capacityRepo:      capacityRepo,
		technologyService: technologyService,
		logger:            logger.With("component", "create_capacity_command_handler"),
	}
}

// Handle runs the creation workflow. The response lists the associated
// technologies in the order the association calls completed.
func (h *CreateCapacityCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCapacityCommand,
) (responses.CapacityResponse, error) {
	if err := cmd.Validate(); err != nil {
		return responses.CapacityResponse{}, err
	}

	names := cmd.TechnologyNames()

	exists, err := h.capacityRepo.ExistsByName(ctx, cmd.Name())
	if err != nil {
		return responses.CapacityResponse{}, err
	}
	if exists {
		return responses.CapacityResponse{}, ErrDuplicateCapacityName
	}

	if err = h.checkCatalog(ctx, names); err != nil {
		return responses.CapacityResponse{}, err
	}

	c, err := capacity.NewCapacity(cmd.Name().Value(), cmd.Description().Value())
	if err != nil {
		return responses.CapacityResponse{}, err
	}

	saved, err := h.capacityRepo.Save(ctx, c)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return responses.CapacityResponse{}, ErrDuplicateCapacityName
		}
		return responses.CapacityResponse{}, err
	}

	associated, err := fanout.Collect(ctx, names, MaxTechnologies,
		func(ctx context.Context, name string) (*technology.Technology, error) {
			req, err := technology.NewCapacityTechnology(saved.ID(), name)
			if err != nil {
				return nil, err
			}
			return h.technologyService.AssociateTechnology(ctx, req)
		})
	if err != nil {
		h.logger.WarnContext(ctx, "technology association failed, capacity left partially associated",
			"capacity_id", saved.ID().Value(),
			"associated", len(associated),
			"requested", len(names),
			"error", err,
		)
		return responses.CapacityResponse{}, err
	}

	if err = saved.AttachTechnologies(associated); err != nil {
		return responses.CapacityResponse{}, err
	}

	h.logger.InfoContext(ctx, "capacity created",
		"capacity_id", saved.ID().Value(),
		"technologies", len(associated),
	)
	return responses.NewCapacityResponse(saved, saved.Technologies()), nil
}

func (h *CreateCapacityCommandHandler) checkCatalog(ctx context.Context, names []string) error {
	catalog, err := h.technologyService.FindAll(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(catalog))
	for _, t := range catalog {
		known[t.Name().Value()] = struct{}{}
	}

	for _, name := range names {
		if _, ok := known[name]; !ok {
			return ErrUnknownTechnology
		}
	}
	return nil
}
