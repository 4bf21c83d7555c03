package commands

import (
	"context"
	"log/slog"

	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/ports"
	"capacity/internal/pkg/fanout"
)

// DeleteCapacitiesByBootcampCommandHandler releases every capacity linked to a bootcamp.
//
// For each capacity the bootcamp reference count decides what happens:
//   - exactly one reference: the capacity's technologies are detached in the
//     technology service and the capacity is deleted (cascade)
//   - otherwise: only the (capacity, bootcamp) row is removed (detach)
//
// Capacities are processed concurrently and independently. A failure stops the
// remaining work but does not undo what was already done.
type DeleteCapacitiesByBootcampCommandHandler struct {
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService
	logger            *slog.Logger
}

func NewDeleteCapacitiesByBootcampCommandHandler(
	capacityRepo ports.CapacityRepository,
	technologyService ports.TechnologyService,
	logger *slog.Logger,
) DeleteCapacitiesByBootcampCommandHandler {
	return DeleteCapacitiesByBootcampCommandHandler{
		capacityRepo:      capacityRepo,
		technologyService: technologyService,
		logger:            logger.With("component", "delete_capacities_by_bootcamp_command_handler"),
	}
}

// Handle returns the ids of the processed capacities, in the order the store
// listed them for the bootcamp. It fails with ErrBootcampNotFound when the
// bootcamp holds no capacity.
func (h *DeleteCapacitiesByBootcampCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteCapacitiesByBootcampCommand,
) ([]kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	capacities, err := h.capacityRepo.FindByBootcamp(ctx, cmd.BootcampID())
	if err != nil {
		return nil, err
	}
	if len(capacities) == 0 {
		return nil, ErrBootcampNotFound
	}

	return fanout.Map(ctx, capacities, fanout.DefaultLimit,
		func(ctx context.Context, c *capacity.Capacity) (kernel.ID, error) {
			return c.ID(), h.release(ctx, c.ID(), cmd.BootcampID())
		})
}

func (h *DeleteCapacitiesByBootcampCommandHandler) release(ctx context.Context, capacityID, bootcampID kernel.ID) error {
	refs, err := h.capacityRepo.CountBootcampsByCapacityID(ctx, capacityID)
	if err != nil {
		return err
	}

	if refs != 1 {
		h.logger.DebugContext(ctx, "detaching shared capacity",
			"capacity_id", capacityID.Value(),
			"bootcamp_id", bootcampID.Value(),
			"references", refs,
		)
		return h.capacityRepo.DeleteCapacityBootcampRelation(ctx, capacityID, bootcampID)
	}

	detached, err := h.technologyService.DeleteTechnologiesByCapacity(ctx, capacityID)
	if err != nil {
		return err
	}

	if err = h.capacityRepo.Delete(ctx, capacityID); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "capacity deleted",
		"capacity_id", capacityID.Value(),
		"bootcamp_id", bootcampID.Value(),
		"detached_technologies", len(detached),
	)
	return nil
}
