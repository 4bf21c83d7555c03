package capacityrepo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = pq.ErrorCode("23505")

// ErrCapacityAlreadySaved is returned when Save receives a capacity that already has an identity.
var ErrCapacityAlreadySaved = errors.New("capacity already has an identity; Save only inserts")

// GormCapacityRepository implements ports.CapacityRepository using GORM.
type GormCapacityRepository struct {
	db *gorm.DB
}

// NewGormCapacityRepository creates a new GORM capacity repository.
func NewGormCapacityRepository(db *gorm.DB) *GormCapacityRepository {
	return &GormCapacityRepository{db: db}
}

// ExistsByName reports whether a capacity with exactly this name is stored.
func (r *GormCapacityRepository) ExistsByName(ctx context.Context, name kernel.Name) (bool, error) {
	if err := name.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CapacityDTO{}).
		Where("name = ?", name.Value()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts a new capacity and returns it with the identity assigned by the database.
func (r *GormCapacityRepository) Save(ctx context.Context, c *capacity.Capacity) (*capacity.Capacity, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.HasID() {
		return nil, ErrCapacityAlreadySaved
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("name", dto.Name, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByID retrieves a capacity by identity.
func (r *GormCapacityRepository) FindByID(ctx context.Context, id kernel.ID) (*capacity.Capacity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CapacityDTO
	if err := r.db.WithContext(ctx).First(&dto, "capacity_id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("capacity", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByBootcamp retrieves the bootcamp's capacities in association order.
func (r *GormCapacityRepository) FindByBootcamp(ctx context.Context, bootcampID kernel.ID) ([]*capacity.Capacity, error) {
	if err := bootcampID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CapacityDTO
	if err := r.db.WithContext(ctx).
		Table("capacity").
		Select("capacity.*").
		Joins("JOIN capacity_bootcamp ON capacity_bootcamp.capacity_id = capacity.capacity_id").
		Where("capacity_bootcamp.bootcamp_id = ?", bootcampID.Value()).
		Order("capacity_bootcamp.id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindAllPagedSorted returns the page at offset page*size ordered by name ascending.
// sortBy and order do not change the query: the caller arranges descending pages
// itself. Ties on name cannot happen because names are unique.
func (r *GormCapacityRepository) FindAllPagedSorted(
	ctx context.Context,
	page, size int,
	_, _ string,
) ([]*capacity.Capacity, error) {
	if page < 0 || size < 0 {
		return nil, errs.NewValueIsOutOfRangeError("page/size", fmt.Sprintf("%d/%d", page, size), 0, "unbounded")
	}
	if size > 0 && page > math.MaxInt/size {
		return nil, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt/size)
	}

	var dtos []CapacityDTO
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(size).
		Offset(page * size).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindAll retrieves every capacity ordered by identity.
func (r *GormCapacityRepository) FindAll(ctx context.Context) ([]*capacity.Capacity, error) {
	var dtos []CapacityDTO
	if err := r.db.WithContext(ctx).Order("capacity_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// CountBootcampsByCapacityID counts the distinct bootcamps linked to the capacity.
func (r *GormCapacityRepository) CountBootcampsByCapacityID(ctx context.Context, capacityID kernel.ID) (int64, error) {
	if err := capacityID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CapacityBootcampDTO{}).
		Where("capacity_id = ?", capacityID.Value()).
		Distinct("bootcamp_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes the capacity and its bootcamp rows in one transaction.
// Deleting a capacity that does not exist is not an error.
func (r *GormCapacityRepository) Delete(ctx context.Context, capacityID kernel.ID) error {
	if err := capacityID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("capacity_id = ?", capacityID.Value()).
			Delete(&CapacityBootcampDTO{}).Error; err != nil {
			return err
		}
		return tx.Where("capacity_id = ?", capacityID.Value()).
			Delete(&CapacityDTO{}).Error
	})
}

// AssociateCapacityBootcamp inserts the (bootcamp, capacity) row.
func (r *GormCapacityRepository) AssociateCapacityBootcamp(
	ctx context.Context,
	assoc capacity.CapacityBootcamp,
) (capacity.CapacityBootcamp, error) {
	if err := assoc.Validate(); err != nil {
		return capacity.CapacityBootcamp{}, err
	}

	dto := associationFromDomain(assoc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return capacity.CapacityBootcamp{}, errs.NewObjectAlreadyExistsErrorWithCause(
				"capacity_bootcamp", pairKey(assoc.BootcampID(), assoc.CapacityID()), err)
		}
		return capacity.CapacityBootcamp{}, err
	}

	return associationToDomain(dto)
}

// FindByBootcampIDAndCapacityID retrieves the association for the pair.
func (r *GormCapacityRepository) FindByBootcampIDAndCapacityID(
	ctx context.Context,
	bootcampID, capacityID kernel.ID,
) (capacity.CapacityBootcamp, error) {
	if err := errors.Join(bootcampID.Validate(), capacityID.Validate()); err != nil {
		return capacity.CapacityBootcamp{}, err
	}

	var dto CapacityBootcampDTO
	if err := r.db.WithContext(ctx).
		Where("bootcamp_id = ? AND capacity_id = ?", bootcampID.Value(), capacityID.Value()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return capacity.CapacityBootcamp{}, errs.NewObjectNotFoundError(
				"capacity_bootcamp", pairKey(bootcampID, capacityID))
		}
		return capacity.CapacityBootcamp{}, err
	}

	return associationToDomain(dto)
}

// DeleteCapacityBootcampRelation removes the (capacity, bootcamp) row only.
func (r *GormCapacityRepository) DeleteCapacityBootcampRelation(
	ctx context.Context,
	capacityID, bootcampID kernel.ID,
) error {
	if err := errors.Join(capacityID.Validate(), bootcampID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("capacity_id = ? AND bootcamp_id = ?", capacityID.Value(), bootcampID.Value()).
		Delete(&CapacityBootcampDTO{}).Error
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func pairKey(bootcampID, capacityID kernel.ID) string {
	return fmt.Sprintf("bootcamp %s/capacity %s", bootcampID, capacityID)
}
