// Package capacityrepo persists capacities and their bootcamp associations with GORM.
package capacityrepo

import (
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"
)

// CapacityDTO is a row of the capacity table. Names are unique.
type CapacityDTO struct {
	ID          int64  `gorm:"column:capacity_id;primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex:ux_capacity_name"`
	Description string `gorm:"type:varchar(90);not null"`
}

func (CapacityDTO) TableName() string {
	return "capacity"
}

// CapacityBootcampDTO is a row of the capacity_bootcamp link table.
// A (bootcamp, capacity) pair appears at most once.
type CapacityBootcampDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	BootcampID int64 `gorm:"not null;uniqueIndex:ux_capacity_bootcamp_pair,priority:1"`
	CapacityID int64 `gorm:"not null;uniqueIndex:ux_capacity_bootcamp_pair,priority:2;index:ix_capacity_bootcamp_capacity"`
}

func (CapacityBootcampDTO) TableName() string {
	return "capacity_bootcamp"
}

// fromDomain maps a capacity to its row. An unsaved capacity maps to ID 0 so the
// database assigns one.
func fromDomain(c *capacity.Capacity) CapacityDTO {
	return CapacityDTO{
		ID:          c.ID().Value(),
		Name:        c.Name().Value(),
		Description: c.Description().Value(),
	}
}

func toDomain(dto CapacityDTO) (*capacity.Capacity, error) {
	return capacity.RestoreCapacity(dto.ID, dto.Name, dto.Description)
}

func toDomainList(dtos []CapacityDTO) ([]*capacity.Capacity, error) {
	out := make([]*capacity.Capacity, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func associationFromDomain(a capacity.CapacityBootcamp) CapacityBootcampDTO {
	return CapacityBootcampDTO{
		BootcampID: a.BootcampID().Value(),
		CapacityID: a.CapacityID().Value(),
	}
}

func associationToDomain(dto CapacityBootcampDTO) (capacity.CapacityBootcamp, error) {
	bootcampID, err := kernel.NewID(dto.BootcampID)
	if err != nil {
		return capacity.CapacityBootcamp{}, err
	}
	capacityID, err := kernel.NewID(dto.CapacityID)
	if err != nil {
		return capacity.CapacityBootcamp{}, err
	}
	return capacity.NewCapacityBootcamp(bootcampID, capacityID)
}
