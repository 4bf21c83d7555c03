package commands_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/domain/model/technology"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCapacityRepository struct{ mock.Mock }

func (m *MockCapacityRepository) ExistsByName(ctx context.Context, name kernel.Name) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCapacityRepository) Save(ctx context.Context, c *capacity.Capacity) (*capacity.Capacity, error) {
	args := m.Called(ctx, c)
	saved, _ := args.Get(0).(*capacity.Capacity)
	return saved, args.Error(1)
}

func (m *MockCapacityRepository) FindByID(ctx context.Context, id kernel.ID) (*capacity.Capacity, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*capacity.Capacity)
	return c, args.Error(1)
}

func (m *MockCapacityRepository) FindByBootcamp(ctx context.Context, bootcampID kernel.ID) ([]*capacity.Capacity, error) {
	args := m.Called(ctx, bootcampID)
	cs, _ := args.Get(0).([]*capacity.Capacity)
	return cs, args.Error(1)
}

func (m *MockCapacityRepository) FindAllPagedSorted(
	ctx context.Context, page, size int, sortBy, order string,
) ([]*capacity.Capacity, error) {
	args := m.Called(ctx, page, size, sortBy, order)
	cs, _ := args.Get(0).([]*capacity.Capacity)
	return cs, args.Error(1)
}

func (m *MockCapacityRepository) FindAll(ctx context.Context) ([]*capacity.Capacity, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*capacity.Capacity)
	return cs, args.Error(1)
}

func (m *MockCapacityRepository) CountBootcampsByCapacityID(ctx context.Context, capacityID kernel.ID) (int64, error) {
	args := m.Called(ctx, capacityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCapacityRepository) Delete(ctx context.Context, capacityID kernel.ID) error {
	args := m.Called(ctx, capacityID)
	return args.Error(0)
}

func (m *MockCapacityRepository) AssociateCapacityBootcamp(
	ctx context.Context, assoc capacity.CapacityBootcamp,
) (capacity.CapacityBootcamp, error) {
	args := m.Called(ctx, assoc)
	saved, _ := args.Get(0).(capacity.CapacityBootcamp)
	return saved, args.Error(1)
}

func (m *MockCapacityRepository) FindByBootcampIDAndCapacityID(
	ctx context.Context, bootcampID, capacityID kernel.ID,
) (capacity.CapacityBootcamp, error) {
	args := m.Called(ctx, bootcampID, capacityID)
	assoc, _ := args.Get(0).(capacity.CapacityBootcamp)
	return assoc, args.Error(1)
}

func (m *MockCapacityRepository) DeleteCapacityBootcampRelation(ctx context.Context, capacityID, bootcampID kernel.ID) error {
	args := m.Called(ctx, capacityID, bootcampID)
	return args.Error(0)
}

type MockTechnologyService struct{ mock.Mock }

func (m *MockTechnologyService) FindAll(ctx context.Context) ([]*technology.Technology, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]*technology.Technology)
	return ts, args.Error(1)
}

func (m *MockTechnologyService) FindByCapacityID(ctx context.Context, capacityID kernel.ID) ([]*technology.Technology, error) {
	args := m.Called(ctx, capacityID)
	ts, _ := args.Get(0).([]*technology.Technology)
	return ts, args.Error(1)
}

func (m *MockTechnologyService) AssociateTechnology(
	ctx context.Context, assoc technology.CapacityTechnology,
) (*technology.Technology, error) {
	args := m.Called(ctx, assoc)
	t, _ := args.Get(0).(*technology.Technology)
	return t, args.Error(1)
}

func (m *MockTechnologyService) DeleteTechnologiesByCapacity(ctx context.Context, capacityID kernel.ID) ([]kernel.ID, error) {
	args := m.Called(ctx, capacityID)
	ids, _ := args.Get(0).([]kernel.ID)
	return ids, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustCapacity(t *testing.T, id int64, name string) *capacity.Capacity {
	t.Helper()
	c, err := capacity.RestoreCapacity(id, name, name+" description")
	require.NoError(t, err)
	return c
}

func mustTechnology(t *testing.T, id int64, name string) *technology.Technology {
	t.Helper()
	tech, err := technology.NewTechnology(id, name, name+" description")
	require.NoError(t, err)
	return tech
}

func catalogOf(t *testing.T, names ...string) []*technology.Technology {
	t.Helper()
	out := make([]*technology.Technology, 0, len(names))
	for i, name := range names {
		out = append(out, mustTechnology(t, int64(i+1), name))
	}
	return out
}

func technologyNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Tech%02d", i)
	}
	return out
}

func forTechnology(name string) any {
	return mock.MatchedBy(func(r technology.CapacityTechnology) bool {
		return r.TechnologyName().Value() == name
	})
}

func forID(id int64) any {
	return mock.MatchedBy(func(v kernel.ID) bool { return v.Value() == id })
}
