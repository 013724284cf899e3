package storage_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	mock_database "github.com/shopmeco/backend/internal/db/mocks"
	"github.com/shopmeco/backend/internal/storage"
	mock_storage "github.com/shopmeco/backend/internal/storage/mocks"
)

type fixture struct {
	db          *mock_database.MockDB
	tx          *mock_database.MockTx
	users       *mock_storage.MockUserRepository
	vehicles    *mock_storage.MockVehicleRepository
	products    *mock_storage.MockProductRepository
	orders      *mock_storage.MockOrderRepository
	services    *mock_storage.MockServiceRequestRepository
	maintenance *mock_storage.MockMaintenanceRepository
	reviews     *mock_storage.MockReviewRepository
	storage     *storage.PostgresStorage
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		db:          mock_database.NewMockDB(ctrl),
		tx:          mock_database.NewMockTx(ctrl),
		users:       mock_storage.NewMockUserRepository(ctrl),
		vehicles:    mock_storage.NewMockVehicleRepository(ctrl),
		products:    mock_storage.NewMockProductRepository(ctrl),
		orders:      mock_storage.NewMockOrderRepository(ctrl),
		services:    mock_storage.NewMockServiceRequestRepository(ctrl),
		maintenance: mock_storage.NewMockMaintenanceRepository(ctrl),
		reviews:     mock_storage.NewMockReviewRepository(ctrl),
	}
	f.storage = storage.NewPostgresStorage(f.db,
		f.users, f.vehicles, f.products, f.orders,
		f.services, f.maintenance, f.reviews)
	return f
}

// expectTx arranges one transaction. Rollback after commit is a no-op,
// so it is allowed any number of times.
func (f *fixture) expectTx() {
	f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) expectCommit() {
	f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
}
