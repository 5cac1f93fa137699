//go:build integration

package courier_test

import (
	"context"
	"testing"

	"dispatch/internal/entities"
	"dispatch/internal/repository/courier"
	"dispatch/internal/repository/integration_test"
	"dispatch/internal/service/dispatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_HoldForAssignment(t *testing.T) {
	setupSql := `
        INSERT INTO couriers (id, user_id, name, phone, status, vehicle_type, current_active_orders, max_active_orders)
        VALUES
            (1, 'user-1', 'Free Courier', '+79991112233', 'available', 'bicycle', 0, 3),
            (2, 'user-2', 'Full Courier', '+79991112244', 'available', 'car', 3, 3),
            (3, 'user-3', 'Offline Courier', '+79991112255', 'offline', 'motorbike', 0, 3);
    `

	integration_test.SetupDB(t, setupSql)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := courier.New(q)
	ctx := context.Background()

	t.Run("Свободный курьер переводится в assigned", func(t *testing.T) {
		err := repo.HoldForAssignment(ctx, 1)
		require.NoError(t, err)

		actual, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.CourierAssigned, actual.Status)
	})

	t.Run("Повторный hold того же курьера не проходит", func(t *testing.T) {
		err := repo.HoldForAssignment(ctx, 1)
		assert.ErrorIs(t, err, dispatch.ErrCourierNotAvailable)
	})

	t.Run("Курьер на пределе емкости не удерживается", func(t *testing.T) {
		err := repo.HoldForAssignment(ctx, 2)
		assert.ErrorIs(t, err, dispatch.ErrCourierNotAvailable)
	})

	t.Run("Offline курьер не удерживается", func(t *testing.T) {
		err := repo.HoldForAssignment(ctx, 3)
		assert.ErrorIs(t, err, dispatch.ErrCourierNotAvailable)
	})
}

func TestRepository_ConfirmAndReleaseActiveOrder(t *testing.T) {
	setupSql := `
        INSERT INTO couriers (id, user_id, name, phone, status, vehicle_type, current_active_orders, max_active_orders)
        VALUES
            (1, 'user-1', 'Test Courier', '+79991112233', 'assigned', 'bicycle', 1, 2);
    `

	integration_test.SetupDB(t, setupSql)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := courier.New(q)
	ctx := context.Background()

	t.Run("Подтверждение увеличивает счетчик и переводит в busy", func(t *testing.T) {
		err := repo.ConfirmActiveOrder(ctx, 1)
		require.NoError(t, err)

		actual, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, entities.CourierBusy, actual.Status)
		assert.Equal(t, 2, actual.CurrentActiveOrders)
	})

	t.Run("Подтверждение сверх емкости дает конфликт", func(t *testing.T) {
		err := repo.ConfirmActiveOrder(ctx, 1)
		assert.ErrorIs(t, err, dispatch.ErrCourierAtCapacity)
	})

	t.Run("Освобождение уменьшает счетчик", func(t *testing.T) {
		err := repo.ReleaseActiveOrder(ctx, 1)
		require.NoError(t, err)

		actual, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, actual.CurrentActiveOrders)
		assert.Equal(t, entities.CourierBusy, actual.Status)
	})
}
