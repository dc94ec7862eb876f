package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrder(t *testing.T) {
	tooMany := make([]string, MaxItemsPerOrder+1)
	for i := range tooMany {
		tooMany[i] = "SKU001"
	}

	tests := []struct {
		name    string
		id      string
		items   []string
		wantErr error
		wantIDs []string
	}{
		{
			name:    "valid order",
			id:      "ORD0001",
			items:   []string{"SKU001", "SKU003"},
			wantIDs: []string{"SKU001", "SKU003"},
		},
		{
			name:    "duplicate ids express quantity",
			id:      "ORD0002",
			items:   []string{"SKU001", "SKU001", "SKU001"},
			wantIDs: []string{"SKU001", "SKU001", "SKU001"},
		},
		{
			name:    "ids normalized to upper case",
			id:      "ord0003",
			items:   []string{"sku001", " sku002 "},
			wantIDs: []string{"SKU001", "SKU002"},
		},
		{
			name:    "empty id rejected",
			id:      "",
			items:   []string{"SKU001"},
			wantErr: ErrEmptyOrderID,
		},
		{
			name:    "empty item list rejected",
			id:      "ORD0004",
			items:   nil,
			wantErr: ErrOrderEmpty,
		},
		{
			name:    "over maximum size rejected",
			id:      "ORD0005",
			items:   tooMany,
			wantErr: ErrOrderTooBig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(tt.id, tt.items)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantIDs, order.ItemIDs)
		})
	}
}

func TestNewTask(t *testing.T) {
	order, err := NewOrder("ORD0001", []string{"SKU001", "SKU001", "SKU003"})
	assert.NoError(t, err)

	task := NewTask(order)
	assert.Equal(t, "T_ORD0001", task.ID)
	assert.Equal(t, "ORD0001", task.OrderID)
	assert.Equal(t, order.ItemIDs, task.ItemIDs)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AutomationMode
		wantErr error
	}{
		{in: "auto", want: ModeFullAuto},
		{in: "FULL", want: ModeFullAuto},
		{in: "fullauto", want: ModeFullAuto},
		{in: "semi", want: ModeSemiAuto},
		{in: " SemiAuto ", want: ModeSemiAuto},
		{in: "semi_auto", want: ModeSemiAuto},
		{in: "manual", wantErr: ErrUnknownMode},
		{in: "", wantErr: ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := ParseMode(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}
