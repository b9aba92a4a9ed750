package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableForVehicle(t *testing.T) {
	s := Service{
		AppliesSedan:      true,
		AppliesSUV:        false,
		AppliesPickup:     true,
		AppliesMotorcycle: false,
	}

	// hatch segue sedan; van segue pickup
	assert.True(t, s.AvailableForVehicle("sedan"))
	assert.True(t, s.AvailableForVehicle("hatch"))
	assert.False(t, s.AvailableForVehicle("suv"))
	assert.True(t, s.AvailableForVehicle("pickup"))
	assert.True(t, s.AvailableForVehicle("van"))
	assert.False(t, s.AvailableForVehicle("motorcycle"))

	// categoria desconhecida não restringe
	assert.True(t, s.AvailableForVehicle("other"))
}

func TestIsValidVehicleCategory(t *testing.T) {
	assert.True(t, IsValidVehicleCategory("sedan"))
	assert.True(t, IsValidVehicleCategory("motorcycle"))
	assert.False(t, IsValidVehicleCategory("truck"))
	assert.False(t, IsValidVehicleCategory(""))
}

func TestLowStock(t *testing.T) {
	assert.True(t, (&InventoryItem{Quantity: 2, MinQuantity: 5}).LowStock())
	assert.True(t, (&InventoryItem{Quantity: 5, MinQuantity: 5}).LowStock())
	assert.False(t, (&InventoryItem{Quantity: 6, MinQuantity: 5}).LowStock())
}
