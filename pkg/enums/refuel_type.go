package enums

import "fmt"

// RefuelType is the dispensing target of a fuel exit.
type RefuelType string

const (
	RefuelTypeVehiculo RefuelType = "Vehículo"
	RefuelTypeGarrafa  RefuelType = "Garrafa"
	RefuelTypeDeposito RefuelType = "Depósito"
)

var validRefuelTypes = []RefuelType{
	RefuelTypeVehiculo,
	RefuelTypeGarrafa,
	RefuelTypeDeposito,
}

// String implements fmt.Stringer.
func (r RefuelType) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RefuelType.
func (r RefuelType) IsValid() bool {
	for _, candidate := range validRefuelTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

// RequiresPlate reports whether exits of this type must carry a plate.
func (r RefuelType) RequiresPlate() bool {
	return r == RefuelTypeVehiculo
}

// ParseRefuelType converts raw input into a RefuelType.
func ParseRefuelType(value string) (RefuelType, error) {
	for _, candidate := range validRefuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid refuel type %q", value)
}
