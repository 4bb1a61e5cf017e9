package entity

import "time"

// Drone represents a UAV in the team inventory.
type Drone struct {
	Meta        `bson:",inline"`
	DroneFields `bson:",inline"`
}

// DroneFields are the domain fields supplied by callers on create/update.
// Meta stamps are owned by the repository layer. No bson omitempty here:
// updates replace the whole block, so cleared fields must still marshal.
type DroneFields struct {
	Name                 string     `bson:"name" json:"name"`
	InventoryCode        string     `bson:"inventoryCode" json:"inventoryCode"`
	RegistrationNumber   string     `bson:"registrationNumber" json:"registrationNumber"`
	CallSign             string     `bson:"callSign" json:"callSign"`
	Location             string     `bson:"location" json:"location"`
	YearOfManufacture    int        `bson:"yearOfManufacture" json:"yearOfManufacture"`
	WeightGrams          int        `bson:"weightGrams" json:"weightGrams"`
	MaxTakeoffWeightG    int        `bson:"maxTakeoffWeightGrams" json:"maxTakeoffWeightGrams"`
	MaxFlightTimeMinutes int        `bson:"maxFlightTimeMinutes" json:"maxFlightTimeMinutes"`
	RangeKM              float64    `bson:"rangeKm" json:"rangeKm"`
	BatteryType          string     `bson:"batteryType" json:"batteryType"`
	InsuranceExpiry      *time.Time `bson:"insuranceExpiry" json:"insuranceExpiry,omitempty"`
	ImageURL             string     `bson:"imageUrl" json:"imageUrl,omitempty"`
	UserManualURL        string     `bson:"userManualUrl" json:"userManualUrl,omitempty"`
}
