package usecase

import (
	"testing"

	"uavops-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPolicyTables(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		role   entity.Role
		create bool
		edit   bool
		del    bool
		restr  bool
		view   bool
	}{
		{"drone user", DronePolicy, entity.RoleUser, false, false, false, false, false},
		{"drone manager", DronePolicy, entity.RoleManager, true, true, true, false, false},
		{"drone admin", DronePolicy, entity.RoleAdmin, true, true, true, true, true},
		{"flight user", FlightPolicy, entity.RoleUser, true, false, false, false, false},
		{"flight manager", FlightPolicy, entity.RoleManager, true, true, true, false, false},
		{"flight admin", FlightPolicy, entity.RoleAdmin, true, true, true, true, true},
		{"checklist user", ChecklistPolicy, entity.RoleUser, false, false, false, false, false},
		{"checklist manager", ChecklistPolicy, entity.RoleManager, true, true, true, false, false},
		{"checklist admin", ChecklistPolicy, entity.RoleAdmin, true, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.create, tt.policy.CanCreate(tt.role))
			assert.Equal(t, tt.edit, tt.policy.CanEdit(tt.role))
			assert.Equal(t, tt.del, tt.policy.CanDelete(tt.role))
			assert.Equal(t, tt.restr, tt.policy.CanRestore(tt.role))
			assert.Equal(t, tt.view, tt.policy.CanViewDeleted(tt.role))
		})
	}
}

func TestPolicyUnknownRole(t *testing.T) {
	unknown := entity.Role("intern")
	assert.False(t, DronePolicy.CanCreate(unknown))
	assert.False(t, FlightPolicy.CanCreate(unknown))
	assert.False(t, DronePolicy.CanViewDeleted(unknown))
}
