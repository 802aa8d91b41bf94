package access

import (
	"testing"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	t.Run("admin can do everything", func(t *testing.T) {
		for _, a := range []Action{ActionDeleteSensor, ActionCreateZone, ActionDeleteEvac, ActionManageReports, ActionChangeUserRole} {
			assert.True(t, Can(domain.RoleAdmin, a), string(a))
		}
	})

	t.Run("emergency manages but cannot hard-delete", func(t *testing.T) {
		assert.True(t, Can(domain.RoleEmergency, ActionManageSensors))
		assert.True(t, Can(domain.RoleEmergency, ActionManageEvacs))
		assert.True(t, Can(domain.RoleEmergency, ActionViewDashboard))
		assert.False(t, Can(domain.RoleEmergency, ActionDeleteSensor))
		assert.False(t, Can(domain.RoleEmergency, ActionDeleteEvac))
		assert.False(t, Can(domain.RoleEmergency, ActionChangeUserRole))
		assert.False(t, Can(domain.RoleEmergency, ActionCreateZone))
	})

	t.Run("residents and experts have no table grants", func(t *testing.T) {
		for _, role := range []string{domain.RoleResident, domain.RoleExpert} {
			assert.False(t, Can(role, ActionManageSensors), role)
			assert.False(t, Can(role, ActionViewDashboard), role)
		}
	})

	t.Run("legacy names normalize", func(t *testing.T) {
		assert.True(t, Can("mchs", ActionManageEvacs))
		assert.False(t, Can("user", ActionManageEvacs))
	})
}

func TestOwnerOr(t *testing.T) {
	assert.True(t, OwnerOr(domain.RoleResident, 7, 7))
	assert.False(t, OwnerOr(domain.RoleResident, 7, 8))
	assert.True(t, OwnerOr(domain.RoleAdmin, 7, 8, domain.RoleAdmin, domain.RoleEmergency))
	assert.True(t, OwnerOr("mchs", 7, 8, domain.RoleAdmin, domain.RoleEmergency))
	assert.False(t, OwnerOr(domain.RoleExpert, 7, 8, domain.RoleAdmin, domain.RoleEmergency))
}
