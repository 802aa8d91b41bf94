// Package access holds the static role/action table and the ownership
// predicate used by handlers. Roles are checked against the table first, then
// ownership narrows what residents and experts may touch.
package access

import "github.com/ospanovk/hydromon/internal/domain"

type Action string

const (
	ActionManageSensors     Action = "sensors.manage"
	ActionDeleteSensor      Action = "sensors.delete"
	ActionCreateZone        Action = "zones.create"
	ActionManageZones       Action = "zones.manage"
	ActionDeleteZone        Action = "zones.delete"
	ActionListUsers         Action = "users.list"
	ActionManageUsers       Action = "users.manage"
	ActionChangeUserRole    Action = "users.change_role"
	ActionDeleteUser        Action = "users.delete"
	ActionViewAllEvacs      Action = "evacuations.view_all"
	ActionManageEvacs       Action = "evacuations.manage"
	ActionDeleteEvac        Action = "evacuations.delete"
	ActionSendNotifications Action = "notifications.send"
	ActionManageFacilities  Action = "facilities.manage"
	ActionDeleteFacility    Action = "facilities.delete"
	ActionDeleteWaterBody   Action = "waterbodies.delete"
	ActionManageReports     Action = "reports.manage"
	ActionDeleteReport      Action = "reports.delete"
	ActionViewDashboard     Action = "dashboard.view"
)

var adminOnly = map[Action]bool{
	ActionDeleteSensor:    true,
	ActionCreateZone:      true,
	ActionDeleteZone:      true,
	ActionChangeUserRole:  true,
	ActionDeleteUser:      true,
	ActionDeleteEvac:      true,
	ActionDeleteFacility:  true,
	ActionDeleteWaterBody: true,
	ActionDeleteReport:    true,
}

var staffActions = map[Action]bool{
	ActionManageSensors:     true,
	ActionManageZones:       true,
	ActionListUsers:         true,
	ActionManageUsers:       true,
	ActionViewAllEvacs:      true,
	ActionManageEvacs:       true,
	ActionSendNotifications: true,
	ActionManageFacilities:  true,
	ActionManageReports:     true,
	ActionViewDashboard:     true,
}

// Can answers the role axis only; ownership is checked separately.
func Can(role string, action Action) bool {
	role = domain.NormalizeRole(role)
	if role == domain.RoleAdmin {
		return true
	}
	if adminOnly[action] {
		return false
	}
	if role == domain.RoleEmergency {
		return staffActions[action]
	}
	return false
}

// IsStaff reports whether the role bypasses ownership checks.
func IsStaff(role string) bool {
	role = domain.NormalizeRole(role)
	return role == domain.RoleAdmin || role == domain.RoleEmergency
}

// OwnerOr allows the owner of the record plus any of the listed roles.
func OwnerOr(role string, userID, ownerID int64, roles ...string) bool {
	if userID == ownerID {
		return true
	}
	role = domain.NormalizeRole(role)
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}
