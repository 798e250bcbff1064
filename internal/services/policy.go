package services

import "github.com/yukikurage/task-tracker/internal/models"

// Operation names a role-gated action.
type Operation string

const (
	OpCreateUser        Operation = "create_user"
	OpCreateTeam        Operation = "create_team"
	OpCreateTask        Operation = "create_task"
	OpLookupNames       Operation = "lookup_names"
	OpViewData          Operation = "view_data"
	OpDashboardAdmin    Operation = "dashboard_admin"
	OpDashboardEmployee Operation = "dashboard_employee"
	OpDashboardManager  Operation = "dashboard_manager"
)

var policy = map[Operation][]models.Role{
	OpCreateUser:        {models.RoleAdmin},
	OpCreateTeam:        {models.RoleAdmin, models.RoleEmployee},
	OpCreateTask:        {models.RoleAdmin, models.RoleEmployee},
	OpLookupNames:       {models.RoleAdmin, models.RoleEmployee},
	OpViewData:          {models.RoleAdmin, models.RoleManager, models.RoleEmployee},
	OpDashboardAdmin:    {models.RoleAdmin},
	OpDashboardEmployee: {models.RoleEmployee},
	OpDashboardManager:  {models.RoleManager},
}

// Allowed reports whether role may run op. Unknown operations are denied.
func Allowed(role models.Role, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// MenuItem is one entry of the role dependent navigation menu.
type MenuItem struct {
	Label     string    `json:"label"`
	Operation Operation `json:"operation"`
}

var menu = []struct {
	label string
	ops   []Operation
}{
	{"Add User", []Operation{OpCreateUser}},
	{"Add Team", []Operation{OpCreateTeam}},
	{"Add Task", []Operation{OpCreateTask}},
	{"View Data", []Operation{OpViewData}},
	{"Dashboard", []Operation{OpDashboardAdmin, OpDashboardEmployee, OpDashboardManager}},
}

// Menu lists the entries role may open, in display order.
func Menu(role models.Role) []MenuItem {
	items := make([]MenuItem, 0, len(menu))
	for _, entry := range menu {
		for _, op := range entry.ops {
			if Allowed(role, op) {
				items = append(items, MenuItem{Label: entry.label, Operation: op})
				break
			}
		}
	}
	return items
}

// Actor is the authenticated caller of a service method.
type Actor struct {
	UserID   uint64
	UserName string
	Role     models.Role
}

func authorize(actor Actor, op Operation) error {
	if !Allowed(actor.Role, op) {
		return ErrForbidden
	}
	return nil
}
