package user

import "slices"

type Permission string

const (
	PermissionViewOwnProfile Permission = "profile.view_own"

	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	PermissionMasterView   Permission = "master.view"
	PermissionMasterManage Permission = "master.manage"

	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	PermissionLeaveView   Permission = "leave.view"
	PermissionLeaveManage Permission = "leave.manage"

	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"

	PermissionPayrollView     Permission = "payroll.view"
	PermissionPayrollGenerate Permission = "payroll.generate"

	PermissionUserManage Permission = "user.manage"
)

var readPermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionEmployeeView,
	PermissionMasterView,
	PermissionAttendanceView,
	PermissionLeaveView,
	PermissionHolidayView,
	PermissionPayrollView,
}

var writePermissions = []Permission{
	PermissionEmployeeManage,
	PermissionMasterManage,
	PermissionAttendanceManage,
	PermissionLeaveManage,
	PermissionHolidayManage,
	PermissionPayrollGenerate,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin:  slices.Concat(readPermissions, writePermissions, []Permission{PermissionUserManage}),
	RoleHR:     slices.Concat(readPermissions, writePermissions),
	RoleViewer: slices.Clone(readPermissions),
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	return slices.Contains(permissions, permission)
}
