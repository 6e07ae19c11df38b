package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionUserManage))
	assert.True(t, HasPermission(RoleHR, PermissionPayrollGenerate))
	assert.False(t, HasPermission(RoleHR, PermissionUserManage))
	assert.True(t, HasPermission(RoleViewer, PermissionPayrollView))
	assert.False(t, HasPermission(RoleViewer, PermissionAttendanceManage))
	assert.False(t, HasPermission(Role("owner"), PermissionPayrollView))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleViewer.IsValid())
	assert.False(t, Role("").IsValid())
}
