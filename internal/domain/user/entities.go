package user

import "time"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleSales   Role = "Sales"
	RoleFinance Role = "Finance"
)

// Table: users
type User struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID        string    `gorm:"column:user_id;size:64;not null;uniqueIndex:ux_users_user_id" json:"id"`
	Username      string    `gorm:"column:username;size:64;not null;uniqueIndex:ux_users_username" json:"username"`
	FullName      string    `gorm:"column:full_name;size:255;not null" json:"fullName"`
	Email         string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	Role          Role      `gorm:"column:role;size:32;not null" json:"role"`
	DepartmentID  string    `gorm:"column:department_id;size:64" json:"departmentId,omitempty"`
	DesignationID string    `gorm:"column:designation_id;size:64" json:"designationId,omitempty"`
	Active        bool      `gorm:"column:active;not null" json:"active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
