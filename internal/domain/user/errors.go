package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrNotResourceOwner       = errors.New("resource belongs to another user")
	ErrStoreRequired          = errors.New("user is not assigned to a store")
)
