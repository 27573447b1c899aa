package errs

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrBookNotFound        = errors.New("book not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrTransactionNotFound = errors.New("transaction not found or does not belong to you")
	ErrRequestNotFound     = errors.New("book request not found")

	ErrNoCopies         = errors.New("no copies available to borrow")
	ErrAlreadyBorrowed  = errors.New("you already have this book borrowed")
	ErrCooldown         = errors.New("please wait 2 days before borrowing this book again")
	ErrRequestPending   = errors.New("you already have a pending request for this book")
	ErrAlreadyReturned  = errors.New("book already returned")
	ErrRequestProcessed = errors.New("request has already been processed")
	ErrActiveBorrows    = errors.New("cannot delete book with active transactions")
	ErrInvalidInventory = errors.New("available must be between 0 and quantity")
	ErrISBNExists       = errors.New("book with this isbn already exists")
	ErrReferenceInvalid = errors.New("author, category or publisher does not exist")

	ErrUserExists         = errors.New("user already exists")
	ErrAdminExists        = errors.New("admin already exists")
	ErrStudentIDExists    = errors.New("student id already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrForbidden          = errors.New("access denied")
)
