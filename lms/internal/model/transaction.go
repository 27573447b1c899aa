package model

import "time"

type TransactionStatus string

const (
	StatusActive   TransactionStatus = "active"
	StatusReturned TransactionStatus = "returned"
	// StatusOverdue is never stored, it is derived from an active row past its due date.
	StatusOverdue TransactionStatus = "overdue"
)

type Transaction struct {
	ID         int               `json:"id" db:"id"`
	UserID     int               `json:"userId" db:"user_id"`
	BookID     int               `json:"bookId" db:"book_id"`
	IssueDate  time.Time         `json:"issueDate" db:"issue_date"`
	DueDate    time.Time         `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time        `json:"returnDate" db:"return_date"`
	Status     TransactionStatus `json:"status" db:"status"`
	Fine       int               `json:"fine" db:"fine"`
}

type TransactionDetails struct {
	Transaction
	UserName      string  `json:"userName" db:"user_name"`
	UserStudentID string  `json:"userStudentId" db:"user_student_id"`
	BookTitle     string  `json:"bookTitle" db:"book_title"`
	BookAuthor    string  `json:"bookAuthor" db:"book_author"`
	BookCategory  *string `json:"bookCategory" db:"book_category"`
}

type BorrowInput struct {
	BookID      int    `json:"bookId" validate:"required,gt=0"`
	RequestNote string `json:"requestNote" validate:"max=500"`
}

type IssueInput struct {
	BookID  int        `json:"bookId" validate:"required,gt=0"`
	UserID  int        `json:"userId" validate:"required,gt=0"`
	DueDate *time.Time `json:"dueDate"`
}

type ReturnInput struct {
	TransactionID int `json:"transactionId" validate:"required,gt=0"`
}

// BorrowResult is either a new transaction or, past the soft limit, a pending request.
type BorrowResult struct {
	Message          string       `json:"message"`
	RequiresApproval bool         `json:"requiresApproval"`
	Transaction      *Transaction `json:"transaction,omitempty"`
	Request          *BookRequest `json:"request,omitempty"`
}

type ReturnResult struct {
	Message string `json:"message"`
	Fine    int    `json:"fine"`
}

// BorrowState is what the borrow policy needs to know about a user and a book.
type BorrowState struct {
	BookExists        bool       `db:"book_exists"`
	Available         int        `db:"available"`
	HasActive         bool       `db:"has_active"`
	LastReturnedAt    *time.Time `db:"last_returned_at"`
	ActiveCount       int        `db:"active_count"`
	HasPendingRequest bool       `db:"has_pending_request"`
}

type FineQuote struct {
	TransactionID int               `json:"transactionId"`
	DueDate       time.Time         `json:"dueDate"`
	Status        TransactionStatus `json:"status"`
	DaysOverdue   int               `json:"daysOverdue"`
	Fine          int               `json:"fine"`
}
