package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type BookRequest struct {
	ID          int           `json:"id" db:"id"`
	UserID      int           `json:"userId" db:"user_id"`
	BookID      int           `json:"bookId" db:"book_id"`
	RequestNote string        `json:"requestNote" db:"request_note"`
	Status      RequestStatus `json:"status" db:"status"`
	RequestDate time.Time     `json:"requestDate" db:"request_date"`
	ReviewedBy  *int          `json:"reviewedBy" db:"reviewed_by"`
	ReviewDate  *time.Time    `json:"reviewDate" db:"review_date"`
	ReviewNote  *string       `json:"reviewNote" db:"review_note"`
}

type BookRequestDetails struct {
	BookRequest
	UserName      string `json:"userName" db:"user_name"`
	UserEmail     string `json:"userEmail" db:"user_email"`
	StudentID     string `json:"studentId" db:"student_id"`
	BookTitle     string `json:"bookTitle" db:"book_title"`
	BookISBN      string `json:"bookIsbn" db:"book_isbn"`
	BookAvailable int    `json:"bookAvailable" db:"book_available"`
	ActiveBorrows int    `json:"activeBorrows" db:"active_borrows"`
}

type ReviewInput struct {
	ReviewNote string     `json:"reviewNote" validate:"max=500"`
	DueDate    *time.Time `json:"dueDate"`
}

// Approval carries everything the repository writes when a request is approved.
type Approval struct {
	RequestID  int
	ReviewerID int
	ReviewNote string
	ReviewedAt time.Time
	IssueDate  time.Time
	DueDate    time.Time
}

type Rejection struct {
	RequestID  int
	ReviewerID int
	ReviewNote string
	ReviewedAt time.Time
}
