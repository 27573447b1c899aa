package model

import "time"

type BookInventory struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	ISBN          string  `json:"isbn" db:"isbn"`
	AuthorName    string  `json:"authorName" db:"author_name"`
	CategoryName  *string `json:"categoryName" db:"category_name"`
	PublisherName *string `json:"publisherName" db:"publisher_name"`
	Quantity      int     `json:"quantity" db:"quantity"`
	Available     int     `json:"available" db:"available"`
	Borrowed      int     `json:"borrowed" db:"borrowed"`
}

// LoanReport is a row of the active and overdue transaction views.
type LoanReport struct {
	TransactionID int       `json:"transactionId" db:"transaction_id"`
	UserID        int       `json:"userId" db:"user_id"`
	UserName      string    `json:"userName" db:"user_name"`
	StudentID     string    `json:"studentId" db:"student_id"`
	BookID        int       `json:"bookId" db:"book_id"`
	BookTitle     string    `json:"bookTitle" db:"book_title"`
	IssueDate     time.Time `json:"issueDate" db:"issue_date"`
	DueDate       time.Time `json:"dueDate" db:"due_date"`
	DaysOverdue   int       `json:"daysOverdue" db:"days_overdue"`
	CurrentFine   int       `json:"currentFine" db:"current_fine"`
}

type UserBorrowingStats struct {
	UserID            int    `json:"userId" db:"user_id"`
	Name              string `json:"name" db:"name"`
	Email             string `json:"email" db:"email"`
	StudentID         string `json:"studentId" db:"student_id"`
	TotalTransactions int    `json:"totalTransactions" db:"total_transactions"`
	ActiveBorrows     int    `json:"activeBorrows" db:"active_borrows"`
	OverdueBorrows    int    `json:"overdueBorrows" db:"overdue_borrows"`
	TotalFines        int    `json:"totalFines" db:"total_fines"`
}

type PopularBook struct {
	BookID       int     `json:"bookId" db:"book_id"`
	Title        string  `json:"title" db:"title"`
	AuthorName   string  `json:"authorName" db:"author_name"`
	CategoryName *string `json:"categoryName" db:"category_name"`
	TotalBorrows int     `json:"totalBorrows" db:"total_borrows"`
}

type CategoryStats struct {
	CategoryID      int    `json:"categoryId" db:"category_id"`
	CategoryName    string `json:"categoryName" db:"category_name"`
	TotalBooks      int    `json:"totalBooks" db:"total_books"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
	TotalBorrows    int    `json:"totalBorrows" db:"total_borrows"`
}

type MonthlySummary struct {
	TransactionYear   int `json:"transactionYear" db:"transaction_year"`
	TransactionMonth  int `json:"transactionMonth" db:"transaction_month"`
	TotalTransactions int `json:"totalTransactions" db:"total_transactions"`
	ReturnedCount     int `json:"returnedCount" db:"returned_count"`
	UniqueUsers       int `json:"uniqueUsers" db:"unique_users"`
	TotalFines        int `json:"totalFines" db:"total_fines"`
}

type OverallStats struct {
	TotalBooks          int `json:"totalBooks" db:"total_books"`
	TotalCopies         int `json:"totalCopies" db:"total_copies"`
	AvailableCopies     int `json:"availableCopies" db:"available_copies"`
	TotalMembers        int `json:"totalMembers" db:"total_members"`
	ActiveTransactions  int `json:"activeTransactions" db:"active_transactions"`
	OverdueTransactions int `json:"overdueTransactions" db:"overdue_transactions"`
	PendingRequests     int `json:"pendingRequests" db:"pending_requests"`
	TotalFines          int `json:"totalFines" db:"total_fines"`
}

type AdminDashboard struct {
	OverallStats         OverallStats         `json:"overallStats"`
	RecentTransactions   []TransactionDetails `json:"recentTransactions"`
	TopBooks             []PopularBook        `json:"topBooks"`
	CategoryDistribution []CategoryStats      `json:"categoryDistribution"`
}

type UserDashboard struct {
	UserStats          UserBorrowingStats `json:"userStats"`
	ActiveTransactions []LoanReport       `json:"activeTransactions"`
}

type SearchFilter struct {
	SearchTerm    string `query:"searchTerm"`
	Category      string `query:"category"`
	AvailableOnly bool   `query:"availableOnly"`
}

type HistoryFilter struct {
	UserID    *int
	BookID    *int
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type AuditLog struct {
	ID        int       `json:"id" db:"id"`
	EventID   string    `json:"eventId" db:"event_id"`
	EntityID  int       `json:"entityId" db:"entity_id"`
	Action    string    `json:"action" db:"action"`
	ActorID   int       `json:"actorId" db:"actor_id"`
	Details   string    `json:"details" db:"details"`
	ChangedAt time.Time `json:"changedAt" db:"changed_at"`
}
