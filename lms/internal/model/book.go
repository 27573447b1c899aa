package model

import "time"

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Book struct {
	ID            int       `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	AuthorID      int       `json:"authorId" db:"author_id"`
	AuthorName    string    `json:"authorName" db:"author_name"`
	ISBN          string    `json:"isbn" db:"isbn"`
	CategoryID    *int      `json:"categoryId" db:"category_id"`
	CategoryName  *string   `json:"categoryName" db:"category_name"`
	PublisherID   *int      `json:"publisherId" db:"publisher_id"`
	PublisherName *string   `json:"publisherName" db:"publisher_name"`
	PublishYear   *int      `json:"publishYear" db:"publish_year"`
	Quantity      int       `json:"quantity" db:"quantity"`
	Available     int       `json:"available" db:"available"`
	Description   string    `json:"description" db:"description"`
	CoverImage    string    `json:"coverImage" db:"cover_image"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type BookInput struct {
	Title       string `json:"title" validate:"required"`
	AuthorID    int    `json:"authorId" validate:"required,gt=0"`
	ISBN        string `json:"isbn" validate:"required"`
	CategoryID  *int   `json:"categoryId" validate:"omitempty,gt=0"`
	PublisherID *int   `json:"publisherId" validate:"omitempty,gt=0"`
	PublishYear *int   `json:"publishYear" validate:"omitempty,gt=0"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	// Available is taken on update only, create starts with every copy on the shelf.
	Available   *int   `json:"available"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

type BookFilter struct {
	Search string
	Page   int
	Size   int
}

// Lookup is an author, category or publisher.
type Lookup struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
