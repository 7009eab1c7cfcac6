package dto

import (
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// UserRequest represents the API request for creating or updating a user
type UserRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber string  `json:"phoneNumber"`
	CountryCode string  `json:"countryCode"`
	Package     string  `json:"package"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	DateOfBirth string  `json:"dateOfBirth"`
	TimeOfBirth string  `json:"timeOfBirth"`
	BirthPlace  string  `json:"birthPlace"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Balance     string  `json:"balance"`
}

// UserStatusRequest represents the API request for toggling a user's status
type UserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive Blocked"`
}

// BulkUserRequest represents the API request for a bulk user operation
type BulkUserRequest struct {
	Operation string   `json:"operation" binding:"required"`
	UserIDs   []uint64 `json:"userIds" binding:"required"`
}

// BulkUserResponse reports the outcome of a bulk user operation
type BulkUserResponse struct {
	Success   bool   `json:"success"`
	Operation string `json:"operation"`
	Count     int    `json:"count"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	CountryCode      string    `json:"countryCode,omitempty"`
	Package          string    `json:"package"`
	Status           string    `json:"status"`
	City             string    `json:"city,omitempty"`
	Country          string    `json:"country,omitempty"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	TimeOfBirth      string    `json:"timeOfBirth,omitempty"`
	BirthPlace       string    `json:"birthPlace,omitempty"`
	Latitude         float64   `json:"latitude,omitempty"`
	Longitude        float64   `json:"longitude,omitempty"`
	WalletBalance    string    `json:"walletBalance"`
	TransactionCount uint64    `json:"transactionCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UserListResponse represents one page of users
type UserListResponse struct {
	Users      []UserResponse     `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		CountryCode:      user.CountryCode,
		Package:          string(user.Package),
		Status:           string(user.Status),
		City:             user.City,
		Country:          user.Country,
		DateOfBirth:      user.Birth.DateOfBirth,
		TimeOfBirth:      user.Birth.TimeOfBirth,
		BirthPlace:       user.Birth.BirthPlace,
		Latitude:         user.Birth.Latitude,
		Longitude:        user.Birth.Longitude,
		WalletBalance:    user.FormattedBalance(),
		TransactionCount: user.TransactionCount,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}
