package models

import "time"

type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=50"`
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Password  string   `json:"password" validate:"required,min=6"`
	Role      UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the flat login payload the frontend stores as its session.
type AuthResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Role        UserRole `json:"role"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	AccessToken string   `json:"accessToken"`
}

// UpdateProfileRequest applies only the fields that were present in the body.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
}

type PublicProfile struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserListItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required"`
}

type CreatePostRequest struct {
	Title   string     `json:"title" validate:"required,max=255"`
	Content string     `json:"content" validate:"required"`
	Excerpt string     `json:"excerpt"`
	Status  PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
	TagIDs  []uint     `json:"tagIds"`
}

// UpdatePostRequest distinguishes absent fields (nil) from zero values.
// TagIDs nil leaves the tag set alone, an empty slice clears it.
type UpdatePostRequest struct {
	Title   *string     `json:"title"`
	Content *string     `json:"content"`
	Excerpt *string     `json:"excerpt"`
	Status  *PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
	TagIDs  []uint      `json:"tagIds"`
}

type CreateCommentRequest struct {
	PostID     uint   `json:"postId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	AuthorName string `json:"authorName" validate:"required,max=100"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type TagWithCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PostCount int    `json:"postCount"`
}

type CheckUsernameResponse struct {
	Available bool `json:"available"`
}
