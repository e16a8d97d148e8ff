package dto

import "github.com/ricemart/notes-api/internal/models"

// ErrorResponse is the single error envelope every failure is converted to
// at the handler boundary.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IDTokenRequest carries a Firebase ID token obtained by the client after a
// direct sign-in against the identity provider.
type IDTokenRequest struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileUser struct {
	UID            string `json:"uid"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	EmailVerified  bool   `json:"emailVerified"`
	CreationTime   string `json:"creationTime"`
	LastSignInTime string `json:"lastSignInTime"`
}

type ProfileResponse struct {
	Msg  string      `json:"msg"`
	User ProfileUser `json:"user"`
}

type CreateNoteRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content"`
}

// UpdateNoteRequest is a partial merge: nil fields are left untouched, a
// present title of "" clears the title.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NotesResponse struct {
	Notes []models.Note `json:"notes"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
