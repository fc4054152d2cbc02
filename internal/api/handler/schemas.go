package handler

import "github.com/empleos/employment-portal/internal/core/domain"

// --- Request types ---

type registerRequest struct {
	Username             string `json:"username"              validate:"required"`
	Password             string `json:"password"              validate:"required"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=20"`
	Email                string `json:"email"                 validate:"omitempty,email"`
	FirstName            string `json:"first_name"            validate:"max=150"`
	LastName             string `json:"last_name"             validate:"max=150"`
	ProfileDescription   string `json:"profile_description"`
	PhoneNumber          string `json:"phone_number"          validate:"max=20"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCompanyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	NIT  string `json:"nit"  validate:"required,max=20"`
}

type createOfferRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Salary      string `json:"salary"      validate:"required"`
	Company     uint   `json:"company"     validate:"required"`
	Skills      string `json:"skills"      validate:"required"`
}

// updateOfferRequest is a partial update: nil fields keep stored values.
type updateOfferRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Salary      *string `json:"salary"`
	Company     *uint   `json:"company"`
	Skills      *string `json:"skills"`
}

type createPostulationRequest struct {
	User  uint `json:"user"  validate:"required"`
	Offer uint `json:"offer" validate:"required"`
}

// updateApplicantRequest is a partial update; the password is not updatable
// through the admin collection.
type updateApplicantRequest struct {
	Username             *string `json:"username"`
	IdentificationNumber *string `json:"identification_number"`
	Email                *string `json:"email"`
	FirstName            *string `json:"first_name"`
	LastName             *string `json:"last_name"`
	ProfileDescription   *string `json:"profile_description"`
	PhoneNumber          *string `json:"phone_number"`
}

// --- Response types ---

// applicantResponse is the public view of an applicant; the password hash
// and admin flag never leave the server.
type applicantResponse struct {
	ID                   uint   `json:"id"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	IdentificationNumber string `json:"identification_number"`
	ProfileDescription   string `json:"profile_description"`
	PhoneNumber          string `json:"phone_number"`
}

type registerResponse struct {
	Message string              `json:"message"`
	Data    applicantResponse   `json:"data"`
	Email   domain.WelcomeEmail `json:"email"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
}

func toApplicantResponse(a *domain.Applicant) applicantResponse {
	return applicantResponse{
		ID:                   a.ID,
		Username:             a.Username,
		Email:                a.Email,
		FirstName:            a.FirstName,
		LastName:             a.LastName,
		IdentificationNumber: a.IdentificationNumber,
		ProfileDescription:   a.ProfileDescription,
		PhoneNumber:          a.PhoneNumber,
	}
}

func toApplicantList(applicants []*domain.Applicant) []applicantResponse {
	out := make([]applicantResponse, len(applicants))
	for i, a := range applicants {
		out[i] = toApplicantResponse(a)
	}
	return out
}
