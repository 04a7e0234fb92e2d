package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Connects ---

type mutationRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,max=200"`
}

type ledgerEntryResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	Reason       string    `json:"reason"`
	Date         time.Time `json:"date"`
	BalanceAfter int64     `json:"balance_after"`
}

type mutationResponse struct {
	Entry       ledgerEntryResponse `json:"entry"`
	Available   int64               `json:"available"`
	TotalEarned int64               `json:"total_earned"`
	Replayed    bool                `json:"replayed"`
}

type balanceResponse struct {
	Available int64 `json:"available"`
}

type costResponse struct {
	Budget int64 `json:"budget"`
	Cost   int64 `json:"cost"`
}

// --- Onboarding ---

type freelancerDetailsRequest struct {
	Headline        string   `json:"headline"         validate:"required,max=120"`
	Skills          []string `json:"skills"           validate:"max=30,dive,required"`
	YearsExperience int      `json:"years_experience" validate:"min=0,max=80"`
}

type clientDetailsRequest struct {
	CompanyType string `json:"company_type" validate:"required"`
	CompanyName string `json:"company_name"`
	HiringNeeds string `json:"hiring_needs" validate:"max=500"`
}

type onboardingRequest struct {
	Roles      []string                  `json:"roles" validate:"required,min=1,max=2,dive,oneof=freelancer client"`
	Freelancer *freelancerDetailsRequest `json:"freelancer"`
	Client     *clientDetailsRequest     `json:"client"`
}

type onboardingResponse struct {
	Profile          profileResponse `json:"profile"`
	Assigned         []string        `json:"assigned"`
	AlreadyCompleted bool            `json:"already_completed"`
}

// --- Profiles ---

type profileLinks struct {
	Self    string `json:"self"`
	Balance string `json:"balance"`
}

type connectsResponse struct {
	Available      int64                 `json:"available"`
	TotalEarned    int64                 `json:"total_earned"`
	LastRefillDate *time.Time            `json:"last_refill_date,omitempty"`
	History        []ledgerEntryResponse `json:"history"`
}

type profileResponse struct {
	UID                 string                    `json:"uid"`
	Email               string                    `json:"email"`
	DisplayName         string                    `json:"display_name"`
	PhotoURL            string                    `json:"photo_url,omitempty"`
	Roles               []string                  `json:"roles"`
	OnboardingCompleted bool                      `json:"onboarding_completed"`
	FreelancerID        string                    `json:"freelancer_id,omitempty"`
	ClientID            string                    `json:"client_id,omitempty"`
	FreelancerProfile   *freelancerDetailsRequest `json:"freelancer_profile,omitempty"`
	ClientProfile       *clientDetailsRequest     `json:"client_profile,omitempty"`
	Connects            connectsResponse          `json:"connects"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
	Links               profileLinks              `json:"_links"`
}

type directoryEntryResponse struct {
	ID          string                    `json:"id"`
	UID         string                    `json:"uid"`
	Role        string                    `json:"role"`
	DisplayName string                    `json:"display_name"`
	Email       string                    `json:"email"`
	PhotoURL    string                    `json:"photo_url,omitempty"`
	Freelancer  *freelancerDetailsRequest `json:"freelancer,omitempty"`
	Client      *clientDetailsRequest     `json:"client,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type directoryResponse struct {
	Role    string                   `json:"role"`
	Count   int                      `json:"count"`
	Entries []directoryEntryResponse `json:"entries"`
}
