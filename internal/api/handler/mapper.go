package handler

import (
	"github.com/xlance/connects-service/internal/core/domain"
	"github.com/xlance/connects-service/internal/core/ports"
)

// Response-only types are kept apart from domain types so the JSON contract
// does not follow internal changes.

func toLedgerEntryResponse(e domain.LedgerEntry) ledgerEntryResponse {
	return ledgerEntryResponse{
		ID:           e.ID,
		Type:         string(e.Type),
		Amount:       e.Amount,
		Reason:       e.Reason,
		Date:         e.Date,
		BalanceAfter: e.BalanceAfter,
	}
}

func toMutationResponse(r *ports.MutationResult) mutationResponse {
	return mutationResponse{
		Entry:       toLedgerEntryResponse(r.Entry),
		Available:   r.Available,
		TotalEarned: r.TotalEarned,
		Replayed:    r.AlreadyApplied,
	}
}

func toFreelancerResponse(d *domain.FreelancerDetails) *freelancerDetailsRequest {
	if d == nil {
		return nil
	}
	return &freelancerDetailsRequest{
		Headline:        d.Headline,
		Skills:          append([]string{}, d.Skills...),
		YearsExperience: d.YearsExperience,
	}
}

func toClientResponse(d *domain.ClientDetails) *clientDetailsRequest {
	if d == nil {
		return nil
	}
	return &clientDetailsRequest{
		CompanyType: d.CompanyType,
		CompanyName: d.CompanyName,
		HiringNeeds: d.HiringNeeds,
	}
}

func toConnectsResponse(l *domain.ConnectsLedger) connectsResponse {
	out := connectsResponse{History: []ledgerEntryResponse{}}
	if l == nil {
		return out
	}
	out.Available = l.Available
	out.TotalEarned = l.TotalEarned
	if !l.LastRefillDate.IsZero() {
		t := l.LastRefillDate
		out.LastRefillDate = &t
	}
	for _, e := range l.History {
		out.History = append(out.History, toLedgerEntryResponse(e))
	}
	return out
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	roles := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, string(r))
	}
	return profileResponse{
		UID:                 p.UID,
		Email:               p.Email,
		DisplayName:         p.DisplayName,
		PhotoURL:            p.PhotoURL,
		Roles:               roles,
		OnboardingCompleted: p.OnboardingCompleted,
		FreelancerID:        p.FreelancerID,
		ClientID:            p.ClientID,
		FreelancerProfile:   toFreelancerResponse(p.FreelancerProfile),
		ClientProfile:       toClientResponse(p.ClientProfile),
		Connects:            toConnectsResponse(p.Connects),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		Links: profileLinks{
			Self:    "/v1/profile",
			Balance: "/v1/connects/balance",
		},
	}
}

func toDirectoryResponse(role domain.Role, entries []domain.DirectoryEntry) directoryResponse {
	out := directoryResponse{
		Role:    role.DirectoryName(),
		Count:   len(entries),
		Entries: make([]directoryEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, directoryEntryResponse{
			ID:          e.ID,
			UID:         e.UID,
			Role:        string(e.Role),
			DisplayName: e.DisplayName,
			Email:       e.Email,
			PhotoURL:    e.PhotoURL,
			Freelancer:  toFreelancerResponse(e.Freelancer),
			Client:      toClientResponse(e.Client),
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}

func toOnboardingInput(uid string, req onboardingRequest) ports.OnboardingInput {
	in := ports.OnboardingInput{UID: uid}
	for _, r := range req.Roles {
		in.Roles = append(in.Roles, domain.Role(r))
	}
	if req.Freelancer != nil {
		in.Freelancer = &domain.FreelancerDetails{
			Headline:        req.Freelancer.Headline,
			Skills:          append([]string{}, req.Freelancer.Skills...),
			YearsExperience: req.Freelancer.YearsExperience,
		}
	}
	if req.Client != nil {
		in.Client = &domain.ClientDetails{
			CompanyType: req.Client.CompanyType,
			CompanyName: req.Client.CompanyName,
			HiringNeeds: req.Client.HiringNeeds,
		}
	}
	return in
}
