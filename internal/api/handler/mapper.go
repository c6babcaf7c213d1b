package handler

import (
	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// --- Request → Service input ---

func toUserInput(req createUserRequest) ports.UserInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return ports.UserInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    domain.Role(req.Role),
		Company: req.Company,
		City:    req.City,
		Website: req.Website,
		Phone:   req.Phone,
		Active:  active,
	}
}

func toUserPatch(req updateUserRequest) ports.UserPatch {
	patch := ports.UserPatch{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		City:    req.City,
		Website: req.Website,
		Phone:   req.Phone,
		Active:  req.Active,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	return patch
}

func toFilterPatch(req setFiltersRequest) ports.FilterPatch {
	patch := ports.FilterPatch{
		Search: req.Search,
		Cities: req.Cities,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}
	return patch
}

// --- Service result → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Company:   u.Company,
		City:      u.City,
		Website:   u.Website,
		Phone:     u.Phone,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toListResponse(view ports.StoreView) listUsersResponse {
	data := make([]userResponse, len(view.Users))
	for i, u := range view.Users {
		data[i] = toUserResponse(u)
	}
	cities := view.Filters.Cities
	if cities == nil {
		cities = []string{}
	}
	return listUsersResponse{
		Data:    data,
		Total:   view.Total,
		Visible: len(data),
		Loading: view.Loading,
		Error:   view.Error,
		Filters: filtersResponse{
			Search: view.Filters.Search,
			Cities: cities,
			Role:   string(view.Filters.Role),
		},
		Sort: sortResponse{
			Field: string(view.Sort.Field),
			Order: string(view.Sort.Order),
		},
	}
}

func toSessionResponse(state domain.SessionState) sessionResponse {
	return sessionResponse{
		Authenticated: state.Authenticated,
		Role:          string(state.Role),
		Username:      state.Username,
	}
}
