package user

// RegisterRequest is the signup payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"     example:"John Doe"`
	Email    string `json:"email"    example:"john@example.com"`
	Phone    string `json:"phone"    example:"+1234567890"`
	Address  string `json:"address"  example:"123 Main St, City, State"`
	Password string `json:"password" example:"password123"`
}

func (r RegisterRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "Name can't be blank")
	}
	if r.Email == "" {
		msgs = append(msgs, "Email can't be blank")
	}
	if r.Phone == "" {
		msgs = append(msgs, "Phone can't be blank")
	}
	if r.Address == "" {
		msgs = append(msgs, "Address can't be blank")
	}
	if len(r.Password) < 6 {
		msgs = append(msgs, "Password is too short (minimum is 6 characters)")
	}
	return msgs
}

// LoginRequest is the credential payload.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"john@example.com"`
	Password string `json:"password" example:"password123"`
}

// UpdateProfileRequest is the self-service profile update; blank fields keep
// their current value.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AdminUpdateUserRequest is the admin-side update; reward points are adjusted
// through the grant endpoint, never written directly.
// swagger:model AdminUpdateUserRequest
type AdminUpdateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IsAdmin *bool  `json:"is_admin"`
}

// GrantPointsRequest adds points to a balance.
// swagger:model GrantPointsRequest
type GrantPointsRequest struct {
	Points int `json:"points" example:"25"`
}

// AuthResponse is the login/register payload.
// swagger:model AuthResponse
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
