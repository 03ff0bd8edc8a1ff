package proto

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type SignupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SignupResponse struct {
	UserId       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest leaves nil fields unchanged.
type UpdateProfileRequest struct {
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type UpdateProfileResponse struct{}

type FindUsersRequest struct {
	Filter string `json:"filter"`
}

type UserInfo struct {
	Id        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type FindUsersResponse struct {
	Users []*UserInfo `json:"users"`
}

type GetBalanceRequest struct{}

// GetBalanceResponse carries the balance in minor units.
type GetBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// TransferRequest carries the amount in display units.
type TransferRequest struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type TransferResponse struct{}
