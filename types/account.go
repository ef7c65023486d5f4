package types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"user_id"`
}

type CheckAuthResponse struct {
	Authenticated bool `json:"authenticated"`
	UserID        uint `json:"user_id,omitempty"`
}

type SearchAgainResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// AutocompleteItem 机场联想结果
type AutocompleteItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
