package dto

type UserItem struct {
	ID     uint64 `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}

type UserIdentityItem struct {
	ID     uint64 `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Login  string `json:"login"`
}

type RegisterRequest struct {
	Nom      string  `json:"nom"`
	Prenom   string  `json:"prenom"`
	Login    string  `json:"login"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}

type TokenClaimsItem struct {
	UserID uint64 `json:"userId"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}
