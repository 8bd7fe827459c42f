package dto

type LoginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type User struct {
	PublicID string `json:"public_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"admin"`
}

type PublicIDReq struct {
	PublicID string `path:"public_id" validate:"required,max=64"`
}

type CreateUserReq struct {
	Name     string `json:"name" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type CreateUserResp struct {
	User User `json:"user"`
}

type ListUserResp struct {
	Users []User `json:"users"`
}

type GetUserResp struct {
	User User `json:"user"`
}

type MessageResp struct {
	Message string `json:"message"`
}
