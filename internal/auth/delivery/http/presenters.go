package http

import (
	"taskflow-pro/internal/auth"
	"taskflow-pro/internal/model"
)

type loginReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Name: r.Name, Email: r.Email}
}

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(sc model.Scope) userResp {
	return userResp{ID: sc.UserID, Name: sc.Username, Email: sc.Email}
}

type loginResp struct {
	Token  string   `json:"token"`
	User   userResp `json:"user"`
	Seeded int      `json:"seeded_tasks"`
}

func newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{Token: out.Token, User: newUserResp(out.User), Seeded: out.Seeded}
}
