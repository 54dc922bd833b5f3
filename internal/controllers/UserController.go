package controllers

import (
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"net/http"
)

type UserController struct {
	ApiController
	service services.UserServiceInterface
}

func NewUserController(logger providers.Logger, service services.UserServiceInterface) *UserController {
	return &UserController{
		ApiController: ApiController{logger: logger},
		service:       service,
	}
}

func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := uc.decode(w, r, &in, false); err != nil {
		uc.writeError(w, r, err)
		return
	}
	u, err := uc.service.Create(in)
	if err != nil {
		uc.writeError(w, r, err)
		return
	}
	uc.writeJSON(w, http.StatusCreated, u)
}

func (uc *UserController) Me(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		uc.writeError(w, r, err)
		return
	}
	u, err := uc.service.Get(uid)
	if err != nil {
		uc.writeError(w, r, err)
		return
	}
	uc.writeJSON(w, http.StatusOK, u)
}
