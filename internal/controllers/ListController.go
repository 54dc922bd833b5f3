package controllers

import (
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"net/http"
)

type ListController struct {
	ApiController
	service services.ListServiceInterface
}

func NewListController(logger providers.Logger, service services.ListServiceInterface) *ListController {
	return &ListController{
		ApiController: ApiController{logger: logger},
		service:       service,
	}
}

func (lc *ListController) Lists(w http.ResponseWriter, r *http.Request) {
	lc.writeJSON(w, http.StatusOK, lc.service.Lists())
}

func (lc *ListController) List(w http.ResponseWriter, r *http.Request) {
	l, err := lc.service.List(r.PathValue("id"))
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	lc.writeJSON(w, http.StatusOK, l)
}

func (lc *ListController) Import(w http.ResponseWriter, r *http.Request) {
	var list models.CuratedList
	if err := lc.decode(w, r, &list, false); err != nil {
		lc.writeError(w, r, err)
		return
	}
	saved, err := lc.service.PutList(&list)
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	lc.writeJSON(w, http.StatusCreated, saved)
}

func (lc *ListController) Progress(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	p, err := lc.service.Progress(uid, r.PathValue("id"))
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	lc.writeJSON(w, http.StatusOK, p)
}

func (lc *ListController) ToggleCompleted(w http.ResponseWriter, r *http.Request) {
	lc.updateProgress(w, r, lc.service.ToggleCompleted)
}

func (lc *ListController) IncrementRevision(w http.ResponseWriter, r *http.Request) {
	lc.updateProgress(w, r, lc.service.IncrementRevision)
}

func (lc *ListController) updateProgress(w http.ResponseWriter, r *http.Request, update func(userID, listID, problemID string) (*models.ProblemProgress, error)) {
	uid, err := userID(r)
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	pp, err := update(uid, r.PathValue("id"), r.PathValue("problemId"))
	if err != nil {
		lc.writeError(w, r, err)
		return
	}
	lc.writeJSON(w, http.StatusOK, pp)
}
