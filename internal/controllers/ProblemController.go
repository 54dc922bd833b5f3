package controllers

import (
	"dsatrack/internal/models"
	"dsatrack/internal/patterns"
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"fmt"
	"net/http"

	"github.com/spf13/cast"
)

type ProblemController struct {
	ApiController
	service services.ProblemServiceInterface
}

type reviseRequest struct {
	Notes string `json:"notes"`
}

type autoTagResponse struct {
	Tagged int `json:"tagged"`
}

func NewProblemController(logger providers.Logger, service services.ProblemServiceInterface) *ProblemController {
	return &ProblemController{
		ApiController: ApiController{logger: logger},
		service:       service,
	}
}

// filterFromQuery reads pattern, topic, difficulty and solved from the query string.
func filterFromQuery(r *http.Request) (services.ProblemFilter, error) {
	q := r.URL.Query()
	filter := services.ProblemFilter{
		Pattern: q.Get("pattern"),
		Topic:   q.Get("topic"),
	}
	if d := q.Get("difficulty"); d != "" {
		filter.Difficulty = models.Difficulty(d)
		if !filter.Difficulty.Valid() {
			return filter, fmt.Errorf("%w: unknown difficulty %q", services.ErrValidation, d)
		}
	}
	if s := q.Get("solved"); s != "" {
		solved, err := cast.ToBoolE(s)
		if err != nil {
			return filter, fmt.Errorf("%w: solved must be a boolean", services.ErrValidation)
		}
		filter.Solved = &solved
	}
	return filter, nil
}

func (pc *ProblemController) List(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, pc.service.List(uid, filter))
}

func (pc *ProblemController) Get(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	p, err := pc.service.Get(uid, r.PathValue("id"))
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, p)
}

func (pc *ProblemController) Create(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	var in services.ProblemInput
	if err = pc.decode(w, r, &in, false); err != nil {
		pc.writeError(w, r, err)
		return
	}
	p, err := pc.service.Create(uid, in)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusCreated, p)
}

func (pc *ProblemController) Update(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	var in services.ProblemInput
	if err = pc.decode(w, r, &in, false); err != nil {
		pc.writeError(w, r, err)
		return
	}
	p, err := pc.service.Update(uid, r.PathValue("id"), in)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, p)
}

func (pc *ProblemController) Delete(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	if err = pc.service.Delete(uid, r.PathValue("id")); err != nil {
		pc.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (pc *ProblemController) MarkSolved(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	p, err := pc.service.MarkSolved(uid, r.PathValue("id"))
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, p)
}

func (pc *ProblemController) Revise(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	var req reviseRequest
	if err = pc.decode(w, r, &req, true); err != nil {
		pc.writeError(w, r, err)
		return
	}
	p, err := pc.service.Revise(uid, r.PathValue("id"), req.Notes)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, p)
}

func (pc *ProblemController) AutoTagAll(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	tagged, err := pc.service.AutoTagAll(uid)
	if err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, autoTagResponse{Tagged: tagged})
}

// SuggestPatterns tags an unsaved draft and returns the matching pattern names.
func (pc *ProblemController) SuggestPatterns(w http.ResponseWriter, r *http.Request) {
	var text patterns.ProblemText
	if err := pc.decode(w, r, &text, false); err != nil {
		pc.writeError(w, r, err)
		return
	}
	pc.writeJSON(w, http.StatusOK, pc.service.SuggestPatterns(text))
}

func (pc *ProblemController) Patterns(w http.ResponseWriter, r *http.Request) {
	pc.writeJSON(w, http.StatusOK, patterns.Definitions())
}
