package httpapi

import (
	"net/http"

	"github.com/gafferhq/gaffer/internal/domain/competition"
	"github.com/gafferhq/gaffer/internal/usecase"
)

type tableRowRequest struct {
	Club         string `json:"club" validate:"required,max=100"`
	Played       int    `json:"played" validate:"min=0"`
	Won          int    `json:"won" validate:"min=0"`
	Drawn        int    `json:"drawn" validate:"min=0"`
	Lost         int    `json:"lost" validate:"min=0"`
	GoalsFor     int    `json:"goals_for" validate:"min=0"`
	GoalsAgainst int    `json:"goals_against" validate:"min=0"`
}

type createCompetitionRequest struct {
	Name   string            `json:"name" validate:"required,max=100"`
	Season string            `json:"season" validate:"omitempty,max=20"`
	Format string            `json:"format" validate:"required,oneof=league knockout"`
	Table  []tableRowRequest `json:"table" validate:"omitempty,dive"`
}

type updateCompetitionRequest struct {
	Name   *string           `json:"name" validate:"omitempty,max=100"`
	Season *string           `json:"season" validate:"omitempty,max=20"`
	Format *string           `json:"format" validate:"omitempty,oneof=league knockout"`
	Table  []tableRowRequest `json:"table" validate:"omitempty,dive"`
}

func toTableRows(rows []tableRowRequest) []competition.TableRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]competition.TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, competition.TableRow{
			Club:         row.Club,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
		})
	}
	return out
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createCompetitionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.competitionService.Create(ctx, competition.Competition{
		TeamID: save.ID,
		Name:   req.Name,
		Season: req.Season,
		Format: competition.Format(req.Format),
		Table:  toTableRows(req.Table),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create competition failed", "team_id", save.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(created))
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	competitions, err := h.competitionService.ListByTeam(ctx, save.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	item, err := h.competitionService.GetByID(ctx, r.PathValue("competitionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCompetition")
	defer span.End()

	var req updateCompetitionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateCompetitionInput{
		Name:   req.Name,
		Season: req.Season,
		Table:  toTableRows(req.Table),
	}
	if req.Format != nil {
		format := competition.Format(*req.Format)
		input.Format = &format
	}

	updated, err := h.competitionService.Update(ctx, r.PathValue("competitionID"), input)
	if err != nil {
		h.logger.WarnContext(ctx, "update competition failed", "competition_id", r.PathValue("competitionID"), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(updated))
}

func (h *Handler) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCompetition")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	if err := h.competitionService.Delete(ctx, competitionID); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": competitionID})
}
