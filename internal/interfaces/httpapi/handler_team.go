package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gafferhq/gaffer/internal/domain/team"
	"github.com/gafferhq/gaffer/internal/usecase"
)

type createTeamRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartedOn string `json:"started_on" validate:"required"`
	Currency  string `json:"currency" validate:"omitempty,len=3"`
}

type updateTeamRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

type advanceDateRequest struct {
	CurrentlyOn string `json:"currently_on" validate:"required"`
}

// ownedTeam resolves the team and checks it belongs to the caller. A
// foreign team reads as not found so save IDs are not probeable.
func (h *Handler) ownedTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	principal, ok := principalFromContext(ctx)
	if !ok {
		return team.Team{}, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized)
	}
	if item.UserID != principal.UserID {
		return team.Team{}, fmt.Errorf("%w: team %s", usecase.ErrNotFound, teamID)
	}
	return item, nil
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startedOn, err := parseDate(req.StartedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		UserID:    principal.UserID,
		Name:      req.Name,
		StartedOn: startedOn,
		Currency:  req.Currency,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	teams, err := h.teamService.ListByUser(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	item, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	item, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, item.ID, usecase.UpdateTeamInput{
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	item, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.Delete(ctx, item.ID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": item.ID})
}

func (h *Handler) AdvanceTeamDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdvanceTeamDate")
	defer span.End()

	item, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req advanceDateRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	currentlyOn, err := parseDate(req.CurrentlyOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamService.AdvanceCurrentDate(ctx, item.ID, currentlyOn)
	if err != nil {
		h.logger.WarnContext(ctx, "advance team date failed", "team_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ImportTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportTeamSquad")
	defer span.End()

	item, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req importSquadRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportSquad(ctx, item.ID, req.ClubName)
	if err != nil {
		h.logger.WarnContext(ctx, "import squad failed", "team_id", item.ID, "club", req.ClubName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}

type importSquadRequest struct {
	ClubName string `json:"club_name" validate:"required,max=100"`
}
