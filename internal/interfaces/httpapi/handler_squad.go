package httpapi

import (
	"net/http"

	"github.com/gafferhq/gaffer/internal/domain/squad"
	"github.com/gafferhq/gaffer/internal/usecase"
)

type createSquadRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	PlayerIDs []string `json:"player_ids" validate:"omitempty,dive,required"`
}

type updateSquadRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=100"`
	PlayerIDs []string `json:"player_ids" validate:"omitempty,dive,required"`
}

func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSquad")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createSquadRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.squadService.Create(ctx, squad.Squad{
		TeamID:    save.ID,
		Name:      req.Name,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create squad failed", "team_id", save.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, squadToDTO(created))
}

func (h *Handler) ListSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquads")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	squads, err := h.squadService.ListByTeam(ctx, save.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]squadDTO, 0, len(squads))
	for _, s := range squads {
		items = append(items, squadToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquad")
	defer span.End()

	item, err := h.squadService.GetByID(ctx, r.PathValue("squadID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) UpdateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSquad")
	defer span.End()

	var req updateSquadRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.squadService.Update(ctx, r.PathValue("squadID"), usecase.UpdateSquadInput{
		Name:      req.Name,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update squad failed", "squad_id", r.PathValue("squadID"), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) DeleteSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSquad")
	defer span.End()

	squadID := r.PathValue("squadID")
	if err := h.squadService.Delete(ctx, squadID); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": squadID})
}
