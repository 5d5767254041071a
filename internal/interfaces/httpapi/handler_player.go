package httpapi

import (
	"net/http"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/usecase"
)

type createPlayerRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Nationality  string   `json:"nationality" validate:"omitempty,max=60"`
	Pos          string   `json:"pos" validate:"required"`
	SecondaryPos []string `json:"secondary_pos" validate:"omitempty,dive,required"`
	KitNo        *int     `json:"kit_no" validate:"omitempty,min=1,max=99"`
	OVR          int      `json:"ovr" validate:"min=0,max=100"`
	Value        int64    `json:"value" validate:"min=0"`
	BirthYear    int      `json:"birth_year" validate:"omitempty,min=1900,max=2100"`
}

type updatePlayerRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=100"`
	Nationality  *string  `json:"nationality" validate:"omitempty,max=60"`
	Pos          *string  `json:"pos"`
	SecondaryPos []string `json:"secondary_pos" validate:"omitempty,dive,required"`
	KitNo        *int     `json:"kit_no" validate:"omitempty,min=1,max=99"`
	ClearKitNo   bool     `json:"clear_kit_no"`
	OVR          *int     `json:"ovr" validate:"omitempty,min=0,max=100"`
	Value        *int64   `json:"value" validate:"omitempty,min=0"`
	BirthYear    *int     `json:"birth_year" validate:"omitempty,min=1900,max=2100"`
}

type contractRequest struct {
	SignedOn         *string `json:"signed_on"`
	StartedOn        string  `json:"started_on" validate:"required"`
	EndedOn          string  `json:"ended_on" validate:"required"`
	Wage             int64   `json:"wage" validate:"min=0"`
	SigningBonus     int64   `json:"signing_bonus" validate:"omitempty,min=0"`
	ReleaseClause    int64   `json:"release_clause" validate:"omitempty,min=0"`
	PerformanceBonus int64   `json:"performance_bonus" validate:"omitempty,min=0"`
	BonusReq         string  `json:"bonus_req" validate:"omitempty,max=200"`
}

type injuryRequest struct {
	StartedOn   string `json:"started_on" validate:"required"`
	EndedOn     string `json:"ended_on" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

type loanRequest struct {
	SignedOn    *string `json:"signed_on"`
	StartedOn   string  `json:"started_on" validate:"required"`
	EndedOn     string  `json:"ended_on" validate:"required"`
	Origin      string  `json:"origin" validate:"required,max=100"`
	Destination string  `json:"destination" validate:"required,max=100"`
	WagePct     int     `json:"wage_percentage" validate:"omitempty,min=0,max=100"`
}

type transferRequest struct {
	SignedOn    *string `json:"signed_on"`
	MovedOn     string  `json:"moved_on" validate:"required"`
	Origin      string  `json:"origin" validate:"required,max=100"`
	Destination string  `json:"destination" validate:"required,max=100"`
	Fee         int64   `json:"fee" validate:"min=0"`
	AddonClause int     `json:"addon_clause" validate:"omitempty,min=0,max=100"`
}

func toPositions(values []string) []player.Position {
	if len(values) == 0 {
		return nil
	}
	out := make([]player.Position, 0, len(values))
	for _, v := range values {
		out = append(out, player.Position(v))
	}
	return out
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, player.Player{
		TeamID:       save.ID,
		Name:         req.Name,
		Nationality:  req.Nationality,
		Pos:          player.Position(req.Pos),
		SecondaryPos: toPositions(req.SecondaryPos),
		KitNo:        req.KitNo,
		OVR:          req.OVR,
		Value:        req.Value,
		BirthYear:    req.BirthYear,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", save.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListByTeam(ctx, save.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", save.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	item, err := h.playerService.GetByID(ctx, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdatePlayerInput{
		Name:         req.Name,
		Nationality:  req.Nationality,
		SecondaryPos: toPositions(req.SecondaryPos),
		KitNo:        req.KitNo,
		ClearKitNo:   req.ClearKitNo,
		OVR:          req.OVR,
		Value:        req.Value,
		BirthYear:    req.BirthYear,
	}
	if req.Pos != nil {
		pos := player.Position(*req.Pos)
		input.Pos = &pos
	}

	updated, err := h.playerService.Update(ctx, r.PathValue("playerID"), input)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", r.PathValue("playerID"), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": playerID})
}

func (h *Handler) RefreshPlayerStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshPlayerStatus")
	defer span.End()

	item, err := h.playerService.RefreshStatus(ctx, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (req contractRequest) toDomain() (player.Contract, error) {
	signedOn, err := parseOptionalDate(req.SignedOn)
	if err != nil {
		return player.Contract{}, err
	}
	startedOn, err := parseDate(req.StartedOn)
	if err != nil {
		return player.Contract{}, err
	}
	endedOn, err := parseDate(req.EndedOn)
	if err != nil {
		return player.Contract{}, err
	}
	return player.Contract{
		SignedOn:         signedOn,
		StartedOn:        startedOn,
		EndedOn:          endedOn,
		Wage:             req.Wage,
		SigningBonus:     req.SigningBonus,
		ReleaseClause:    req.ReleaseClause,
		PerformanceBonus: req.PerformanceBonus,
		BonusReq:         req.BonusReq,
	}, nil
}

func (h *Handler) AddContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddContract")
	defer span.End()

	var req contractRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.AddContract(ctx, r.PathValue("playerID"), item)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(updated))
}

func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateContract")
	defer span.End()

	var req contractRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdateContract(ctx, r.PathValue("playerID"), r.PathValue("contractID"), item)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) RemoveContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveContract")
	defer span.End()

	updated, err := h.playerService.RemoveContract(ctx, r.PathValue("playerID"), r.PathValue("contractID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (req injuryRequest) toDomain() (player.Injury, error) {
	startedOn, err := parseDate(req.StartedOn)
	if err != nil {
		return player.Injury{}, err
	}
	endedOn, err := parseDate(req.EndedOn)
	if err != nil {
		return player.Injury{}, err
	}
	return player.Injury{
		StartedOn:   startedOn,
		EndedOn:     endedOn,
		Description: req.Description,
	}, nil
}

func (h *Handler) AddInjury(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddInjury")
	defer span.End()

	var req injuryRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.AddInjury(ctx, r.PathValue("playerID"), item)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(updated))
}

func (h *Handler) UpdateInjury(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateInjury")
	defer span.End()

	var req injuryRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toDomain()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdateInjury(ctx, r.PathValue("playerID"), r.PathValue("injuryID"), item)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) RemoveInjury(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveInjury")
	defer span.End()

	updated, err := h.playerService.RemoveInjury(ctx, r.PathValue("playerID"), r.PathValue("injuryID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) AddLoan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddLoan")
	defer span.End()

	var req loanRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	signedOn, err := parseOptionalDate(req.SignedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	startedOn, err := parseDate(req.StartedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endedOn, err := parseDate(req.EndedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.AddLoan(ctx, r.PathValue("playerID"), player.Loan{
		SignedOn:    signedOn,
		StartedOn:   startedOn,
		EndedOn:     endedOn,
		Origin:      req.Origin,
		Destination: req.Destination,
		WagePct:     req.WagePct,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(updated))
}

func (h *Handler) RemoveLoan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveLoan")
	defer span.End()

	updated, err := h.playerService.RemoveLoan(ctx, r.PathValue("playerID"), r.PathValue("loanID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) AddTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTransfer")
	defer span.End()

	var req transferRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	signedOn, err := parseOptionalDate(req.SignedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	movedOn, err := parseDate(req.MovedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.AddTransfer(ctx, r.PathValue("playerID"), player.Transfer{
		SignedOn:    signedOn,
		MovedOn:     movedOn,
		Origin:      req.Origin,
		Destination: req.Destination,
		Fee:         req.Fee,
		AddonClause: req.AddonClause,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(updated))
}

func (h *Handler) RemoveTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTransfer")
	defer span.End()

	updated, err := h.playerService.RemoveTransfer(ctx, r.PathValue("playerID"), r.PathValue("transferID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}
