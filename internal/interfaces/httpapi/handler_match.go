package httpapi

import (
	"net/http"
	"strings"

	"github.com/gafferhq/gaffer/internal/domain/match"
	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/usecase"
)

type createMatchRequest struct {
	CompetitionID  string   `json:"competition_id" validate:"omitempty,max=60"`
	HomeTeam       string   `json:"home_team" validate:"required,max=100"`
	AwayTeam       string   `json:"away_team" validate:"required,max=100"`
	OccurredOn     string   `json:"occurred_on" validate:"required"`
	ExtraTime      bool     `json:"extra_time"`
	HomePenScore   *int     `json:"home_pen_score" validate:"omitempty,min=0"`
	AwayPenScore   *int     `json:"away_pen_score" validate:"omitempty,min=0"`
	HomePossession *int     `json:"home_possession" validate:"omitempty,min=0,max=100"`
	AwayPossession *int     `json:"away_possession" validate:"omitempty,min=0,max=100"`
	HomeXG         *float64 `json:"home_xg" validate:"omitempty,min=0"`
	AwayXG         *float64 `json:"away_xg" validate:"omitempty,min=0"`
	Attendance     *int     `json:"attendance" validate:"omitempty,min=0"`
}

type updateMatchRequest struct {
	CompetitionID  *string  `json:"competition_id" validate:"omitempty,max=60"`
	HomeTeam       *string  `json:"home_team" validate:"omitempty,max=100"`
	AwayTeam       *string  `json:"away_team" validate:"omitempty,max=100"`
	OccurredOn     *string  `json:"occurred_on"`
	ExtraTime      *bool    `json:"extra_time"`
	HomePenScore   *int     `json:"home_pen_score" validate:"omitempty,min=0"`
	AwayPenScore   *int     `json:"away_pen_score" validate:"omitempty,min=0"`
	HomePossession *int     `json:"home_possession" validate:"omitempty,min=0,max=100"`
	AwayPossession *int     `json:"away_possession" validate:"omitempty,min=0,max=100"`
	HomeXG         *float64 `json:"home_xg" validate:"omitempty,min=0"`
	AwayXG         *float64 `json:"away_xg" validate:"omitempty,min=0"`
	Attendance     *int     `json:"attendance" validate:"omitempty,min=0"`
}

type goalRequest struct {
	Minute       int     `json:"minute" validate:"min=0,max=120"`
	StoppageTime *int    `json:"stoppage_time" validate:"omitempty,min=1"`
	Scorer       string  `json:"scorer" validate:"required,max=100"`
	AssistedBy   *string `json:"assisted_by" validate:"omitempty,max=100"`
	Home         bool    `json:"home"`
	SetPiece     *string `json:"set_piece" validate:"omitempty,oneof=penalty free_kick corner"`
	OwnGoal      bool    `json:"own_goal"`
}

type bookingRequest struct {
	Minute       int    `json:"minute" validate:"min=0,max=120"`
	StoppageTime *int   `json:"stoppage_time" validate:"omitempty,min=1"`
	Player       string `json:"player" validate:"required,max=100"`
	Home         bool   `json:"home"`
	RedCard      bool   `json:"red_card"`
}

type slotRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Pos  string `json:"pos" validate:"required"`
}

type changeRequest struct {
	Minute       int         `json:"minute" validate:"min=0,max=120"`
	StoppageTime *int        `json:"stoppage_time" validate:"omitempty,min=1"`
	Injured      bool        `json:"injured"`
	Out          slotRequest `json:"out" validate:"required"`
	In           slotRequest `json:"in" validate:"required"`
}

type lineupRequest struct {
	// Position code to player id; exactly eleven entries.
	Lineup map[string]string `json:"lineup" validate:"required,len=11,dive,required"`
}

type formationRequest struct {
	Lineup       map[string]string `json:"lineup" validate:"required,len=11,dive,required"`
	Minute       int               `json:"minute" validate:"min=0,max=120"`
	StoppageTime *int              `json:"stoppage_time" validate:"omitempty,min=1"`
}

type rateCapRequest struct {
	Rating int `json:"rating" validate:"min=0,max=100"`
}

func (req goalRequest) toDomain() match.Goal {
	var setPiece *match.SetPiece
	if req.SetPiece != nil {
		value := match.SetPiece(*req.SetPiece)
		setPiece = &value
	}
	return match.Goal{
		Minute:       req.Minute,
		StoppageTime: req.StoppageTime,
		Scorer:       req.Scorer,
		AssistedBy:   req.AssistedBy,
		Home:         req.Home,
		SetPiece:     setPiece,
		OwnGoal:      req.OwnGoal,
	}
}

func (req bookingRequest) toDomain() match.Booking {
	return match.Booking{
		Minute:       req.Minute,
		StoppageTime: req.StoppageTime,
		Player:       req.Player,
		Home:         req.Home,
		RedCard:      req.RedCard,
	}
}

func (req changeRequest) toDomain() match.Change {
	return match.Change{
		Minute:       req.Minute,
		StoppageTime: req.StoppageTime,
		Injured:      req.Injured,
		Out:          match.Slot{Name: req.Out.Name, Pos: player.Position(req.Out.Pos)},
		In:           match.Slot{Name: req.In.Name, Pos: player.Position(req.In.Pos)},
	}
}

func toPositionMap(lineup map[string]string) map[player.Position]string {
	out := make(map[player.Position]string, len(lineup))
	for pos, playerID := range lineup {
		out[player.Position(strings.ToUpper(strings.TrimSpace(pos)))] = playerID
	}
	return out
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	occurredOn, err := parseDate(req.OccurredOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, match.Match{
		TeamID:         save.ID,
		CompetitionID:  req.CompetitionID,
		HomeTeam:       req.HomeTeam,
		AwayTeam:       req.AwayTeam,
		OccurredOn:     occurredOn,
		ExtraTime:      req.ExtraTime,
		HomePenScore:   req.HomePenScore,
		AwayPenScore:   req.AwayPenScore,
		HomePossession: req.HomePossession,
		AwayPossession: req.AwayPossession,
		HomeXG:         req.HomeXG,
		AwayXG:         req.AwayXG,
		Attendance:     req.Attendance,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_id", save.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	save, err := h.ownedTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var items []match.Match
	fromParam := strings.TrimSpace(r.URL.Query().Get("from"))
	toParam := strings.TrimSpace(r.URL.Query().Get("to"))
	if fromParam != "" || toParam != "" {
		from, err := parseDate(fromParam)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		to, err := parseDate(toParam)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		items, err = h.matchService.ListByTeamBetween(ctx, save.ID, from, to)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
	} else {
		items, err = h.matchService.ListByTeam(ctx, save.ID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	session, err := h.matchService.GetSession(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	occurredOn, err := parseOptionalDate(req.OccurredOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, r.PathValue("matchID"), usecase.UpdateMatchInput{
		CompetitionID:  req.CompetitionID,
		HomeTeam:       req.HomeTeam,
		AwayTeam:       req.AwayTeam,
		OccurredOn:     occurredOn,
		ExtraTime:      req.ExtraTime,
		HomePenScore:   req.HomePenScore,
		AwayPenScore:   req.AwayPenScore,
		HomePossession: req.HomePossession,
		AwayPossession: req.AwayPossession,
		HomeXG:         req.HomeXG,
		AwayXG:         req.AwayXG,
		Attendance:     req.Attendance,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": matchID})
}

func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGoal")
	defer span.End()

	var req goalRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.AddGoal(ctx, r.PathValue("matchID"), req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(updated))
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGoal")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req goalRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateGoal(ctx, r.PathValue("matchID"), index, req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) RemoveGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveGoal")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.RemoveGoal(ctx, r.PathValue("matchID"), index)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) AddBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddBooking")
	defer span.End()

	var req bookingRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.AddBooking(ctx, r.PathValue("matchID"), req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(updated))
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBooking")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req bookingRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateBooking(ctx, r.PathValue("matchID"), index, req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) RemoveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveBooking")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.RemoveBooking(ctx, r.PathValue("matchID"), index)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) AddChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddChange")
	defer span.End()

	var req changeRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.AddChange(ctx, r.PathValue("matchID"), req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(updated))
}

func (h *Handler) UpdateChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChange")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req changeRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateChange(ctx, r.PathValue("matchID"), index, req.toDomain())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) RemoveChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveChange")
	defer span.End()

	index, err := pathIndex(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.RemoveChange(ctx, r.PathValue("matchID"), index)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) SetStartingLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetStartingLineup")
	defer span.End()

	var req lineupRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	caps, err := h.matchService.SetStartingLineup(ctx, r.PathValue("matchID"), toPositionMap(req.Lineup))
	if err != nil {
		h.logger.WarnContext(ctx, "set starting lineup failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]capDTO, 0, len(caps))
	for _, c := range caps {
		out = append(out, capToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ApplyFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyFormation")
	defer span.End()

	var req formationRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.ApplyFormation(ctx, r.PathValue("matchID"), toPositionMap(req.Lineup), req.Minute, req.StoppageTime)
	if err != nil {
		h.logger.WarnContext(ctx, "apply formation failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) RateCap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RateCap")
	defer span.End()

	var req rateCapRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rated, err := h.matchService.RateCap(ctx, r.PathValue("capID"), req.Rating)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, capToDTO(rated))
}
