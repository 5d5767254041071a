package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedTeamRoutes(mux, handler, verifier)
	registerAuthorizedPlayerRoutes(mux, handler, verifier)
	registerAuthorizedMatchRoutes(mux, handler, verifier)
	registerAuthorizedCompetitionRoutes(mux, handler, verifier)
	registerAuthorizedSquadRoutes(mux, handler, verifier)
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("PATCH /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/teams/{teamID}/advance-date", RequireAuth(verifier, http.HandlerFunc(handler.AdvanceTeamDate)))
	mux.Handle("POST /v1/teams/{teamID}/import-squad", RequireAuth(verifier, http.HandlerFunc(handler.ImportTeamSquad)))
}

func registerAuthorizedPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("GET /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("PATCH /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
	mux.Handle("POST /v1/players/{playerID}/refresh-status", RequireAuth(verifier, http.HandlerFunc(handler.RefreshPlayerStatus)))

	mux.Handle("POST /v1/players/{playerID}/contracts", RequireAuth(verifier, http.HandlerFunc(handler.AddContract)))
	mux.Handle("PUT /v1/players/{playerID}/contracts/{contractID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateContract)))
	mux.Handle("DELETE /v1/players/{playerID}/contracts/{contractID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveContract)))

	mux.Handle("POST /v1/players/{playerID}/injuries", RequireAuth(verifier, http.HandlerFunc(handler.AddInjury)))
	mux.Handle("PUT /v1/players/{playerID}/injuries/{injuryID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateInjury)))
	mux.Handle("DELETE /v1/players/{playerID}/injuries/{injuryID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveInjury)))

	mux.Handle("POST /v1/players/{playerID}/loans", RequireAuth(verifier, http.HandlerFunc(handler.AddLoan)))
	mux.Handle("DELETE /v1/players/{playerID}/loans/{loanID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveLoan)))

	mux.Handle("POST /v1/players/{playerID}/transfers", RequireAuth(verifier, http.HandlerFunc(handler.AddTransfer)))
	mux.Handle("DELETE /v1/players/{playerID}/transfers/{transferID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveTransfer)))
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("GET /v1/teams/{teamID}/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("PATCH /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))

	mux.Handle("POST /v1/matches/{matchID}/goals", RequireAuth(verifier, http.HandlerFunc(handler.AddGoal)))
	mux.Handle("PUT /v1/matches/{matchID}/goals/{index}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateGoal)))
	mux.Handle("DELETE /v1/matches/{matchID}/goals/{index}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveGoal)))

	mux.Handle("POST /v1/matches/{matchID}/bookings", RequireAuth(verifier, http.HandlerFunc(handler.AddBooking)))
	mux.Handle("PUT /v1/matches/{matchID}/bookings/{index}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateBooking)))
	mux.Handle("DELETE /v1/matches/{matchID}/bookings/{index}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveBooking)))

	mux.Handle("POST /v1/matches/{matchID}/changes", RequireAuth(verifier, http.HandlerFunc(handler.AddChange)))
	mux.Handle("PUT /v1/matches/{matchID}/changes/{index}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateChange)))
	mux.Handle("DELETE /v1/matches/{matchID}/changes/{index}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveChange)))

	mux.Handle("PUT /v1/matches/{matchID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.SetStartingLineup)))
	mux.Handle("POST /v1/matches/{matchID}/formation", RequireAuth(verifier, http.HandlerFunc(handler.ApplyFormation)))
	mux.Handle("PUT /v1/caps/{capID}/rating", RequireAuth(verifier, http.HandlerFunc(handler.RateCap)))
}

func registerAuthorizedCompetitionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/competitions", RequireAuth(verifier, http.HandlerFunc(handler.CreateCompetition)))
	mux.Handle("GET /v1/teams/{teamID}/competitions", RequireAuth(verifier, http.HandlerFunc(handler.ListCompetitions)))
	mux.Handle("GET /v1/competitions/{competitionID}", RequireAuth(verifier, http.HandlerFunc(handler.GetCompetition)))
	mux.Handle("PATCH /v1/competitions/{competitionID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCompetition)))
	mux.Handle("DELETE /v1/competitions/{competitionID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCompetition)))
}

func registerAuthorizedSquadRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams/{teamID}/squads", RequireAuth(verifier, http.HandlerFunc(handler.CreateSquad)))
	mux.Handle("GET /v1/teams/{teamID}/squads", RequireAuth(verifier, http.HandlerFunc(handler.ListSquads)))
	mux.Handle("GET /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSquad)))
	mux.Handle("PATCH /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSquad)))
	mux.Handle("DELETE /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSquad)))
}
