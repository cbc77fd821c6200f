package backendtest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/guest-list-admin/internal/utils"
	"github.com/MKhiriev/guest-list-admin/models"
)

const requiredScope = "noivo"

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteDetail(w, "Invalid form", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" {
		utils.WriteValidationDetail(w, "username", "Field required")
		return
	}
	if password == "" {
		utils.WriteValidationDetail(w, "password", "Field required")
		return
	}

	s.mu.Lock()
	stored, ok := s.users[username]
	signKey := s.signKey
	s.mu.Unlock()

	if !ok || stored != password {
		utils.WriteDetail(w, "Email ou senha incorretos", http.StatusUnauthorized)
		return
	}
	if !hasScope(r.PostForm.Get("scope"), requiredScope) {
		utils.WriteDetail(w, "Permissão insuficiente", http.StatusForbidden)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, username, tokenDuration, signKey)
	if err != nil {
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
}

func (s *Server) listGuests(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, s.Guests(), http.StatusOK)
}

func (s *Server) createGuest(w http.ResponseWriter, r *http.Request) {
	guest, ok := decodeGuest(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	created := s.insertLocked(models.Guest{Name: guest.Name, Attendance: guest.Attendance})
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (s *Server) updateGuest(w http.ResponseWriter, r *http.Request) {
	guest, ok := decodeGuest(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		utils.WriteDetail(w, "Convidado não encontrado", http.StatusNotFound)
		return
	}
	s.guests[i].Name = guest.Name
	if guest.Attendance != "" {
		s.guests[i].Attendance = guest.Attendance
	}
	updated := s.guests[i]
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (s *Server) deleteGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		utils.WriteDetail(w, "Convidado não encontrado", http.StatusNotFound)
		return
	}
	s.guests = append(s.guests[:i], s.guests[i+1:]...)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]string{"ok": "removido"}, http.StatusOK)
}

func decodeGuest(w http.ResponseWriter, r *http.Request) (models.Guest, bool) {
	var guest models.Guest
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		utils.WriteDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return models.Guest{}, false
	}
	if strings.TrimSpace(guest.Name) == "" {
		utils.WriteValidationDetail(w, "nome", "String should have at least 1 character")
		return models.Guest{}, false
	}
	if guest.Attendance != "" && !guest.Attendance.Valid() {
		utils.WriteValidationDetail(w, "presenca", "Input should be 'nao_confirmado', 'vai' or 'nao_vai'")
		return models.Guest{}, false
	}
	return guest, true
}

func hasScope(scopes, want string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == want {
			return true
		}
	}
	return false
}
