package backendtest

import (
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/guest-list-admin/models"
)

const (
	tokenIssuer   = "guest-list-backend"
	tokenDuration = time.Hour
)

// Server is a fake backend. Its zero value is not usable, create one with
// [New].
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[string]string
	guests     []models.Guest
	nextID     int
	signKey    string
	requestIDs []string
	failures   []failure
}

type failure struct {
	status int
	detail string
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:   make(map[string]string),
		nextID:  1,
		signKey: "sign-key-1",
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.withInjectedFailure)

	router.Post("/auth/login", s.login)

	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/convidados", s.listGuests)
		r.Post("/convidados/", s.createGuest)
		r.Put("/convidados/{id}", s.updateGuest)
		r.Delete("/convidados/{id}", s.deleteGuest)
	})

	return router
}

// AddUser registers an account that can log in.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// Seed appends guests with server-assigned numeric ids and returns them.
func (s *Server) Seed(guests ...models.Guest) []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		out = append(out, s.insertLocked(g))
	}
	return out
}

// Guests returns a copy of the stored collection.
func (s *Server) Guests() []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// RequestIDs returns the X-Request-ID values received so far, with "" for
// requests that carried none or a malformed one.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// RevokeTokens rotates the signing key, so every issued token is answered
// with 401 from now on.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signKey += "-rotated"
}

// FailNext makes the next request fail with status and detail, before
// routing.
func (s *Server) FailNext(status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, detail: detail})
}

func (s *Server) insertLocked(g models.Guest) models.Guest {
	g.ID = models.NumericGuestID(strconv.Itoa(s.nextID))
	s.nextID++
	if g.Attendance == "" {
		g.Attendance = models.AttendanceUnconfirmed
	}
	s.guests = append(s.guests, g)
	return g
}

func (s *Server) indexLocked(id string) int {
	for i, g := range s.guests {
		if g.ID.String() == id {
			return i
		}
	}
	return -1
}

func (s *Server) currentSignKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signKey
}
