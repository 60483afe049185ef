// Package handlers is the web UI tier: it renders the dashboard pages and
// translates form posts into calls on the session, task list and user service.
// All feedback rendering goes through the Flash queue; all auth-driven
// navigation goes through the Redirects tracker.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"taskboard/filters"
	"taskboard/gateway"
	"taskboard/models"
	"taskboard/services"
	"taskboard/session"
	"taskboard/tasklist"
	"taskboard/validate"
)

var statusOptions = []string{filters.All, models.StatusPending, models.StatusInProgress, models.StatusCompleted}
var priorityOptions = []string{filters.All, models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// Handler holds the UI's collaborators.
type Handler struct {
	session   *session.Manager
	board     *tasklist.Store
	users     *services.UserService
	filters   *filters.Filters
	flash     *Flash
	redirects *Redirects
}

// New creates the UI handler.
func New(sess *session.Manager, board *tasklist.Store, users *services.UserService, flt *filters.Filters, flash *Flash, redirects *Redirects) *Handler {
	return &Handler{
		session:   sess,
		board:     board,
		users:     users,
		filters:   flt,
		flash:     flash,
		redirects: redirects,
	}
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.trackPath)

	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/login", h.loginPage).Methods("GET")
	r.HandleFunc("/login", h.loginSubmit).Methods("POST")
	r.HandleFunc("/signup", h.signupPage).Methods("GET")
	r.HandleFunc("/signup", h.signupSubmit).Methods("POST")
	r.HandleFunc("/logout", h.requireAuth(h.logout)).Methods("POST")

	r.HandleFunc("/dashboard", h.requireAuth(h.dashboard)).Methods("GET")
	r.HandleFunc("/filters", h.requireAuth(h.applyFilters)).Methods("POST")
	r.HandleFunc("/filters/reset", h.requireAuth(h.resetFilters)).Methods("POST")
	r.HandleFunc("/tasks", h.requireAuth(h.createTask)).Methods("POST")
	r.HandleFunc("/tasks/{id}/update", h.requireAuth(h.updateTask)).Methods("POST")
	r.HandleFunc("/tasks/{id}/delete", h.requireAuth(h.deleteTask)).Methods("POST")

	r.HandleFunc("/profile", h.requireAuth(h.profilePage)).Methods("GET")
	r.HandleFunc("/profile", h.requireAuth(h.updateProfile)).Methods("POST")
	r.HandleFunc("/profile/password", h.requireAuth(h.updatePassword)).Methods("POST")
	r.HandleFunc("/account/delete", h.requireAuth(h.deleteAccount)).Methods("POST")

	return r
}

// trackPath keeps the Navigator's notion of "where the UI is" current so the
// gateway's 401 handling can tell whether it is already on the login screen.
func (h *Handler) trackPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.redirects.SetCurrent(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// requireAuth guards protected pages: anonymous visitors go to the login screen.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.session.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// finish issues the redirect a side effect requested, or the fallback.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if pending, ok := h.redirects.Consume(); ok {
		target = pending
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if h.session.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type authPageData struct {
	Notices []Notice
	Error   string
	Name    string
	Email   string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.session.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, "login", authPageData{Notices: h.flash.Drain()})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if err := validate.Login(email, password); err != nil {
		h.render(w, "login", authPageData{Error: err.Error(), Email: email})
		return
	}
	// Auth errors come back unannounced by the gateway; this form is the
	// one place they are shown.
	if err := h.session.Login(r.Context(), email, password); err != nil {
		h.render(w, "login", authPageData{Error: displayError(err), Email: email})
		return
	}
	h.finish(w, r, "/dashboard")
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	if h.session.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, "signup", authPageData{Notices: h.flash.Drain()})
}

func (h *Handler) signupSubmit(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if err := validate.Signup(name, email, password); err != nil {
		h.render(w, "signup", authPageData{Error: err.Error(), Name: name, Email: email})
		return
	}
	if err := h.session.Signup(r.Context(), name, email, password); err != nil {
		h.render(w, "signup", authPageData{Error: displayError(err), Name: name, Email: email})
		return
	}
	h.finish(w, r, "/dashboard")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	h.finish(w, r, "/login")
}

type dashboardData struct {
	Notices         []Notice
	Tasks           []models.Task
	Count           int
	Stats           models.TaskStats
	Search          string
	Status          string
	Priority        string
	StatusOptions   []string
	PriorityOptions []string
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.board.Refresh(ctx)
	stats, err := h.board.Stats(ctx)
	if err != nil {
		logger.Info("stats unavailable", zap.Error(err))
	}
	// A 401 during either fetch wants the login screen instead of a render.
	if pending, ok := h.redirects.Consume(); ok {
		http.Redirect(w, r, pending, http.StatusSeeOther)
		return
	}

	tasks, count := h.board.Snapshot()
	h.render(w, "dashboard", dashboardData{
		Notices:         h.flash.Drain(),
		Tasks:           tasks,
		Count:           count,
		Stats:           stats,
		Search:          h.filters.Search(),
		Status:          h.filters.Status(),
		Priority:        h.filters.Priority(),
		StatusOptions:   statusOptions,
		PriorityOptions: priorityOptions,
	})
}

func (h *Handler) applyFilters(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if search := r.PostFormValue("search"); search != h.filters.Search() {
		h.filters.SetSearch(search)
	}
	if status := r.PostFormValue("status"); status != h.filters.Status() {
		h.filters.SetStatus(status)
	}
	if priority := r.PostFormValue("priority"); priority != h.filters.Priority() {
		h.filters.SetPriority(priority)
	}
	h.finish(w, r, "/dashboard")
}

func (h *Handler) resetFilters(w http.ResponseWriter, r *http.Request) {
	h.filters.Reset()
	h.finish(w, r, "/dashboard")
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	req := models.CreateTaskRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
		Priority:    r.PostFormValue("priority"),
		DueDate:     r.PostFormValue("dueDate"),
		Tags:        splitTags(r.PostFormValue("tags")),
	}
	if err := validate.CreateTask(req); err != nil {
		h.flash.Error(err.Error())
		h.finish(w, r, "/dashboard")
		return
	}
	// Success and failure feedback comes from the gateway; only control flow
	// is handled here.
	h.board.Create(r.Context(), req)
	h.finish(w, r, "/dashboard")
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	r.ParseForm()
	req := models.UpdateTaskRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
		Priority:    r.PostFormValue("priority"),
		DueDate:     r.PostFormValue("dueDate"),
	}
	if tags := r.PostFormValue("tags"); tags != "" {
		req.Tags = splitTags(tags)
	}
	if err := validate.UpdateTask(req); err != nil {
		h.flash.Error(err.Error())
		h.finish(w, r, "/dashboard")
		return
	}
	h.board.Update(r.Context(), id, req)
	h.finish(w, r, "/dashboard")
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.board.Delete(r.Context(), id)
	h.finish(w, r, "/dashboard")
}

type profileData struct {
	Notices []Notice
	User    models.User
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context())
	if err != nil {
		if pending, ok := h.redirects.Consume(); ok {
			http.Redirect(w, r, pending, http.StatusSeeOther)
			return
		}
		// Fall back to the session's cached copy.
		if cached := h.session.CurrentUser(); cached != nil {
			user = *cached
		}
	}
	h.render(w, "profile", profileData{Notices: h.flash.Drain(), User: user})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	req := models.UpdateProfileRequest{
		Name:   r.PostFormValue("name"),
		Bio:    r.PostFormValue("bio"),
		Avatar: r.PostFormValue("avatar"),
	}
	if err := validate.UpdateProfile(req); err != nil {
		h.flash.Error(err.Error())
		h.finish(w, r, "/profile")
		return
	}
	// Error surfacing already happened at the gateway; only success feedback
	// is owned here because profile mutations skip the gateway success toast.
	if _, err := h.users.UpdateProfile(r.Context(), req); err != nil {
		h.finish(w, r, "/profile")
		return
	}
	h.flash.Success("Profile updated")
	h.session.RefreshUser(r.Context())
	h.finish(w, r, "/profile")
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	current := r.PostFormValue("current")
	next := r.PostFormValue("new")
	confirm := r.PostFormValue("confirm")

	if err := validate.UpdatePassword(current, next, confirm); err != nil {
		h.flash.Error(err.Error())
		h.finish(w, r, "/profile")
		return
	}
	req := models.UpdatePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := h.users.UpdatePassword(r.Context(), req); err != nil {
		h.finish(w, r, "/profile")
		return
	}
	h.flash.Success("Password updated")
	h.finish(w, r, "/profile")
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteAccount(r.Context()); err != nil {
		h.finish(w, r, "/profile")
		return
	}
	h.session.Logout(r.Context())
	h.finish(w, r, "/login")
}

// displayError prefers the server's own wording for auth forms; the 401
// classification would otherwise turn "Invalid credentials" into a generic
// session-expired line.
func displayError(err error) string {
	var apiErr *gateway.Error
	if errors.As(err, &apiErr) && apiErr.ServerMessage != "" {
		return apiErr.ServerMessage
	}
	return err.Error()
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
