package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/internal/auth"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Exercises(ctx context.Context, category, search string) (Library, error)
	AddTemplate(ctx context.Context, template Template) (*Template, error)
	GetTemplate(ctx context.Context, id int) (*Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	UpdateTemplate(ctx context.Context, template *Template) error
	DeleteTemplate(ctx context.Context, id int) error
	MoveExercise(ctx context.Context, templateID, section, from, to int) (*Template, error)
	Assign(ctx context.Context, templateID, clientID int, dueDate *recurrence.Date) (*Assignment, error)
	Assignments(ctx context.Context, clientID int) ([]Assignment, error)
}

type ExercisesResponse struct {
	Exercises Library `json:"exercises"`
	Total     int     `json:"total"`
}

type TemplatesResponse struct {
	Templates []Template `json:"templates"`
	Total     int        `json:"total"`
}

type AssignmentsResponse struct {
	Assignments []Assignment `json:"assignments"`
	Total       int          `json:"total"`
}

type moveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type assignRequest struct {
	ClientID int              `json:"clientId"`
	DueDate  *recurrence.Date `json:"dueDate"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(workoutsRouter, meRouter *mux.Router) {
	workoutsRouter.HandleFunc("/exercises", handler.HandleExercises).Methods("GET").Name("workouts-exercises")
	workoutsRouter.HandleFunc("/templates", handler.HandleListTemplates).Methods("GET").Name("workouts-templates-list")
	workoutsRouter.HandleFunc("/templates", handler.HandleAddTemplate).Methods("POST").Name("workouts-templates-add")
	workoutsRouter.HandleFunc("/templates/{id}", handler.HandleGetTemplate).Methods("GET").Name("workouts-templates-get")
	workoutsRouter.HandleFunc("/templates/{id}", handler.HandleUpdateTemplate).Methods("PUT").Name("workouts-templates-update")
	workoutsRouter.HandleFunc("/templates/{id}", handler.HandleDeleteTemplate).Methods("DELETE").Name("workouts-templates-delete")
	workoutsRouter.HandleFunc("/templates/{id}/sections/{section}/move", handler.HandleMoveExercise).Methods("POST").Name("workouts-templates-move")
	workoutsRouter.HandleFunc("/templates/{id}/assign", handler.HandleAssign).Methods("POST").Name("workouts-templates-assign")

	meRouter.HandleFunc("/workouts", handler.HandleMyWorkouts).Methods("GET").Name("me-workouts")
}

func intFromPath(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeWorkoutsError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidTemplate):
		pkg.WriteJSONError(w, err.Error(), "invalid_template", http.StatusBadRequest)
	case errors.Is(err, ErrUnknownExercise):
		pkg.WriteJSONError(w, err.Error(), "unknown_exercise", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCategory):
		pkg.WriteJSONError(w, err.Error(), "bad_category", http.StatusBadRequest)
	case errors.Is(err, ErrIndexOutOfRange):
		pkg.WriteJSONError(w, err.Error(), "index_out_of_range", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidAssignment):
		pkg.WriteJSONError(w, err.Error(), "invalid_assignment", http.StatusBadRequest)
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrClientNotFound):
		pkg.WriteJSONError(w, err.Error(), "", http.StatusNotFound)
	default:
		log.Errorf("workouts handler, %s: %s", op, err)
		pkg.WriteJSONError(w, "internal server error", "", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	library, err := handler.service.Exercises(ctx, r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if err != nil {
		writeWorkoutsError(w, "exercises", err)
		return
	}
	pkg.WriteJSON(w, ExercisesResponse{Exercises: library, Total: len(library)}, http.StatusOK)
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listTemplates")
	defer span.End()

	templates, err := handler.service.ListTemplates(ctx)
	if err != nil {
		writeWorkoutsError(w, "list templates", err)
		return
	}
	pkg.WriteJSON(w, TemplatesResponse{Templates: templates, Total: len(templates)}, http.StatusOK)
}

func (handler *Handler) HandleAddTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addTemplate")
	defer span.End()

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		pkg.WriteJSONError(w, "invalid template json", "", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddTemplate(ctx, template)
	if err != nil {
		writeWorkoutsError(w, "add template", err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getTemplate")
	defer span.End()

	id, ok := intFromPath(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "invalid template id", "", http.StatusBadRequest)
		return
	}

	template, err := handler.service.GetTemplate(ctx, id)
	if err != nil {
		writeWorkoutsError(w, "get template", err)
		return
	}
	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateTemplate")
	defer span.End()

	id, ok := intFromPath(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "invalid template id", "", http.StatusBadRequest)
		return
	}

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		pkg.WriteJSONError(w, "invalid template json", "", http.StatusBadRequest)
		return
	}
	template.ID = id

	if err := handler.service.UpdateTemplate(ctx, &template); err != nil {
		writeWorkoutsError(w, "update template", err)
		return
	}
	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteTemplate")
	defer span.End()

	id, ok := intFromPath(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "invalid template id", "", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteTemplate(ctx, id); err != nil {
		writeWorkoutsError(w, "delete template", err)
		return
	}
	pkg.WriteJSON(w, map[string]int{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleMoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.moveExercise")
	defer span.End()

	id, ok := intFromPath(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "invalid template id", "", http.StatusBadRequest)
		return
	}
	section, ok := intFromPath(r, "section")
	if !ok {
		pkg.WriteJSONError(w, "invalid section index", "", http.StatusBadRequest)
		return
	}

	var move moveRequest
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		pkg.WriteJSONError(w, "invalid move json", "", http.StatusBadRequest)
		return
	}

	template, err := handler.service.MoveExercise(ctx, id, section, move.From, move.To)
	if err != nil {
		writeWorkoutsError(w, "move exercise", err)
		return
	}
	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.assign")
	defer span.End()

	id, ok := intFromPath(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "invalid template id", "", http.StatusBadRequest)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("assign, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid assignment json", "invalid_assignment", http.StatusBadRequest)
		return
	}

	assignment, err := handler.service.Assign(ctx, id, req.ClientID, req.DueDate)
	if err != nil {
		writeWorkoutsError(w, "assign", err)
		return
	}
	pkg.WriteJSON(w, assignment, http.StatusCreated)
}

func (handler *Handler) HandleMyWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.myWorkouts")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok || session.Role != auth.RoleClient {
		pkg.WriteJSONError(w, "client session required", "", http.StatusForbidden)
		return
	}

	assignments, err := handler.service.Assignments(ctx, session.ClientID)
	if err != nil {
		writeWorkoutsError(w, "my workouts", err)
		return
	}
	pkg.WriteJSON(w, AssignmentsResponse{Assignments: assignments, Total: len(assignments)}, http.StatusOK)
}
