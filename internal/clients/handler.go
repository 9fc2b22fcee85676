package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=clients_test

type clientsService interface {
	Add(ctx context.Context, client Client) (*Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params ListParams) ([]Client, error)
	AddNote(ctx context.Context, clientID int, content string) (*Note, error)
	ListNotes(ctx context.Context, clientID int) ([]Note, error)
	AddMeasurement(ctx context.Context, m Measurement) (*Measurement, error)
	ListMeasurements(ctx context.Context, clientID int) ([]Measurement, error)
}

type ListResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}

type MeasurementsResponse struct {
	Measurements []Measurement `json:"measurements"`
	Total        int           `json:"total"`
}

type Handler struct {
	service clientsService
}

func NewHandler(service clientsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleList).Methods("GET").Name("clients-list")
	router.HandleFunc("", handler.HandleAdd).Methods("POST").Name("clients-add")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET").Name("clients-get")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT").Name("clients-update")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE").Name("clients-delete")
	router.HandleFunc("/{id}/notes", handler.HandleListNotes).Methods("GET").Name("clients-notes-list")
	router.HandleFunc("/{id}/notes", handler.HandleAddNote).Methods("POST").Name("clients-notes-add")
	router.HandleFunc("/{id}/measurements", handler.HandleListMeasurements).Methods("GET").Name("clients-measurements-list")
	router.HandleFunc("/{id}/measurements", handler.HandleAddMeasurement).Methods("POST").Name("clients-measurements-add")
}

func clientIDFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeServiceError maps service errors to status codes; unknown errors are logged.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidClient):
		pkg.WriteJSONError(w, err.Error(), "invalid_client", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidNote):
		pkg.WriteJSONError(w, err.Error(), "invalid_note", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidMeasurement):
		pkg.WriteJSONError(w, err.Error(), "invalid_measurement", http.StatusBadRequest)
	case errors.Is(err, ErrClientNotFound):
		pkg.WriteJSONError(w, err.Error(), "", http.StatusNotFound)
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteJSONError(w, err.Error(), "", http.StatusConflict)
	default:
		log.Errorf("clients handler, %s: %s", op, err)
		pkg.WriteJSONError(w, "internal server error", "", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.list")
	defer span.End()

	clients, err := handler.service.List(ctx, ListParams{
		Search: r.URL.Query().Get("q"),
		Tag:    Tag(r.URL.Query().Get("tag")),
	})
	if err != nil {
		writeServiceError(w, "list", err)
		return
	}

	pkg.WriteJSON(w, ListResponse{Clients: clients, Total: len(clients)}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.add")
	defer span.End()

	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Tracef("new client, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid client json", "", http.StatusBadRequest)
		return
	}
	client.ID = 0

	added, err := handler.service.Add(ctx, client)
	if err != nil {
		writeServiceError(w, "add", err)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.get")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		writeServiceError(w, "get", err)
		return
	}

	pkg.WriteJSON(w, client, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.update")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Tracef("update client, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid client json", "", http.StatusBadRequest)
		return
	}
	client.ID = id

	if err := handler.service.Update(ctx, &client); err != nil {
		writeServiceError(w, "update", err)
		return
	}

	pkg.WriteJSON(w, client, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.delete")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		writeServiceError(w, "delete", err)
		return
	}

	pkg.WriteJSON(w, map[string]int{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.listNotes")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	notes, err := handler.service.ListNotes(ctx, id)
	if err != nil {
		writeServiceError(w, "list notes", err)
		return
	}

	pkg.WriteJSON(w, NotesResponse{Notes: notes, Total: len(notes)}, http.StatusOK)
}

func (handler *Handler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.addNote")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "invalid note json", "", http.StatusBadRequest)
		return
	}

	note, err := handler.service.AddNote(ctx, id, req.Content)
	if err != nil {
		writeServiceError(w, "add note", err)
		return
	}

	pkg.WriteJSON(w, note, http.StatusCreated)
}

func (handler *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.listMeasurements")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	measurements, err := handler.service.ListMeasurements(ctx, id)
	if err != nil {
		writeServiceError(w, "list measurements", err)
		return
	}

	pkg.WriteJSON(w, MeasurementsResponse{Measurements: measurements, Total: len(measurements)}, http.StatusOK)
}

func (handler *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.addMeasurement")
	defer span.End()

	id, ok := clientIDFromPath(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	var m Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Tracef("add measurement, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "invalid measurement json", "", http.StatusBadRequest)
		return
	}
	m.ClientID = id

	added, err := handler.service.AddMeasurement(ctx, m)
	if err != nil {
		writeServiceError(w, "add measurement", err)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}
