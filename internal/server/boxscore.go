package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/middleware"
	"boxscore/internal/repository"
	"boxscore/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName           = "boxscore.v1.BoxScoreService"
	GetGameStateProcedure = "/" + ServiceName + "/GetGameState"
	GetRawFeedProcedure   = "/" + ServiceName + "/GetRawFeed"
)

// BoxScoreServer exposes game data over plain HTTP and Connect.
type BoxScoreServer struct {
	games  *service.GameStateService
	cache  *repository.CacheRepository
	logger zerolog.Logger
}

func NewBoxScoreServer(games *service.GameStateService, cache *repository.CacheRepository, logger zerolog.Logger) *BoxScoreServer {
	return &BoxScoreServer{games: games, cache: cache, logger: logger}
}

// Register mounts every route on mux.
func (s *BoxScoreServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.Health)
	mux.HandleFunc("GET /{sport}", s.RawFeed)
	mux.HandleFunc("GET /{sport}/state", s.GameState)

	mux.Handle(GetGameStateProcedure, connect.NewUnaryHandler(GetGameStateProcedure, s.GetGameState))
	mux.Handle(GetRawFeedProcedure, connect.NewUnaryHandler(GetRawFeedProcedure, s.GetRawFeed))
}

// RawFeed wraps the cached feed document as {"message": <feed>}.
func (s *BoxScoreServer) RawFeed(w http.ResponseWriter, r *http.Request) {
	sport := r.PathValue("sport")
	body, err := s.games.GetRawFeed(r.Context(), sport)
	if err != nil {
		s.writeError(r.Context(), w, sport, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]json.RawMessage{"message": body})
}

func (s *BoxScoreServer) GameState(w http.ResponseWriter, r *http.Request) {
	sport := r.PathValue("sport")
	state, err := s.games.GetGameState(r.Context(), sport)
	if err != nil {
		s.writeError(r.Context(), w, sport, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

type cacheStatus struct {
	Sport    string    `json:"sport"`
	StoredAt time.Time `json:"storedAt"`
	AgeMs    int64     `json:"ageMs"`
	Fresh    bool      `json:"fresh"`
}

// Health lists every cached sport and its age; it is unhealthy until every
// known sport has a record.
func (s *BoxScoreServer) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
	defer cancel()

	records, err := s.cache.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("health check failed to read cache")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "cache unavailable"})
		return
	}

	now := time.Now()
	statuses := make([]cacheStatus, 0, len(records))
	for _, rec := range records {
		age := rec.Age(now)
		statuses = append(statuses, cacheStatus{
			Sport:    string(rec.Key),
			StoredAt: rec.StoredAt,
			AgeMs:    age.Milliseconds(),
			Fresh:    age <= constants.FreshnessWindow,
		})
	}

	code := http.StatusOK
	if len(records) < len(domain.KnownSports()) {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{"cache": statuses})
}

func (s *BoxScoreServer) GetGameState(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	sport := req.Msg.GetValue()
	state, err := s.games.GetGameState(ctx, sport)
	if err != nil {
		return nil, connect.NewError(connectCode(err), err)
	}

	msg, err := toStruct(state)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(msg), nil
}

func (s *BoxScoreServer) GetRawFeed(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (*connect.Response[structpb.Struct], error) {
	body, err := s.games.GetRawFeed(ctx, req.Msg.GetValue())
	if err != nil {
		return nil, connect.NewError(connectCode(err), err)
	}

	msg := &structpb.Struct{}
	if err := msg.UnmarshalJSON(body); err != nil {
		return nil, connect.NewError(connect.CodeDataLoss, err)
	}
	return connect.NewResponse(msg), nil
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding game state: %w", err)
	}
	msg := &structpb.Struct{}
	if err := msg.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("converting game state: %w", err)
	}
	return msg, nil
}

func (s *BoxScoreServer) writeError(ctx context.Context, w http.ResponseWriter, sport string, err error) {
	code := httpStatus(err)
	log := zerolog.Ctx(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = &s.logger
	}
	log.Warn().Err(err).Str("sport", sport).Int("status", code).Msg("request failed")

	body := map[string]string{"error": err.Error()}
	if id := middleware.GetRequestID(ctx); id != "" {
		body["request_id"] = id
	}
	writeJSON(w, code, body)
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownSport), errors.Is(err, domain.ErrUnsupportedSport):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCacheMiss):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstreamFetch), errors.Is(err, domain.ErrShapeMismatch):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func connectCode(err error) connect.Code {
	switch {
	case errors.Is(err, domain.ErrUnknownSport), errors.Is(err, domain.ErrUnsupportedSport):
		return connect.CodeNotFound
	case errors.Is(err, domain.ErrCacheMiss), errors.Is(err, domain.ErrUpstreamFetch):
		return connect.CodeUnavailable
	case errors.Is(err, domain.ErrShapeMismatch):
		return connect.CodeDataLoss
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
